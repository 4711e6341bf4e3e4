package database

import (
	"strings"
	"testing"
)

func TestTableOrder(t *testing.T) {
	want := []string{"products", "customers", "orders", "order_items"}
	got := TableNames()
	if len(got) != len(want) {
		t.Fatalf("got %d tables, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("table %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDDLShape(t *testing.T) {
	for _, table := range Tables {
		if !strings.Contains(table.DDL, "CREATE TABLE IF NOT EXISTS "+table.Name) {
			t.Errorf("%s DDL is not idempotent: %q", table.Name, table.DDL)
		}
		if !strings.Contains(table.DDL, "PRIMARY KEY") {
			t.Errorf("%s DDL has no primary key", table.Name)
		}
	}
}

func TestSecondaryIndexes(t *testing.T) {
	ddl := map[string]string{}
	for _, table := range Tables {
		ddl[table.Name] = table.DDL
	}

	for _, idx := range []struct{ table, index string }{
		{"orders", "idx_orders_customer"},
		{"orders", "idx_orders_date"},
		{"order_items", "idx_items_order"},
		{"order_items", "idx_items_product"},
	} {
		if !strings.Contains(ddl[idx.table], idx.index) {
			t.Errorf("%s DDL missing index %s", idx.table, idx.index)
		}
	}
}

func TestLoadStatement(t *testing.T) {
	stmt := loadStatement("shop", "orders", "/tmp/out/orders.csv")

	for _, part := range []string{
		"LOAD DATA LOCAL INFILE '/tmp/out/orders.csv'",
		"INTO TABLE `shop`.`orders`",
		"FIELDS TERMINATED BY ','",
		`ENCLOSED BY '"'`,
		`LINES TERMINATED BY '\n'`,
		"IGNORE 1 LINES",
	} {
		if !strings.Contains(stmt, part) {
			t.Errorf("load statement missing %q:\n%s", part, stmt)
		}
	}
}

func TestLoadStatementEscapesQuotes(t *testing.T) {
	stmt := loadStatement("shop", "orders", "/tmp/o'brien/orders.csv")
	if strings.Contains(stmt, "o'brien") {
		t.Errorf("unescaped quote in load statement:\n%s", stmt)
	}
}

func TestValidIdentifier(t *testing.T) {
	for _, name := range []string{"orders", "order_items", "_tmp", "Db1"} {
		if !validIdentifier.MatchString(name) {
			t.Errorf("%q rejected, want accepted", name)
		}
	}
	for _, name := range []string{"", "1orders", "bad-name", "x;drop table", "a b"} {
		if validIdentifier.MatchString(name) {
			t.Errorf("%q accepted, want rejected", name)
		}
	}
}
