package database

import (
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/go-sql-driver/mysql"
)

// validIdentifier validates database/table names before they are spliced
// into backtick-quoted SQL.
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
}

// Client is a single long-lived MySQL handle. Session state (the selected
// database, FOREIGN_KEY_CHECKS) must stick to one underlying connection, so
// the pool is capped at a single open connection.
type Client struct {
	db       *sql.DB
	qb       squirrel.StatementBuilderType
	database string

	infileProbed bool
}

// Connect opens the server-level connection. The target database may not
// exist yet, so the DSN carries no schema; EnsureDatabase selects one.
func Connect(cfg Config) (*Client, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/", cfg.User, cfg.Password, cfg.Host, cfg.Port)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(15 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL at %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	return &Client{
		db: db,
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

// EnsureDatabase idempotently creates the database and selects it for the
// session.
func (c *Client) EnsureDatabase(name string) error {
	if !validIdentifier.MatchString(name) {
		return fmt.Errorf("invalid database name: %q", name)
	}
	if _, err := c.db.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s` CHARACTER SET utf8mb4", name)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", name, err)
	}
	return c.Use(name)
}

// Use selects an existing database for the session.
func (c *Client) Use(name string) error {
	if !validIdentifier.MatchString(name) {
		return fmt.Errorf("invalid database name: %q", name)
	}
	if _, err := c.db.Exec(fmt.Sprintf("USE `%s`", name)); err != nil {
		return fmt.Errorf("failed to select database %s: %w", name, err)
	}
	c.database = name
	return nil
}

// CreateTables idempotently creates the four dataset tables.
func (c *Client) CreateTables() error {
	for _, t := range Tables {
		if _, err := c.db.Exec(t.DDL); err != nil {
			return fmt.Errorf("failed to create table %s: %w", t.Name, err)
		}
	}
	return nil
}

// EnsureSchema creates the database and all tables in one step.
func (c *Client) EnsureSchema(name string) error {
	if err := c.EnsureDatabase(name); err != nil {
		return err
	}
	return c.CreateTables()
}

// TableRowCounts returns the current row count of each given table.
func (c *Client) TableRowCounts(tables []string) (map[string]int64, error) {
	counts := make(map[string]int64, len(tables))
	for _, table := range tables {
		if !validIdentifier.MatchString(table) {
			return nil, fmt.Errorf("invalid table name: %q", table)
		}
		query, args, err := c.qb.Select("COUNT(*)").From(fmt.Sprintf("`%s`", table)).ToSql()
		if err != nil {
			return nil, fmt.Errorf("failed to build count query for %s: %w", table, err)
		}
		var n int64
		if err := c.db.QueryRow(query, args...).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		counts[table] = n
	}
	return counts, nil
}

func (c *Client) constraintExists(table, constraint string) (bool, error) {
	var exists bool
	err := c.db.QueryRow(`
		SELECT COUNT(*) > 0 FROM information_schema.table_constraints
		WHERE table_schema = ? AND table_name = ? AND constraint_name = ?
	`, c.database, table, constraint).Scan(&exists)
	return exists, err
}

// AddForeignKeys adds the three cross-table constraints after the bulk
// loads. On large tables this takes a while, which is why it is opt-in.
func (c *Client) AddForeignKeys() error {
	for _, fk := range foreignKeys {
		exists, err := c.constraintExists(fk.table, fk.name)
		if err != nil {
			return fmt.Errorf("failed to check constraint %s: %w", fk.name, err)
		}
		if exists {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE `%s` ADD CONSTRAINT `%s` FOREIGN KEY (`%s`) REFERENCES `%s`(`%s`)",
			fk.table, fk.name, fk.column, fk.refTable, fk.refColumn)
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to add foreign key %s: %w", fk.name, err)
		}
	}
	return nil
}

type foreignKey struct {
	name      string
	table     string
	column    string
	refTable  string
	refColumn string
}

var foreignKeys = []foreignKey{
	{"fk_orders_customer", "orders", "customer_id", "customers", "customer_id"},
	{"fk_items_order", "order_items", "order_id", "orders", "order_id"},
	{"fk_items_product", "order_items", "product_id", "products", "product_id"},
}
