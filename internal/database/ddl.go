package database

// Table pairs a table name with its creation DDL. The slice order is the
// load order: parents before dependents.
type Table struct {
	Name string
	DDL  string
}

var Tables = []Table{
	{"products", `
CREATE TABLE IF NOT EXISTS products (
  product_id BIGINT PRIMARY KEY,
  category   VARCHAR(64),
  subcategory VARCHAR(64),
  brand      VARCHAR(64),
  price      DECIMAL(10,2),
  cost       DECIMAL(10,2),
  created_at DATE,
  is_active  TINYINT(1)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"customers", `
CREATE TABLE IF NOT EXISTS customers (
  customer_id BIGINT PRIMARY KEY,
  first_name VARCHAR(64),
  last_name  VARCHAR(64),
  email      VARCHAR(128),
  signup_date DATE,
  country    VARCHAR(64),
  city       VARCHAR(64),
  marketing_opt_in TINYINT(1),
  acquisition_source VARCHAR(32)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"orders", `
CREATE TABLE IF NOT EXISTS orders (
  order_id   BIGINT PRIMARY KEY,
  customer_id BIGINT,
  order_date DATETIME,
  status     VARCHAR(16),
  currency   CHAR(3),
  payment_method VARCHAR(16),
  shipping_country VARCHAR(64),
  discount   DECIMAL(10,2),
  total_amount DECIMAL(12,2),
  INDEX idx_orders_customer (customer_id),
  INDEX idx_orders_date (order_date)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"order_items", `
CREATE TABLE IF NOT EXISTS order_items (
  order_item_id BIGINT PRIMARY KEY,
  order_id  BIGINT,
  product_id BIGINT,
  quantity  INT,
  unit_price DECIMAL(10,2),
  line_total DECIMAL(12,2),
  INDEX idx_items_order (order_id),
  INDEX idx_items_product (product_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// TableNames returns the table names in load order.
func TableNames() []string {
	names := make([]string, len(Tables))
	for i, t := range Tables {
		names[i] = t.Name
	}
	return names
}
