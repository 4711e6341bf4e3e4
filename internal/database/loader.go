package database

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// EnsureLocalInfile probes whether the server accepts LOAD DATA LOCAL and,
// if not, attempts the global enable. Insufficient privilege is not fatal:
// the returned warning describes it and the subsequent load decides the
// outcome. The probe runs once per client.
func (c *Client) EnsureLocalInfile() (warning error) {
	if c.infileProbed {
		return nil
	}
	c.infileProbed = true

	var name, value string
	if err := c.db.QueryRow("SHOW VARIABLES LIKE 'local_infile'").Scan(&name, &value); err != nil {
		return fmt.Errorf("could not probe local_infile: %w", err)
	}
	switch strings.ToLower(value) {
	case "on", "1", "true":
		return nil
	}

	// Needs SUPER or SYSTEM_VARIABLES_ADMIN.
	if _, err := c.db.Exec("SET GLOBAL local_infile = 1"); err != nil {
		return fmt.Errorf("could not enable local_infile, will attempt LOAD DATA LOCAL anyway: %w", err)
	}
	return nil
}

// LoadCSV bulk-imports a header-prefixed CSV file into a table, with
// foreign key checks suspended for the duration. Rows in the file may
// reference keys that arrive in a later load.
func (c *Client) LoadCSV(table, path string) error {
	if !validIdentifier.MatchString(table) {
		return fmt.Errorf("invalid table name: %q", table)
	}
	if c.database == "" {
		return fmt.Errorf("no database selected")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	// The driver refuses local files unless they are allow-listed.
	mysql.RegisterLocalFile(abs)
	defer mysql.DeregisterLocalFile(abs)

	if _, err := c.db.Exec("SET FOREIGN_KEY_CHECKS=0"); err != nil {
		return fmt.Errorf("failed to disable foreign key checks: %w", err)
	}
	if _, err := c.db.Exec(loadStatement(c.database, table, abs)); err != nil {
		return fmt.Errorf("failed to bulk load %s into %s: %w", filepath.Base(abs), table, err)
	}
	if _, err := c.db.Exec("SET FOREIGN_KEY_CHECKS=1"); err != nil {
		return fmt.Errorf("failed to re-enable foreign key checks: %w", err)
	}
	return nil
}

func loadStatement(db, table, absPath string) string {
	return fmt.Sprintf("LOAD DATA LOCAL INFILE '%s' INTO TABLE `%s`.`%s` "+
		"FIELDS TERMINATED BY ',' ENCLOSED BY '\"' "+
		"LINES TERMINATED BY '\\n' IGNORE 1 LINES",
		strings.ReplaceAll(absPath, `'`, `\'`), db, table)
}
