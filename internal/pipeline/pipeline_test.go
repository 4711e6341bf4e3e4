package pipeline

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/harlowd/shopgen/internal/config"
)

var testNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func testConfig(outDir string) *config.Config {
	return &config.Config{
		Database:      "ecommerce_synth",
		OutDir:        outDir,
		Customers:     10,
		Products:      10,
		Orders:        20,
		Seed:          42,
		ProgressEvery: 0,
	}
}

func TestRunWritesAllFiles(t *testing.T) {
	dir := t.TempDir()

	counts, err := NewAt(testConfig(dir), nil, testNow).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if counts["products"] != 10 || counts["customers"] != 10 || counts["orders"] != 20 {
		t.Fatalf("unexpected counts: %v", counts)
	}
	if items := counts["order_items"]; items < 20 || items > 120 {
		t.Fatalf("order_items = %d, want between 20 and 120", items)
	}

	for _, name := range []string{"products.csv", "customers.csv", "orders.csv", "order_items.csv"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("missing output %s: %v", name, err)
		}
		if !bytes.HasSuffix(data, []byte("\n")) {
			t.Errorf("%s does not end with a newline", name)
		}
	}
}

func TestRunZeroCustomers(t *testing.T) {
	dir := t.TempDir()
	cfg := testConfig(dir)
	cfg.Customers = 0
	cfg.Orders = 0

	counts, err := NewAt(cfg, nil, testNow).Run()
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if counts["customers"] != 0 {
		t.Fatalf("customers = %d, want 0", counts["customers"])
	}

	data, err := os.ReadFile(filepath.Join(dir, "customers.csv"))
	if err != nil {
		t.Fatalf("missing customers.csv: %v", err)
	}
	if lines := bytes.Count(data, []byte("\n")); lines != 1 {
		t.Fatalf("customers.csv has %d lines, want header only", lines)
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() map[string][]byte {
		t.Helper()
		dir := t.TempDir()
		if _, err := NewAt(testConfig(dir), nil, testNow).Run(); err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		files := map[string][]byte{}
		for _, name := range []string{"products.csv", "customers.csv", "orders.csv", "order_items.csv"} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				t.Fatalf("failed to read %s: %v", name, err)
			}
			files[name] = data
		}
		return files
	}

	first := run()
	second := run()
	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Errorf("%s differs between identically seeded runs", name)
		}
	}
}

func TestSummary(t *testing.T) {
	out := Summary(map[string]int64{
		"products":    3,
		"customers":   2,
		"orders":      5,
		"order_items": 9,
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("summary has %d lines, want 4", len(lines))
	}
	// Load order, not map order.
	if !strings.Contains(lines[0], "products") || !strings.Contains(lines[3], "order_items") {
		t.Errorf("summary out of order:\n%s", out)
	}
}
