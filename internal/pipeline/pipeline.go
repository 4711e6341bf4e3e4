package pipeline

import (
	"fmt"
	"iter"
	"path/filepath"
	"time"

	"github.com/fatih/color"

	"github.com/harlowd/shopgen/internal/config"
	"github.com/harlowd/shopgen/internal/csvsink"
	"github.com/harlowd/shopgen/internal/database"
	"github.com/harlowd/shopgen/internal/producer"
	"github.com/harlowd/shopgen/internal/sampler"
)

// Pipeline runs the full generate-and-load sequence: schema once, then one
// produce -> write -> load pass per entity in dependency order. Parents
// (products, customers) come before orders, which come before order items.
type Pipeline struct {
	cfg *config.Config
	db  *database.Client // nil skips schema creation and loading
	now time.Time

	// AddForeignKeys adds the cross-table constraints after all loads.
	AddForeignKeys bool
}

func New(cfg *config.Config, db *database.Client) *Pipeline {
	return &Pipeline{cfg: cfg, db: db, now: time.Now().UTC()}
}

// NewAt pins the date-window anchor, which makes output reproducible.
func NewAt(cfg *config.Config, db *database.Client, now time.Time) *Pipeline {
	return &Pipeline{cfg: cfg, db: db, now: now}
}

type stage struct {
	table   string
	columns []string
	rows    iter.Seq[producer.Row]
}

// Run executes the pipeline and returns rows written per table. The first
// failing stage aborts the run; a partial run can only be restarted from
// scratch.
func (p *Pipeline) Run() (map[string]int64, error) {
	s := sampler.NewAt(p.cfg.Seed, p.now)

	if p.db != nil {
		if err := p.db.EnsureSchema(p.cfg.Database); err != nil {
			return nil, err
		}
	}

	stages := []stage{
		{"products", producer.ProductColumns, producer.Products(s, p.cfg.Products)},
		{"customers", producer.CustomerColumns, producer.Customers(s, p.cfg.Customers)},
		{"orders", producer.OrderColumns, producer.Orders(s, p.cfg.Orders, p.cfg.Customers)},
		{"order_items", producer.OrderItemColumns, producer.OrderItems(s, p.cfg.Orders, p.cfg.Products)},
	}

	w := csvsink.Writer{ProgressEvery: p.cfg.ProgressEvery}
	counts := make(map[string]int64, len(stages))

	for _, st := range stages {
		color.Cyan("generating %s...", st.table)
		path := filepath.Join(p.cfg.OutDir, st.table+".csv")
		n, err := w.WriteFile(path, st.columns, st.rows)
		if err != nil {
			return counts, err
		}
		counts[st.table] = n

		if p.db != nil {
			color.Cyan("loading %s into MySQL...", st.table)
			if warn := p.db.EnsureLocalInfile(); warn != nil {
				color.Yellow("warning: %v", warn)
			}
			if err := p.db.LoadCSV(st.table, path); err != nil {
				return counts, err
			}
		}
	}

	if p.db != nil && p.AddForeignKeys {
		color.Cyan("adding foreign keys...")
		if err := p.db.AddForeignKeys(); err != nil {
			return counts, err
		}
	}

	return counts, nil
}

// Summary formats the per-table row counts in load order.
func Summary(counts map[string]int64) string {
	out := ""
	for _, name := range database.TableNames() {
		if n, ok := counts[name]; ok {
			out += fmt.Sprintf("  %-12s %d rows\n", name, n)
		}
	}
	return out
}
