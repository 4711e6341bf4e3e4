package csvsink

import (
	"encoding/csv"
	"fmt"
	"iter"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/harlowd/shopgen/internal/producer"
)

// Writer streams rows to a CSV file, reporting cumulative counts while a
// long write is in flight. The zero value writes silently.
type Writer struct {
	// ProgressEvery is the row interval between progress lines; <= 0
	// disables them.
	ProgressEvery int64
}

// WriteFile creates path (and its parent directories), writes the header
// followed by one line per row, and returns the number of data rows
// written. Rows are consumed lazily; the full sequence is never held in
// memory.
func (w Writer) WriteFile(path string, header []string, rows iter.Seq[producer.Row]) (int64, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.Write(header); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to write header to %s: %w", path, err)
	}

	var written int64
	for row := range rows {
		if err := cw.Write(row); err != nil {
			f.Close()
			return written, fmt.Errorf("failed to write row to %s: %w", path, err)
		}
		written++
		if w.ProgressEvery > 0 && written%w.ProgressEvery == 0 {
			color.Cyan("  wrote %d rows -> %s", written, filepath.Base(path))
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		f.Close()
		return written, fmt.Errorf("failed to flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return written, fmt.Errorf("failed to close %s: %w", path, err)
	}

	color.Green("  done %d rows -> %s", written, filepath.Base(path))
	return written, nil
}
