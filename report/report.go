// Package report renders Excel artifacts from the school database.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"greenwood.com/sis/attendance"
	"greenwood.com/sis/directory"
)

// Generator writes report workbooks into Dir. Callers own cleanup of the
// generated files.
type Generator struct {
	Dir       string
	Engine    *attendance.Engine
	Directory *directory.Directory
}

func NewGenerator(dir string, engine *attendance.Engine, d *directory.Directory) (*Generator, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create reports dir %s: %w", dir, err)
	}
	return &Generator{Dir: dir, Engine: engine, Directory: d}, nil
}

// reportPath builds a collision-safe filename from a base label.
func (g *Generator) reportPath(base string) string {
	name := fmt.Sprintf("%s_%s_%s.xlsx",
		strings.ReplaceAll(base, " ", "_"),
		time.Now().Format("20060102_150405"), uuid.NewString()[:8])
	return filepath.Join(g.Dir, name)
}

func headerStyle(f *excelize.File) (int, error) {
	return f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
}

// writeSheet lays out a header row plus data rows starting at A1 and
// widens each column to its longest cell, capped at 30 characters.
func writeSheet(f *excelize.File, sheet string, headers []string, rows [][]interface{}) error {
	style, err := headerStyle(f)
	if err != nil {
		return err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
		widths[i] = len(h)
	}

	for r, row := range rows {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
			if c < len(widths) {
				if n := len(fmt.Sprint(v)); n > widths[c] {
					widths[c] = n
				}
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if w > 28 {
			w = 28
		}
		if err := f.SetColWidth(sheet, col, col, float64(w+2)); err != nil {
			return err
		}
	}
	return nil
}

func save(f *excelize.File, path string) error {
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save report %s: %w", path, err)
	}
	return nil
}
