package render

import "github.com/fumiama/go-docx"

// AddTable appends a grid with one column per header cell and one row per
// entry of rows plus the header row. Header cells are bold and shaded. Cells
// beyond the header width are dropped; missing cells are left empty.
func (d *Document) AddTable(header []string, rows [][]string) *docx.Table {
	if len(header) == 0 {
		return nil
	}
	tbl := d.doc.AddTable(1+len(rows), len(header), 0, nil)

	for j, text := range header {
		cell := tbl.TableRows[0].TableCells[j]
		d.AddRun(cell.AddParagraph(), text).Bold()
		if d.style.TableHead != "" {
			cell.Shade("clear", "auto", d.style.TableHead)
		}
	}
	for i, row := range rows {
		for j, cell := range tbl.TableRows[i+1].TableCells {
			p := cell.AddParagraph()
			if j < len(row) && row[j] != "" {
				d.AddRun(p, row[j])
			}
		}
	}
	return tbl
}
