package inventorycontroller

import (
	"context"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/Gbotemi-ojo/quick-medics-management/client"
)

// ExportXLSX streams the full inventory (under the current search and sort)
// as a spreadsheet. It walks every page so the export is not limited to the
// rows on screen.
func (c *ListController) ExportXLSX(ctx context.Context, w io.Writer) error {
	c.mu.Lock()
	q := client.ListQuery{
		Page:      1,
		Limit:     c.pageSize,
		Search:    c.applied,
		SortBy:    c.sortBy,
		SortOrder: c.sortOrder,
	}
	c.mu.Unlock()

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Inventory")
	if err != nil {
		return err
	}

	headers := []string{"ID", "Name", "Category", "Price", "Stock", "Discount %", "Featured", "Image", "Created"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().SetValue(h)
	}

	for {
		page, err := c.api.FetchDrugs(ctx, q)
		if err != nil {
			return err
		}
		for _, d := range page.Items {
			row := sheet.AddRow()
			row.AddCell().SetValue(d.ID)
			row.AddCell().SetValue(d.Name)
			row.AddCell().SetValue(d.Category)
			row.AddCell().SetValue(d.Price)
			row.AddCell().SetValue(d.Stock)
			row.AddCell().SetValue(d.DiscountPercent)
			row.AddCell().SetValue(d.IsFeatured)
			row.AddCell().SetValue(d.Image)
			row.AddCell().SetValue(d.CreatedAt.Format("2006-01-02 15:04:05"))
		}
		if q.Page >= page.TotalPages || len(page.Items) == 0 {
			break
		}
		q.Page++
	}

	return file.Write(w)
}
