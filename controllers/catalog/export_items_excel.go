package catalogControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/kroogliy/maitsevcatering-sub000/catalog"
)

// GET /admin/catalog/export
// Dumps the cached catalog to an Excel sheet for back-office use.
func ExportItemsToExcel(store *catalog.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		items := store.AllItems()
		if len(items) == 0 && !store.IsReady() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog not loaded yet"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Catalog")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Type", "Name (EN)", "Name (ET)", "Name (RU)", "Slug",
			"Price", "Category", "Subcategory", "Volume", "Degree",
			"Alcoholic", "Images",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, item := range items {
			row := sheet.AddRow()

			itemType := "product"
			if item.IsDrink {
				itemType = "alkohol"
			}

			row.AddCell().SetValue(item.ID)
			row.AddCell().SetValue(itemType)
			row.AddCell().SetValue(item.DisplayName("en"))
			row.AddCell().SetValue(item.DisplayName("et"))
			row.AddCell().SetValue(item.DisplayName("ru"))
			row.AddCell().SetValue(item.Slug)
			row.AddCell().SetValue(item.Price)
			row.AddCell().SetValue(item.CategoryID)
			row.AddCell().SetValue(item.SubcategoryID)
			row.AddCell().SetValue(item.Volume)
			row.AddCell().SetValue(item.Degree)
			row.AddCell().SetValue(item.IsAlcoholic)
			row.AddCell().SetValue(strings.Join(item.Images, ","))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=catalog.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		// Write file to response
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
