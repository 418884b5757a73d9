package productControllers

import (
	"net/http"

	"github.com/agroconnect/agroconnect-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /api/products/export (API-key protected)
func ExportProductsToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		// Header row
		headers := []string{
			"ID", "Name", "Category", "Price", "Unit", "Stock",
			"Rating", "Reviews", "Seller", "Location", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		// Data rows
		for _, p := range products {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Category)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.Unit)
			row.AddCell().SetValue(p.Stock)
			row.AddCell().SetValue(p.Rating)
			row.AddCell().SetValue(p.Reviews)
			row.AddCell().SetValue(p.Seller)
			row.AddCell().SetValue(p.Location)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		// Set response headers for download
		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
