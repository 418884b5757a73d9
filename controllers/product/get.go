package productControllers

import (
	"net/http"
	"strconv"

	"github.com/agroconnect/agroconnect-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/products?category=seed&search=rice
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Order("created_at DESC")
		if category := c.Query("category"); category != "" {
			query = query.Where("category = ?", category)
		}
		if search := c.Query("search"); search != "" {
			query = query.Where("name LIKE ?", "%"+search+"%")
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		if products == nil {
			products = []models.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}

// GET /api/products/:id
func GetProductByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.First(&product, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
