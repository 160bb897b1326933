package handler

import (
	"net/http"

	"github.com/Shrijana18/StockPilot-v1-sub002/internal/middleware"
	"github.com/Shrijana18/StockPilot-v1-sub002/internal/models"
	"github.com/Shrijana18/StockPilot-v1-sub002/pkg/database"

	"github.com/gin-gonic/gin"
)

// RecordsHandler serves the retailer's own customer and inventory records —
// the candidate pools the backfill flow enriches against.
type RecordsHandler struct{}

func (h *RecordsHandler) SearchCustomers(c *gin.Context) {
	retailerID := middleware.RetailerID(c)
	query := c.Query("q")

	customers := []models.Customer{}
	db := database.DB.Where("retailer_id = ?", retailerID)
	if query == "" {
		db.Limit(20).Find(&customers)
	} else {
		db.Where("name LIKE ? OR phone LIKE ?", "%"+query+"%", "%"+query+"%").Find(&customers)
	}
	c.JSON(http.StatusOK, customers)
}

type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (h *RecordsHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{
		RetailerID: middleware.RetailerID(c),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	}

	if err := database.DB.Create(&customer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create customer"})
		return
	}

	c.JSON(http.StatusCreated, customer)
}

func (h *RecordsHandler) ListInventory(c *gin.Context) {
	retailerID := middleware.RetailerID(c)

	var products []models.Product
	if err := database.DB.Where("retailer_id = ? AND is_active = ?", retailerID, true).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory"})
		return
	}
	c.JSON(http.StatusOK, products)
}

type CreateProductRequest struct {
	Name      string  `json:"name" binding:"required"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	Unit      string  `json:"unit"`
	SKU       string  `json:"sku"`
	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
}

func (h *RecordsHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product := models.Product{
		RetailerID:   middleware.RetailerID(c),
		Name:         req.Name,
		Brand:        req.Brand,
		Category:     req.Category,
		Unit:         req.Unit,
		SKU:          req.SKU,
		UnitPrice:    req.UnitPrice,
		CurrentStock: req.Stock,
		IsActive:     true,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}
