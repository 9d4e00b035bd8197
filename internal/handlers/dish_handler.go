package handlers

import (
	"net/http"
	"strconv"

	"food_storefront/internal/auth"
	"food_storefront/internal/models"
	"food_storefront/internal/services"

	"github.com/gin-gonic/gin"
)

type DishHandler struct {
	catalog services.CatalogService
	gate    *auth.Gate
}

func NewDishHandler(catalog services.CatalogService, gate *auth.Gate) *DishHandler {
	return &DishHandler{catalog: catalog, gate: gate}
}

func (h *DishHandler) ListDishes(c *gin.Context) {
	dishes, err := h.catalog.ListDishes()
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dishes)
}

type createDishRequest struct {
	Title       string  `json:"title" binding:"required"`
	Ingredients string  `json:"ingredients"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

func (h *DishHandler) CreateDish(c *gin.Context) {
	if !h.gate.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
		return
	}

	var req createDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	dish := models.Dish{
		Title:       req.Title,
		Ingredients: req.Ingredients,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}
	if err := h.catalog.AddDish(&dish); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dish)
}

func (h *DishHandler) UpdateDish(c *gin.Context) {
	if !h.gate.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dish id"})
		return
	}

	var patch models.DishPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if patch.Price != nil && *patch.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}

	if err := h.catalog.UpdateDish(id, patch); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

func (h *DishHandler) DeleteDish(c *gin.Context) {
	if !h.gate.IsStaff() {
		c.JSON(http.StatusForbidden, gin.H{"error": "staff access required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dish id"})
		return
	}

	if err := h.catalog.DeleteDish(id); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
