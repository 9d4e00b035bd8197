package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"food_storefront/internal/auth"
	"food_storefront/internal/cart"
	"food_storefront/internal/services"

	"github.com/gin-gonic/gin"
)

// SessionHandler owns login/logout and the cart endpoints of the
// active session.
type SessionHandler struct {
	gate    *auth.Gate
	catalog services.CatalogService
}

func NewSessionHandler(gate *auth.Gate, catalog services.CatalogService) *SessionHandler {
	return &SessionHandler{gate: gate, catalog: catalog}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	role, err := h.gate.Login(req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.gate.Logout()
	c.JSON(http.StatusOK, gin.H{"role": h.gate.Role()})
}

func (h *SessionHandler) GetCart(c *gin.Context) {
	h.respondCart(c, h.gate.Cart())
}

type addCartItemRequest struct {
	DishID int64 `json:"dish_id" binding:"required"`
}

func (h *SessionHandler) AddCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	dish, err := h.catalog.GetDish(req.DishID)
	if err != nil {
		if errors.Is(err, services.ErrDishNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "dish not found"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	h.respondCart(c, h.gate.AddToCart(*dish))
}

type adjustCartItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *SessionHandler) AdjustCartItem(c *gin.Context) {
	dishID, err := strconv.ParseInt(c.Param("dishId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dish id"})
		return
	}

	var req adjustCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	h.respondCart(c, h.gate.AdjustCartQuantity(dishID, req.Delta))
}

func (h *SessionHandler) RemoveCartItem(c *gin.Context) {
	dishID, err := strconv.ParseInt(c.Param("dishId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dish id"})
		return
	}

	h.respondCart(c, h.gate.RemoveFromCart(dishID))
}

func (h *SessionHandler) respondCart(c *gin.Context, lines cart.Cart) {
	c.JSON(http.StatusOK, gin.H{
		"items":       lines,
		"total_price": cart.TotalPrice(lines),
		"total_count": cart.TotalCount(lines),
	})
}
