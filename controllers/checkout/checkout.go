package checkoutControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	orderControllers "github.com/zhuruvl/MusicStore/controllers/order"
	"github.com/zhuruvl/MusicStore/models"
	"github.com/zhuruvl/MusicStore/store"
)

// Stand-in for payment processing: orders go through only with this code.
const promoCode = "FREE"

type AddressAndPaymentInput struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email" binding:"required,email"`
	PromoCode  string `json:"promo_code" binding:"required"`
}

// POST /checkout
func PlaceOrder(carts store.CartRepository, orders store.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddressAndPaymentInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if !strings.EqualFold(input.PromoCode, promoCode) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid promo code"})
			return
		}

		order := models.Order{
			Username:   username,
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Address:    input.Address,
			City:       input.City,
			State:      input.State,
			PostalCode: input.PostalCode,
			Country:    input.Country,
			Phone:      input.Phone,
			Email:      input.Email,
			OrderDate:  time.Now(),
		}

		cart := store.Cart(carts, orders, c.GetString("cart_id"))
		orderID, err := cart.CreateOrder(c.Request.Context(), &order)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		orderControllers.BroadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{"order_id": orderID})
	}
}

// GET /checkout/complete/:id
func Complete(orders store.OrderRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.GetString("username")
		if username == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
			return
		}

		order, err := orders.ByID(c.Request.Context(), uint(orderID))
		if err != nil {
			if errors.Is(err, store.ErrOrderNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// An order confirmation is only visible to the user who placed it
		if order.Username != username {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"order_id": order.ID, "total": order.Total})
	}
}
