package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/zhuruvl/MusicStore/store"
)

// GET /cart
func GetCart(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := store.Cart(carts, nil, c.GetString("cart_id"))
		ctx := c.Request.Context()

		items, err := cart.Items(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		total, err := cart.Total(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cart total"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart_items": items, "cart_total": total})
	}
}

// POST /cart/add/:album_id
func AddToCart(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		albumID, err := strconv.ParseUint(c.Param("album_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid album ID"})
			return
		}

		cart := store.Cart(carts, nil, c.GetString("cart_id"))
		ctx := c.Request.Context()

		if err := cart.AddToCart(ctx, uint(albumID)); err != nil {
			if errors.Is(err, store.ErrAlbumNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Album does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		count, err := cart.ItemCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart count"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cart_count": count})
	}
}

// POST /cart/remove/:id
func RemoveFromCart(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item ID"})
			return
		}

		cart := store.Cart(carts, nil, c.GetString("cart_id"))
		ctx := c.Request.Context()

		remaining, err := cart.RemoveFromCart(ctx, uint(itemID))
		if err != nil {
			if errors.Is(err, store.ErrCartItemNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		count, err := cart.ItemCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart count"})
			return
		}
		total, err := cart.Total(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute cart total"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":    "Item removed from cart",
			"delete_id":  itemID,
			"item_count": remaining,
			"cart_count": count,
			"cart_total": total,
		})
	}
}

// GET /cart/summary
func GetCartSummary(carts store.CartRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart := store.Cart(carts, nil, c.GetString("cart_id"))
		ctx := c.Request.Context()

		count, err := cart.ItemCount(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart count"})
			return
		}
		titles, err := cart.SummaryTitles(ctx)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart summary"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"cart_count": count, "cart_summary": titles})
	}
}
