package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/zhuruvl/MusicStore/store"
)

// Anonymous carts are kept around for a year.
const cartCookieMaxAge = 365 * 24 * 60 * 60

// ResolveCart ensures every request carries a cart id: the Session cookie
// value when present, otherwise a freshly minted token sent back as a cookie.
// Handlers read it with c.GetString("cart_id").
func ResolveCart(c *gin.Context) {
	existing, _ := c.Cookie(store.SessionKey)

	cartID, minted := store.ResolveCartID(existing)
	if minted {
		c.SetCookie(store.SessionKey, cartID, cartCookieMaxAge, "/", "", false, true)
	}

	c.Set("cart_id", cartID)
	c.Next()
}
