package store

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/zhuruvl/MusicStore/models"
)

// SessionKey is the cookie-like key the cart token travels under.
const SessionKey = "Session"

// ResolveCartID returns the caller's existing cart token, or mints a fresh
// globally-unique one. The second return reports whether a token was minted,
// so the caller knows to persist it (e.g. as a response cookie). Concurrent
// token-less callers each receive their own token.
func ResolveCartID(existing string) (string, bool) {
	if strings.TrimSpace(existing) != "" {
		return existing, false
	}
	return uuid.NewString(), true
}

// ShoppingCart binds the cart operations to one session's cart id.
type ShoppingCart struct {
	carts  CartRepository
	orders OrderRepository
	cartID string
}

func Cart(carts CartRepository, orders OrderRepository, cartID string) ShoppingCart {
	return ShoppingCart{carts: carts, orders: orders, cartID: cartID}
}

func (c ShoppingCart) CartID() string {
	return c.cartID
}

// AddToCart adds one copy of the album: a new line at count 1, or an
// increment of the existing line.
func (c ShoppingCart) AddToCart(ctx context.Context, albumID uint) error {
	return c.carts.AddItem(ctx, c.cartID, albumID)
}

// RemoveFromCart removes one copy from the line and returns the remaining
// count, 0 when the line is gone.
func (c ShoppingCart) RemoveFromCart(ctx context.Context, itemID uint) (int, error) {
	return c.carts.RemoveItem(ctx, c.cartID, itemID)
}

func (c ShoppingCart) Items(ctx context.Context) ([]models.CartItem, error) {
	return c.carts.Items(ctx, c.cartID)
}

func (c ShoppingCart) ItemCount(ctx context.Context) (int, error) {
	return c.carts.ItemCount(ctx, c.cartID)
}

func (c ShoppingCart) Total(ctx context.Context) (float64, error) {
	return c.carts.Total(ctx, c.cartID)
}

// SummaryTitles lists the distinct album titles in the cart in lexicographic
// order, for the cart summary widget.
func (c ShoppingCart) SummaryTitles(ctx context.Context) ([]string, error) {
	return c.carts.Titles(ctx, c.cartID)
}

func (c ShoppingCart) Empty(ctx context.Context) error {
	return c.carts.Empty(ctx, c.cartID)
}

// CreateOrder materializes the cart into the given order draft and returns
// the order id as the confirmation number. The cart is empty afterwards.
func (c ShoppingCart) CreateOrder(ctx context.Context, order *models.Order) (uint, error) {
	return c.orders.Create(ctx, c.cartID, order)
}
