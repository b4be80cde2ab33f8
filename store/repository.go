package store

import (
	"context"
	"errors"

	"github.com/zhuruvl/MusicStore/models"
)

var (
	ErrAlbumNotFound    = errors.New("album not found")
	ErrCartItemNotFound = errors.New("cart item not found")
	ErrOrderNotFound    = errors.New("order not found")
)

// CartRepository scopes every read and write by the opaque cart id. Rows of
// one cart are never visible through another cart's id.
type CartRepository interface {
	// AddItem creates a (cartID, albumID) line with count 1, or increments
	// the existing line. The album must exist; ErrAlbumNotFound is returned
	// before any mutation otherwise.
	AddItem(ctx context.Context, cartID string, albumID uint) error

	// RemoveItem decrements the line and returns the remaining count. A line
	// at count 1 is deleted and 0 is returned. Items belonging to another
	// cart are reported as ErrCartItemNotFound.
	RemoveItem(ctx context.Context, cartID string, itemID uint) (int, error)

	// Items returns the cart lines joined with their albums.
	Items(ctx context.Context, cartID string) ([]models.CartItem, error)

	// ItemCount sums the line counts, 0 for an empty cart.
	ItemCount(ctx context.Context, cartID string) (int, error)

	// Total sums count times the current album price over all lines.
	// Prices are live: they are not snapshotted until checkout.
	Total(ctx context.Context, cartID string) (float64, error)

	// Titles lists the distinct album titles in the cart, lexicographically.
	Titles(ctx context.Context, cartID string) ([]string, error)

	// Empty deletes every line of the cart.
	Empty(ctx context.Context, cartID string) error
}

// OrderRepository materializes and reads back placed orders.
type OrderRepository interface {
	// Create snapshots the cart into order + detail rows in one transaction:
	// unit prices are frozen at their current catalog values, the total is
	// recomputed server-side overwriting whatever the draft carried, and the
	// cart is cleared. Nothing is visible on partial failure. An empty cart
	// yields an order with zero detail rows and a total of 0.
	Create(ctx context.Context, cartID string, order *models.Order) (uint, error)

	ByID(ctx context.Context, id uint) (models.Order, error)
	ByUsername(ctx context.Context, username string) ([]models.Order, error)
}
