package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/logger"
	"github.com/zhuruvl/MusicStore/models"
)

// GormStore implements CartRepository and OrderRepository on GORM.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) AddItem(ctx context.Context, cartID string, albumID uint) error {
	db := s.db.WithContext(ctx)

	// Validate the album reference before touching the cart
	var album models.Album
	if err := db.First(&album, "id = ?", albumID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAlbumNotFound
		}
		return err
	}

	var item models.CartItem
	err := db.Where("cart_id = ? AND album_id = ?", cartID, albumID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			item = models.CartItem{
				CartID:      cartID,
				AlbumID:     album.ID,
				Count:       1,
				DateCreated: time.Now(),
			}
			return db.Create(&item).Error
		}
		return err
	}

	item.Count++
	return db.Save(&item).Error
}

func (s *GormStore) RemoveItem(ctx context.Context, cartID string, itemID uint) (int, error) {
	db := s.db.WithContext(ctx)

	var item models.CartItem
	err := db.Where("id = ? AND cart_id = ?", itemID, cartID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCartItemNotFound
		}
		return 0, err
	}

	if item.Count > 1 {
		item.Count--
		if err := db.Save(&item).Error; err != nil {
			return 0, err
		}
		return item.Count, nil
	}

	if err := db.Delete(&item).Error; err != nil {
		return 0, err
	}
	return 0, nil
}

func (s *GormStore) Items(ctx context.Context, cartID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Album").
		Where("cart_id = ?", cartID).
		Order("id").
		Find(&items).Error
	return items, err
}

func (s *GormStore) ItemCount(ctx context.Context, cartID string) (int, error) {
	var count int
	err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("cart_id = ?", cartID).
		Select("COALESCE(SUM(count), 0)").
		Scan(&count).Error
	return count, err
}

func (s *GormStore) Total(ctx context.Context, cartID string) (float64, error) {
	var total float64
	err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Joins("JOIN albums ON albums.id = cart_items.album_id").
		Where("cart_items.cart_id = ?", cartID).
		Select("COALESCE(SUM(cart_items.count * albums.price), 0)").
		Scan(&total).Error
	return total, err
}

func (s *GormStore) Titles(ctx context.Context, cartID string) ([]string, error) {
	var titles []string
	err := s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Joins("JOIN albums ON albums.id = cart_items.album_id").
		Where("cart_items.cart_id = ?", cartID).
		Distinct().
		Order("albums.title").
		Pluck("albums.title", &titles).Error
	return titles, err
}

func (s *GormStore) Empty(ctx context.Context, cartID string) error {
	return s.db.WithContext(ctx).
		Where("cart_id = ?", cartID).
		Delete(&models.CartItem{}).Error
}

// orderLine is one cart row joined with the current album price.
type orderLine struct {
	AlbumID uint
	Count   int
	Price   float64
}

func (s *GormStore) Create(ctx context.Context, cartID string, order *models.Order) (uint, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []orderLine
		if err := tx.Model(&models.CartItem{}).
			Joins("JOIN albums ON albums.id = cart_items.album_id").
			Where("cart_items.cart_id = ?", cartID).
			Select("cart_items.album_id AS album_id, cart_items.count AS count, albums.price AS price").
			Scan(&lines).Error; err != nil {
			return err
		}

		var total float64
		details := make([]models.OrderDetail, 0, len(lines))
		for _, line := range lines {
			details = append(details, models.OrderDetail{
				AlbumID:   line.AlbumID,
				UnitPrice: line.Price,
				Quantity:  line.Count,
			})
			total += float64(line.Count) * line.Price
		}

		// The computed total always wins over whatever the draft carried
		order.Total = total
		order.Details = details

		if err := tx.Create(order).Error; err != nil {
			return err
		}

		return tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return 0, err
	}

	logger.Log.Infow("Order placed", "order_id", order.ID, "username", order.Username, "total", order.Total, "lines", len(order.Details))
	return order.ID, nil
}

func (s *GormStore) ByID(ctx context.Context, id uint) (models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).Preload("Details").First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order, ErrOrderNotFound
	}
	return order, err
}

func (s *GormStore) ByUsername(ctx context.Context, username string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Details").
		Where("username = ?", username).
		Order("order_date desc").
		Find(&orders).Error
	return orders, err
}
