package store

import (
	"context"
	"math"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zhuruvl/MusicStore/models"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// A single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.Genre{}, &models.Artist{}, &models.Album{},
		&models.CartItem{}, &models.Order{}, &models.OrderDetail{},
	); err != nil {
		t.Fatalf("Failed to migrate schema: %v", err)
	}

	return db
}

func seedAlbum(t *testing.T, db *gorm.DB, title string, price float64) models.Album {
	t.Helper()

	genre := models.Genre{Name: "Rock " + title}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("Failed to seed genre: %v", err)
	}
	artist := models.Artist{Name: "Artist " + title}
	if err := db.Create(&artist).Error; err != nil {
		t.Fatalf("Failed to seed artist: %v", err)
	}
	album := models.Album{Title: title, ArtistID: artist.ID, GenreID: genre.ID, Price: price}
	if err := db.Create(&album).Error; err != nil {
		t.Fatalf("Failed to seed album: %v", err)
	}
	return album
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestResolveCartID(t *testing.T) {
	id, minted := ResolveCartID("existing-token")
	if minted {
		t.Error("Expected no minting for an existing token")
	}
	if id != "existing-token" {
		t.Errorf("Expected existing token back, got %q", id)
	}

	first, minted := ResolveCartID("")
	if !minted || first == "" {
		t.Errorf("Expected a minted token, got %q (minted=%v)", first, minted)
	}
	second, _ := ResolveCartID("")
	if first == second {
		t.Error("Two token-less callers should get distinct tokens")
	}
	blank, minted := ResolveCartID("   ")
	if !minted || blank == "" {
		t.Error("Whitespace-only token should be treated as absent")
	}
}

func TestAddToCartIncrementsPerCall(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Nevermind", 10.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	for i := 1; i <= 5; i++ {
		if err := cart.AddToCart(ctx, album.ID); err != nil {
			t.Fatalf("Add %d failed: %v", i, err)
		}
		count, err := cart.ItemCount(ctx)
		if err != nil {
			t.Fatalf("ItemCount failed: %v", err)
		}
		if count != i {
			t.Errorf("Expected count %d after %d adds, got %d", i, i, count)
		}
	}

	// All adds land on a single row
	var rows int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", "cart-a").Count(&rows)
	if rows != 1 {
		t.Errorf("Expected 1 cart row, got %d", rows)
	}
}

func TestAddToCartUnknownAlbum(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	if err := cart.AddToCart(ctx, 4242); err != ErrAlbumNotFound {
		t.Errorf("Expected ErrAlbumNotFound, got %v", err)
	}

	var rows int64
	db.Model(&models.CartItem{}).Count(&rows)
	if rows != 0 {
		t.Errorf("Expected no mutation on rejected add, got %d rows", rows)
	}
}

func TestRemoveFromCart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Thriller", 10.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	cart.AddToCart(ctx, album.ID)
	cart.AddToCart(ctx, album.ID)

	var item models.CartItem
	if err := db.Where("cart_id = ?", "cart-a").First(&item).Error; err != nil {
		t.Fatalf("Expected a cart row: %v", err)
	}

	remaining, err := cart.RemoveFromCart(ctx, item.ID)
	if err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if remaining != 1 {
		t.Errorf("Expected remaining 1, got %d", remaining)
	}

	remaining, err = cart.RemoveFromCart(ctx, item.ID)
	if err != nil {
		t.Fatalf("Second remove failed: %v", err)
	}
	if remaining != 0 {
		t.Errorf("Expected remaining 0, got %d", remaining)
	}

	// Row at count 1 is deleted, not decremented to zero
	var rows int64
	db.Model(&models.CartItem{}).Where("cart_id = ?", "cart-a").Count(&rows)
	if rows != 0 {
		t.Errorf("Expected row deleted, got %d rows", rows)
	}

	count, _ := cart.ItemCount(ctx)
	if count != 0 {
		t.Errorf("Expected item count 0 after delete, got %d", count)
	}
}

func TestRemoveFromCartWrongCart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Legend", 9.99)
	ctx := context.Background()

	owner := Cart(repo, repo, "cart-owner")
	owner.AddToCart(ctx, album.ID)

	var item models.CartItem
	db.Where("cart_id = ?", "cart-owner").First(&item)

	// A cross-cart reference must fail as not-found, without mutation
	other := Cart(repo, repo, "cart-other")
	if _, err := other.RemoveFromCart(ctx, item.ID); err != ErrCartItemNotFound {
		t.Errorf("Expected ErrCartItemNotFound, got %v", err)
	}

	count, _ := owner.ItemCount(ctx)
	if count != 1 {
		t.Errorf("Owner cart should be untouched, got count %d", count)
	}
}

func TestCartTotalUsesLivePrices(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Kind of Blue", 9.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")

	total, err := cart.Total(ctx)
	if err != nil {
		t.Fatalf("Total failed: %v", err)
	}
	if !almostEqual(total, 0) {
		t.Errorf("Expected empty cart total 0, got %v", total)
	}

	cart.AddToCart(ctx, album.ID)
	cart.AddToCart(ctx, album.ID)

	total, _ = cart.Total(ctx)
	if !almostEqual(total, 19.98) {
		t.Errorf("Expected total 19.98, got %v", total)
	}

	// Catalog price changes before checkout flow straight into the total
	if err := db.Model(&models.Album{}).Where("id = ?", album.ID).Update("price", 12.50).Error; err != nil {
		t.Fatalf("Failed to update price: %v", err)
	}
	total, _ = cart.Total(ctx)
	if !almostEqual(total, 25.00) {
		t.Errorf("Expected total 25.00 after price change, got %v", total)
	}
}

func TestSummaryTitlesSortedDistinct(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	zeppelin := seedAlbum(t, db, "Physical Graffiti", 8.99)
	abba := seedAlbum(t, db, "Arrival", 7.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	cart.AddToCart(ctx, zeppelin.ID)
	cart.AddToCart(ctx, abba.ID)
	cart.AddToCart(ctx, zeppelin.ID) // duplicate add must not duplicate the title

	titles, err := cart.SummaryTitles(ctx)
	if err != nil {
		t.Fatalf("SummaryTitles failed: %v", err)
	}
	if len(titles) != 2 {
		t.Fatalf("Expected 2 distinct titles, got %v", titles)
	}
	if titles[0] != "Arrival" || titles[1] != "Physical Graffiti" {
		t.Errorf("Expected lexicographic order, got %v", titles)
	}
}

// The full spec scenario: empty cart, add 9.99 album twice, remove one,
// checkout.
func TestCheckoutScenario(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Kind of Blue", 9.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	cart.AddToCart(ctx, album.ID)
	cart.AddToCart(ctx, album.ID)

	count, _ := cart.ItemCount(ctx)
	total, _ := cart.Total(ctx)
	if count != 2 || !almostEqual(total, 19.98) {
		t.Errorf("Expected count 2 / total 19.98, got %d / %v", count, total)
	}

	var item models.CartItem
	db.Where("cart_id = ?", "cart-a").First(&item)
	cart.RemoveFromCart(ctx, item.ID)

	count, _ = cart.ItemCount(ctx)
	total, _ = cart.Total(ctx)
	if count != 1 || !almostEqual(total, 9.99) {
		t.Errorf("Expected count 1 / total 9.99, got %d / %v", count, total)
	}

	order := models.Order{Username: "testuser"}
	orderID, err := cart.CreateOrder(ctx, &order)
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}
	if orderID == 0 {
		t.Error("Expected a valid order id")
	}

	placed, err := repo.ByID(ctx, orderID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if !almostEqual(placed.Total, 9.99) {
		t.Errorf("Expected order total 9.99, got %v", placed.Total)
	}
	if len(placed.Details) != 1 {
		t.Fatalf("Expected 1 detail row, got %d", len(placed.Details))
	}
	detail := placed.Details[0]
	if detail.AlbumID != album.ID || detail.Quantity != 1 || !almostEqual(detail.UnitPrice, 9.99) {
		t.Errorf("Unexpected detail row: %+v", detail)
	}

	count, _ = cart.ItemCount(ctx)
	if count != 0 {
		t.Errorf("Expected empty cart after checkout, got count %d", count)
	}
}

func TestCreateOrderEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-empty")
	order := models.Order{Username: "testuser"}
	orderID, err := cart.CreateOrder(ctx, &order)
	if err != nil {
		t.Fatalf("CreateOrder on empty cart failed: %v", err)
	}

	placed, err := repo.ByID(ctx, orderID)
	if err != nil {
		t.Fatalf("ByID failed: %v", err)
	}
	if !almostEqual(placed.Total, 0) {
		t.Errorf("Expected total 0, got %v", placed.Total)
	}
	if len(placed.Details) != 0 {
		t.Errorf("Expected zero detail rows, got %d", len(placed.Details))
	}
}

func TestCreateOrderOverridesSuppliedTotal(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Back in Black", 8.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	cart.AddToCart(ctx, album.ID)

	order := models.Order{Username: "testuser", Total: 999.99}
	orderID, err := cart.CreateOrder(ctx, &order)
	if err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	placed, _ := repo.ByID(ctx, orderID)
	if !almostEqual(placed.Total, 8.99) {
		t.Errorf("Client-supplied total should be overwritten, got %v", placed.Total)
	}
}

func TestCreateOrderFreezesUnitPrice(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Highway to Hell", 8.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	cart.AddToCart(ctx, album.ID)

	order := models.Order{Username: "testuser"}
	orderID, _ := cart.CreateOrder(ctx, &order)

	// A later catalog price change must not leak into the placed order
	db.Model(&models.Album{}).Where("id = ?", album.ID).Update("price", 99.99)

	placed, _ := repo.ByID(ctx, orderID)
	if !almostEqual(placed.Total, 8.99) {
		t.Errorf("Expected frozen total 8.99, got %v", placed.Total)
	}
	if len(placed.Details) != 1 || !almostEqual(placed.Details[0].UnitPrice, 8.99) {
		t.Errorf("Expected frozen unit price 8.99, got %+v", placed.Details)
	}
}

func TestCartIsolationByCartID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Bad Girls", 7.99)
	ctx := context.Background()

	cartA := Cart(repo, repo, "cart-a")
	cartB := Cart(repo, repo, "cart-b")

	cartA.AddToCart(ctx, album.ID)
	cartA.AddToCart(ctx, album.ID)
	cartB.AddToCart(ctx, album.ID)

	countA, _ := cartA.ItemCount(ctx)
	countB, _ := cartB.ItemCount(ctx)
	if countA != 2 || countB != 1 {
		t.Errorf("Expected isolated counts 2/1, got %d/%d", countA, countB)
	}

	// Checking out A must not disturb B
	order := models.Order{Username: "usera"}
	if _, err := cartA.CreateOrder(ctx, &order); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	countA, _ = cartA.ItemCount(ctx)
	countB, _ = cartB.ItemCount(ctx)
	if countA != 0 || countB != 1 {
		t.Errorf("Expected counts 0/1 after A's checkout, got %d/%d", countA, countB)
	}
}

func TestOrdersByUsername(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormStore(db)
	album := seedAlbum(t, db, "Arrival", 7.99)
	ctx := context.Background()

	cart := Cart(repo, repo, "cart-a")
	cart.AddToCart(ctx, album.ID)
	if _, err := cart.CreateOrder(ctx, &models.Order{Username: "alice"}); err != nil {
		t.Fatalf("CreateOrder failed: %v", err)
	}

	mine, err := repo.ByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("ByUsername failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("Expected 1 order for alice, got %d", len(mine))
	}

	theirs, _ := repo.ByUsername(ctx, "bob")
	if len(theirs) != 0 {
		t.Errorf("Expected no orders for bob, got %d", len(theirs))
	}

	if _, err := repo.ByID(ctx, 4242); err != ErrOrderNotFound {
		t.Errorf("Expected ErrOrderNotFound, got %v", err)
	}
}
