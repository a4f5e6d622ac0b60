package repository

import (
	"context"
	"testing"

	"restaurant-management-api/config"
	"restaurant-management-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenDB("sqlite", ":memory:")
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func seedRestaurant(t *testing.T, db *gorm.DB, contact string) (*models.Admin, *models.Restaurant) {
	t.Helper()
	ctx := context.Background()
	admin := &models.Admin{Name: "Ana", Email: contact + "@x.com", PasswordHash: "h", Role: models.RoleAdmin}
	require.NoError(t, NewAdminRepository(db).Create(ctx, admin))
	rest := &models.Restaurant{Name: "Bistro", Address: "1 Main Street", Contact: contact, OwnerID: admin.ID, QRCodeID: "QR-" + contact}
	require.NoError(t, NewRestaurantRepository(db).Create(ctx, rest))
	return admin, rest
}

func TestAdminDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Admin{Name: "Ana", Email: "a@x.com", PasswordHash: "h", Role: models.RoleAdmin}))
	err := repo.Create(ctx, &models.Admin{Name: "Bo", Email: "a@x.com", PasswordHash: "h", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrDuplicate)

	exists, err := repo.ExistsByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestAdminFindMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAdminRepository(db)

	_, err := repo.FindByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.FindByEmail(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantContactUnique(t *testing.T) {
	db := setupTestDB(t)
	admin, rest := seedRestaurant(t, db, "9876543210")
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	taken, err := repo.ContactTaken(ctx, "9876543210", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ContactTaken(ctx, "9876543210", rest.ID)
	require.NoError(t, err)
	assert.False(t, taken, "own contact does not count")

	err = repo.Create(ctx, &models.Restaurant{Name: "Other", Address: "2 Main Street", Contact: "9876543210", OwnerID: admin.ID, QRCodeID: "QR-2"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestRestaurantUpdateKeepsQRCode(t *testing.T) {
	db := setupTestDB(t)
	_, rest := seedRestaurant(t, db, "9876543210")
	repo := NewRestaurantRepository(db)
	ctx := context.Background()

	rest.Name = "Renamed"
	rest.QRCodeID = "QR-hijack"
	require.NoError(t, repo.Update(ctx, rest))

	got, err := repo.FindByID(ctx, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "QR-9876543210", got.QRCodeID)
}

func TestChefWaiterPasswordExcludedByDefault(t *testing.T) {
	db := setupTestDB(t)
	admin, rest := seedRestaurant(t, db, "9876543210")
	repo := NewChefWaiterRepository(db)
	ctx := context.Background()

	cw := &models.ChefWaiter{Name: "Cy", Email: "cy@x.com", PasswordHash: "digest", Role: models.RoleChef, RestaurantID: rest.ID, AdminID: admin.ID}
	require.NoError(t, repo.Create(ctx, cw))

	got, err := repo.FindByID(ctx, cw.ID)
	require.NoError(t, err)
	assert.Empty(t, got.PasswordHash)
	assert.Equal(t, "cy@x.com", got.Email)

	withPw, err := repo.FindByEmailWithPassword(ctx, "cy@x.com")
	require.NoError(t, err)
	assert.Equal(t, "digest", withPw.PasswordHash)

	removed, err := repo.Delete(ctx, cw.ID)
	require.NoError(t, err)
	assert.Equal(t, cw.ID, removed.ID)
	assert.Empty(t, removed.PasswordHash)

	_, err = repo.Delete(ctx, cw.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryScopedUniqueness(t *testing.T) {
	db := setupTestDB(t)
	_, restA := seedRestaurant(t, db, "9876543210")
	_, restB := seedRestaurant(t, db, "9123456780")
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Category{Name: "pizza", RestaurantID: restA.ID}))
	require.NoError(t, repo.Create(ctx, &models.Category{Name: "pizza", RestaurantID: restB.ID}))

	err := repo.Create(ctx, &models.Category{Name: "pizza", RestaurantID: restA.ID})
	assert.ErrorIs(t, err, ErrDuplicate)

	taken, err := repo.NameTaken(ctx, restA.ID, "pizza", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	cats, err := repo.ListByRestaurant(ctx, restA.ID)
	require.NoError(t, err)
	assert.Len(t, cats, 1)
}

func TestItemScopedUniqueness(t *testing.T) {
	db := setupTestDB(t)
	_, rest := seedRestaurant(t, db, "9876543210")
	cats := NewCategoryRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()

	starters := &models.Category{Name: "starters", RestaurantID: rest.ID}
	mains := &models.Category{Name: "mains", RestaurantID: rest.ID}
	require.NoError(t, cats.Create(ctx, starters))
	require.NoError(t, cats.Create(ctx, mains))

	soup := &models.Item{Name: "soup", Price: 4, VegType: models.Veg, RestaurantID: rest.ID, CategoryID: starters.ID}
	require.NoError(t, items.Create(ctx, soup))
	require.NoError(t, items.Create(ctx, &models.Item{Name: "soup", Price: 5, VegType: models.Veg, RestaurantID: rest.ID, CategoryID: mains.ID}))

	err := items.Create(ctx, &models.Item{Name: "soup", Price: 6, VegType: models.Veg, RestaurantID: rest.ID, CategoryID: starters.ID})
	assert.ErrorIs(t, err, ErrDuplicate)

	n, err := items.CountByCategory(ctx, starters.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	removed, err := items.Delete(ctx, soup.ID)
	require.NoError(t, err)
	assert.Equal(t, "soup", removed.Name)

	list, err := items.ListByCategory(ctx, starters.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMenuLookups(t *testing.T) {
	db := setupTestDB(t)
	_, rest := seedRestaurant(t, db, "9876543210")
	restaurants := NewRestaurantRepository(db)
	cats := NewCategoryRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()

	got, err := restaurants.FindByQRCode(ctx, "QR-9876543210")
	require.NoError(t, err)
	assert.Equal(t, rest.ID, got.ID)

	_, err = restaurants.FindByQRCode(ctx, "QR-missing")
	assert.ErrorIs(t, err, ErrNotFound)

	taken, err := restaurants.QRCodeTaken(ctx, "QR-9876543210")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = restaurants.QRCodeTaken(ctx, "QR-free")
	require.NoError(t, err)
	assert.False(t, taken)

	mains := &models.Category{Name: "mains", RestaurantID: rest.ID}
	require.NoError(t, cats.Create(ctx, mains))
	require.NoError(t, items.Create(ctx, &models.Item{Name: "dal", Price: 5, VegType: models.Veg, RestaurantID: rest.ID, CategoryID: mains.ID}))
	require.NoError(t, items.Create(ctx, &models.Item{Name: "kebab", Price: 9, VegType: models.NonVeg, RestaurantID: rest.ID, CategoryID: mains.ID}))

	all, err := items.ListByRestaurant(ctx, rest.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	veg, err := items.ListByRestaurant(ctx, rest.ID, models.Veg)
	require.NoError(t, err)
	require.Len(t, veg, 1)
	assert.Equal(t, "dal", veg[0].Name)
}
