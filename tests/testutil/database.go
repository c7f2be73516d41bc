package testutil

import (
	"context"
	"testing"

	"github.com/kendall-kelly/essay-orders-api/config"
	"github.com/kendall-kelly/essay-orders-api/models"
	"github.com/kendall-kelly/essay-orders-api/seeders"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated and seeded in-memory sqlite database.
// The pool is pinned to one connection so every query sees the same memory database.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := config.OpenDatabase(sqlite.Open(":memory:"))
	require.NoError(t, err, "failed to open test database")
	db.Logger = logger.Default.LogMode(logger.Silent)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, models.AutoMigrate(db), "failed to migrate test database")
	require.NoError(t, seeders.SeedReferenceData(context.Background(), db, zap.NewNop()), "failed to seed test database")

	return db
}

// CreateUser inserts a user with the given role
func CreateUser(t *testing.T, db *gorm.DB, auth0ID, name, email, role string) *models.User {
	t.Helper()

	user := &models.User{Auth0ID: auth0ID, Name: name, Email: email, Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

// CreateClient inserts a user and its client profile
func CreateClient(t *testing.T, db *gorm.DB, auth0ID, name, email string) *models.Client {
	t.Helper()

	user := CreateUser(t, db, auth0ID, name, email, models.RoleClient)
	client := &models.Client{UserID: user.ID}
	require.NoError(t, db.Create(client).Error)
	client.User = *user
	return client
}

// CreateWriter inserts a user and its writer profile
func CreateWriter(t *testing.T, db *gorm.DB, auth0ID, name, email string) *models.Writer {
	t.Helper()

	user := CreateUser(t, db, auth0ID, name, email, models.RoleWriter)
	writer := &models.Writer{UserID: user.ID}
	require.NoError(t, db.Create(writer).Error)
	writer.User = *user
	return writer
}

// RefID returns the id of the seeded reference row of T whose column matches value
func RefID[T any](t *testing.T, db *gorm.DB, column string, value interface{}) uint {
	t.Helper()

	var id uint
	var model T
	err := db.Model(&model).Where(column+" = ?", value).Limit(1).Pluck("id", &id).Error
	require.NoError(t, err)
	require.NotZero(t, id, "no %T with %s = %v", model, column, value)
	return id
}

// FirstID returns the smallest id in the reference table of T
func FirstID[T any](t *testing.T, db *gorm.DB) uint {
	t.Helper()

	var id uint
	var model T
	require.NoError(t, db.Model(&model).Order("id").Limit(1).Pluck("id", &id).Error)
	require.NotZero(t, id, "no %T rows seeded", model)
	return id
}
