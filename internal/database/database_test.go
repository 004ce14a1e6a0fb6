package database_test

import (
	"fmt"
	"testing"

	"dashboard/internal/config"
	"dashboard/internal/database"
	"dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func openMemory(t *testing.T) *gorm.DB {
	t.Helper()
	cfg := config.Config{
		DBDriver:    "sqlite",
		DatabaseDSN: fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}
	db, err := database.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(config.Config{DBDriver: "oracle"}, zap.NewNop())
	assert.Error(t, err)
}

func TestSeed_IsRepeatable(t *testing.T) {
	db := openMemory(t)

	require.NoError(t, database.Seed(db, zap.NewNop()))
	require.NoError(t, database.Seed(db, zap.NewNop()))

	var countries int64
	require.NoError(t, db.Model(&models.Country{}).Count(&countries).Error)
	assert.EqualValues(t, 10, countries)

	var settings []models.PaymentSettings
	require.NoError(t, db.Find(&settings).Error)
	assert.Len(t, settings, len(models.Projects))
	for _, s := range settings {
		assert.Equal(t, models.DefaultPaymentMethod, s.PaymentMethod)
	}
}

func TestSeed_ActiveCountriesHaveContiguousOrder(t *testing.T) {
	db := openMemory(t)
	require.NoError(t, database.Seed(db, zap.NewNop()))

	var active []models.Country
	require.NoError(t, db.Where("is_active = ?", true).Order("sort_order").Find(&active).Error)
	for i, c := range active {
		require.NotNil(t, c.SortOrder, c.Code)
		assert.Equal(t, i, *c.SortOrder)
	}

	var unordered int64
	require.NoError(t, db.Model(&models.Country{}).Where("is_active = ? AND sort_order IS NOT NULL", false).Count(&unordered).Error)
	assert.Zero(t, unordered)
}
