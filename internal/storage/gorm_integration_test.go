//go:build integration

package storage

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "room_booking_test"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	require.NoError(t, err)

	db.Exec("DROP TABLE IF EXISTS kv_records")
	t.Cleanup(func() { db.Exec("DROP TABLE IF EXISTS kv_records") })
	return db
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestGormStore_RoundTrip(t *testing.T) {
	s, err := NewGormStore(openTestDB(t))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.Get(ctx, KeyBookings)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, KeyBookings, []byte(`[]`)))
	got, err := s.Get(ctx, KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Upsert path: same key, new value.
	require.NoError(t, s.Set(ctx, KeyBookings, []byte(`[{"id":"b1"}]`)))
	got, err = s.Get(ctx, KeyBookings)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"b1"}]`), got)
}
