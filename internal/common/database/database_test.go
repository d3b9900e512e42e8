package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-catalog/internal/common/config"
)

// ==========================
// Postgres
// ==========================

func TestHealthCheck(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	client := NewPostgresFromDB(db)
	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`SELECT 1`).WillReturnError(fmt.Errorf("connection refused"))

	assert.NoError(t, client.HealthCheck(context.Background()))
	err = client.HealthCheck(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec(`DELETE FROM cities`).WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		err = NewPostgresFromDB(db).WithTx(context.Background(), func(tx *sql.Tx) error {
			_, err := tx.Exec("DELETE FROM cities")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		boom := fmt.Errorf("boom")
		err = NewPostgresFromDB(db).WithTx(context.Background(), func(tx *sql.Tx) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNewPostgres_DoesNotConnect(t *testing.T) {
	client, err := NewPostgres(config.PostgresConfig{Host: "127.0.0.1", Port: 1, Database: "x", User: "x", SSLMode: "disable"})
	require.NoError(t, err)
	assert.NotNil(t, client.GetDB())
	assert.NoError(t, client.Close())
}

// ==========================
// Redis
// ==========================

func TestIncrWindow_Miniredis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		count, err := client.IncrWindow(ctx, "rl:1.2.3.4", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, i, count)
	}
	assert.Equal(t, time.Minute, mr.TTL("rl:1.2.3.4"))

	mr.FastForward(time.Minute + time.Second)
	count, err := client.IncrWindow(ctx, "rl:1.2.3.4", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIncrWindow_ExpiresOnlyOnFirstHit(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	client := NewRedisFromClient(rdb)
	ctx := context.Background()

	mock.ExpectIncr("rl:ip").SetVal(1)
	mock.ExpectExpire("rl:ip", time.Minute).SetVal(true)
	mock.ExpectIncr("rl:ip").SetVal(2)

	_, err := client.IncrWindow(ctx, "rl:ip", time.Minute)
	require.NoError(t, err)
	count, err := client.IncrWindow(ctx, "rl:ip", time.Minute)
	require.NoError(t, err)

	assert.Equal(t, int64(2), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisGetSet(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisFromClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	_, err := client.Get(ctx, "offer:url:missing")
	assert.True(t, IsNil(err))

	require.NoError(t, client.Set(ctx, "offer:url:a", "https://partner.example", time.Minute))
	val, err := client.Get(ctx, "offer:url:a")
	require.NoError(t, err)
	assert.Equal(t, "https://partner.example", val)

	require.NoError(t, client.Del(ctx, "offer:url:a"))
	assert.False(t, mr.Exists("offer:url:a"))
	assert.NoError(t, client.Ping(ctx))
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{})
	assert.Error(t, err)
}
