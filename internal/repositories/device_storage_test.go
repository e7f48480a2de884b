package repository_test

import (
	"errors"
	"testing"

	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storedUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func setupRedisStorage(t *testing.T, deviceID string) (repository.DeviceStorage, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	factory := repository.NewRedisStorageFactory(client)

	return factory.ForDevice(deviceID), mock
}

func TestRedisStorageGet(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		storage, mock := setupRedisStorage(t, "dev-1")
		mock.ExpectGet("device:dev-1:user").SetVal(`{"id":"1"}`)

		// Act
		value, found, err := storage.Get(ctx, repository.KeyUser)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, `{"id":"1"}`, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Missing", func(t *testing.T) {
		// Arrange
		storage, mock := setupRedisStorage(t, "dev-1")
		mock.ExpectGet("device:dev-1:user").SetErr(redis.Nil)

		// Act
		value, found, err := storage.Get(ctx, repository.KeyUser)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		storage, mock := setupRedisStorage(t, "dev-1")
		redisErr := errors.New("connection refused")
		mock.ExpectGet("device:dev-1:user").SetErr(redisErr)

		// Act
		_, found, err := storage.Get(ctx, repository.KeyUser)

		// Assert
		assert.ErrorIs(t, err, redisErr)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStorageSetAndDelete(t *testing.T) {
	ctx := t.Context()

	t.Run("Set without expiry", func(t *testing.T) {
		// Arrange
		storage, mock := setupRedisStorage(t, "dev-2")
		mock.ExpectSet("device:dev-2:userToken", "tok", 0).SetVal("OK")

		// Act
		err := storage.Set(ctx, repository.KeyUserToken, "tok")

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete several keys", func(t *testing.T) {
		// Arrange
		storage, mock := setupRedisStorage(t, "dev-2")
		mock.ExpectDel("device:dev-2:user", "device:dev-2:userToken").SetVal(2)

		// Act
		err := storage.Delete(ctx, repository.KeyUser, repository.KeyUserToken)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Delete nothing", func(t *testing.T) {
		// Arrange
		storage, mock := setupRedisStorage(t, "dev-2")

		// Act
		err := storage.Delete(ctx)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestJSONHelpers(t *testing.T) {
	ctx := t.Context()

	t.Run("Round trip through memory storage", func(t *testing.T) {
		// Arrange
		storage := repository.NewMemoryStorage()
		in := storedUser{ID: "1", Name: "Tri"}

		// Act
		require.NoError(t, repository.SetJSON(ctx, storage, repository.KeyUser, in))
		var out storedUser
		found, err := repository.GetJSON(ctx, storage, repository.KeyUser, &out)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, in, out)
	})

	t.Run("Corrupt value", func(t *testing.T) {
		// Arrange
		storage := repository.NewMemoryStorage()
		require.NoError(t, storage.Set(ctx, repository.KeyUser, "{not json"))

		// Act
		var out storedUser
		found, err := repository.GetJSON(ctx, storage, repository.KeyUser, &out)

		// Assert
		assert.Error(t, err)
		assert.False(t, found)
	})

	t.Run("Missing value", func(t *testing.T) {
		// Arrange
		storage := repository.NewMemoryStorage()

		// Act
		var out storedUser
		found, err := repository.GetJSON(ctx, storage, repository.KeyUser, &out)

		// Assert
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestMemoryStorageFactoryIsolatesDevices(t *testing.T) {
	ctx := t.Context()
	factory := repository.NewMemoryStorageFactory()

	require.NoError(t, factory.ForDevice("a").Set(ctx, repository.KeyUser, "alice"))

	_, found, err := factory.ForDevice("b").Get(ctx, repository.KeyUser)
	require.NoError(t, err)
	assert.False(t, found)

	value, found, err := factory.ForDevice("a").Get(ctx, repository.KeyUser)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", value)
}

func TestAvatarKey(t *testing.T) {
	assert.Equal(t, "user_avatar_42", repository.AvatarKey("42"))
}
