package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Keys the app keeps in device-local storage.
const (
	KeyUser          = "user"
	KeyUserToken     = "userToken"
	KeySearchHistory = "searchHistory"
	avatarKeyPrefix  = "user_avatar_"
)

func AvatarKey(userID string) string {
	return avatarKeyPrefix + userID
}

// DeviceStorage is the string key/value store of a single device.
type DeviceStorage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, keys ...string) error
}

// StorageFactory hands out the storage of a given device.
type StorageFactory interface {
	ForDevice(deviceID string) DeviceStorage
}

type redisStorageFactory struct {
	client *redis.Client
}

func NewRedisStorageFactory(client *redis.Client) StorageFactory {
	return &redisStorageFactory{client: client}
}

func (f *redisStorageFactory) ForDevice(deviceID string) DeviceStorage {
	return &redisStorage{client: f.client, deviceID: deviceID}
}

type redisStorage struct {
	client   *redis.Client
	deviceID string
}

// DeviceKey is the Redis key holding key for deviceID.
func DeviceKey(deviceID, key string) string {
	return "device:" + deviceID + ":" + key
}

func (s *redisStorage) Get(ctx context.Context, key string) (string, bool, error) {

	value, err := s.client.Get(ctx, DeviceKey(s.deviceID, key)).Result()
	if err != nil {

		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, fmt.Errorf("failed to get key %s from redis: %w", key, err)
	}

	return value, true, nil
}

// Set stores value without expiry; device storage lives until removed.
func (s *redisStorage) Set(ctx context.Context, key, value string) error {

	if err := s.client.Set(ctx, DeviceKey(s.deviceID, key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set key %s in redis: %w", key, err)
	}

	return nil
}

func (s *redisStorage) Delete(ctx context.Context, keys ...string) error {

	if len(keys) == 0 {
		return nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = DeviceKey(s.deviceID, k)
	}

	if err := s.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("failed to delete keys %v from redis: %w", keys, err)
	}

	return nil
}

// GetJSON decodes the JSON stored under key into dest.
func GetJSON(ctx context.Context, s DeviceStorage, key string, dest any) (bool, error) {

	raw, found, err := s.Get(ctx, key)
	if err != nil || !found {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal stored data for key %s: %w", key, err)
	}

	return true, nil
}

func SetJSON(ctx context.Context, s DeviceStorage, key string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	return s.Set(ctx, key, string(data))
}
