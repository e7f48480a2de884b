package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
)

// AvatarStore keeps a user's avatar URI in the storage of the device that
// picked it. Read and delete failures are logged and swallowed.
type AvatarStore struct {
	storage repository.StorageFactory
}

func NewAvatarStore(storage repository.StorageFactory) *AvatarStore {
	return &AvatarStore{storage: storage}
}

func (a *AvatarStore) SaveAvatar(ctx context.Context, deviceID, userID, uri string) error {

	uri = strings.TrimSpace(uri)
	if uri == "" {
		return errors.ValidationError("Avatar uri is required")
	}

	if err := a.storage.ForDevice(deviceID).Set(ctx, repository.AvatarKey(userID), uri); err != nil {
		return errors.StorageError("Failed to save avatar").WithError(err)
	}

	return nil
}

func (a *AvatarStore) GetAvatar(ctx context.Context, deviceID, userID string) string {

	uri, _, err := a.storage.ForDevice(deviceID).Get(ctx, repository.AvatarKey(userID))
	if err != nil {
		middleware.LoggerFromContext(ctx).Error("Error getting avatar", slog.String("error", err.Error()))
		return ""
	}

	return uri
}

func (a *AvatarStore) RemoveAvatar(ctx context.Context, deviceID, userID string) {

	if err := a.storage.ForDevice(deviceID).Delete(ctx, repository.AvatarKey(userID)); err != nil {
		middleware.LoggerFromContext(ctx).Error("Error removing avatar", slog.String("error", err.Error()))
	}
}
