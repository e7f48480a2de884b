package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
)

const MaxSearchHistory = 5

// SearchService searches the catalog and keeps a device's recent queries.
type SearchService struct {
	catalog *CatalogService
	now     func() time.Time
}

func NewSearchService(catalog *CatalogService) *SearchService {
	return &SearchService{catalog: catalog, now: time.Now}
}

func (s *SearchService) Search(ctx context.Context, q string) ([]models.Product, error) {
	return s.catalog.Search(ctx, q)
}

// History returns the device's recent searches, newest first.
func (s *SearchService) History(ctx context.Context, storage repository.DeviceStorage) ([]models.SearchEntry, error) {

	history := []models.SearchEntry{}
	if _, err := repository.GetJSON(ctx, storage, repository.KeySearchHistory, &history); err != nil {
		return nil, errors.StorageError("Failed to read search history").WithError(err)
	}

	return history, nil
}

// SaveQuery puts query at the front of the history, dropping an older entry
// with the same name and keeping at most MaxSearchHistory entries.
func (s *SearchService) SaveQuery(ctx context.Context, storage repository.DeviceStorage, query string) ([]models.SearchEntry, error) {

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.ValidationError("Search query is required")
	}

	history, err := s.History(ctx, storage)
	if err != nil {
		return nil, err
	}

	now := s.now().UnixMilli()
	updated := []models.SearchEntry{{ID: strconv.FormatInt(now, 10), Name: query, Timestamp: now}}

	for _, entry := range history {
		if entry.Name == query {
			continue
		}
		updated = append(updated, entry)
	}

	if len(updated) > MaxSearchHistory {
		updated = updated[:MaxSearchHistory]
	}

	if err := repository.SetJSON(ctx, storage, repository.KeySearchHistory, updated); err != nil {
		return nil, errors.StorageError("Failed to save search history").WithError(err)
	}

	return updated, nil
}

func (s *SearchService) RemoveQuery(ctx context.Context, storage repository.DeviceStorage, name string) ([]models.SearchEntry, error) {

	history, err := s.History(ctx, storage)
	if err != nil {
		return nil, err
	}

	updated := make([]models.SearchEntry, 0, len(history))
	for _, entry := range history {
		if entry.Name != name {
			updated = append(updated, entry)
		}
	}

	if err := repository.SetJSON(ctx, storage, repository.KeySearchHistory, updated); err != nil {
		return nil, errors.StorageError("Failed to save search history").WithError(err)
	}

	return updated, nil
}
