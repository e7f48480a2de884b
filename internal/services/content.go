package service

import (
	"context"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

type ContentService struct {
	content ContentAPI
}

func NewContentService(content ContentAPI) *ContentService {
	return &ContentService{content: content}
}

func (s *ContentService) Notifications(ctx context.Context) ([]models.Notification, error) {
	return s.content.ListNotifications(ctx)
}

func (s *ContentService) PlantCareGuide(ctx context.Context, id int) (*models.PlantCareGuide, error) {
	return s.content.GetPlantCareGuide(ctx, id)
}

func (s *ContentService) FAQs(ctx context.Context) ([]models.FAQ, error) {
	return s.content.ListFAQs(ctx)
}
