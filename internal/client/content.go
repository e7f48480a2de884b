package client

import (
	"context"
	"net/http"
	"strconv"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	var notifications []models.Notification
	if err := c.do(ctx, http.MethodGet, "/notifications", nil, nil, &notifications); err != nil {
		return nil, err
	}

	return notifications, nil
}

func (c *Client) GetPlantCareGuide(ctx context.Context, id int) (*models.PlantCareGuide, error) {
	var guide models.PlantCareGuide
	if err := c.do(ctx, http.MethodGet, pathf("/plant_care_guides/%s", strconv.Itoa(id)), nil, nil, &guide); err != nil {
		return nil, err
	}

	return &guide, nil
}

func (c *Client) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	var faqs []models.FAQ
	if err := c.do(ctx, http.MethodGet, "/faqs", nil, nil, &faqs); err != nil {
		return nil, err
	}

	return faqs, nil
}
