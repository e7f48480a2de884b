package health

import (
	"context"
	"fmt"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/config"
	"github.com/hellofresh/health-go/v5"
	healthRabbit "github.com/hellofresh/health-go/v5/checks/rabbitmq"
	healthRedis "github.com/hellofresh/health-go/v5/checks/redis"
)

// Pinger is satisfied by the backend REST client.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Endpoints struct {
	Backend Pinger
}

func NewHealthHandler(cfg *config.Config, endpoints *Endpoints) (*health.Health, error) {

	checks := []health.Config{
		{
			Name:      "redis",
			Timeout:   2 * time.Second,
			SkipOnErr: false,
			Check: healthRedis.New(
				healthRedis.Config{
					DSN: cfg.RedisConnect.GetDSN(),
				},
			),
		},
		{
			Name:      "backend",
			Timeout:   5 * time.Second,
			SkipOnErr: false,
			Check: func(ctx context.Context) error {
				if endpoints == nil || endpoints.Backend == nil {
					return fmt.Errorf("backend client is not initialized")
				}

				if err := endpoints.Backend.Ping(ctx); err != nil {
					return fmt.Errorf("failed to reach backend: %w", err)
				}

				return nil
			},
		},
	}

	// Order events are best effort, so a broker outage only degrades health.
	if cfg.RabbitMQ.URL != "" {
		checks = append(checks, health.Config{
			Name:      "rabbitmq",
			Timeout:   3 * time.Second,
			SkipOnErr: true,
			Check: healthRabbit.New(healthRabbit.Config{
				DSN: cfg.RabbitMQ.URL,
			}),
		})
	}

	h, err := health.New(
		health.WithComponent(health.Component{

			Name:    "plantshop",
			Version: "1.0.0",
		}),
		health.WithSystemInfo(),
		health.WithChecks(checks...),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create health instance: %w", err)
	}

	return h, nil
}
