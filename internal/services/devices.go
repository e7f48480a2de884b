package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	repository "github.com/aaravmahajanofficial/plantshop/internal/repositories"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	defaultMaxDevices    = 10000
	defaultDeviceIdleTTL = 30 * time.Minute
)

// Device is the state one app installation owns.
type Device struct {
	ID      string
	Storage repository.DeviceStorage
	Session *Session
	Cart    *Cart
}

type deviceEntry struct {
	once   sync.Once
	device *Device
	err    error
}

// Devices constructs each device's session and cart on first use and hands
// out the same pair afterwards. At most MaxDevices are kept, and a device
// idle for IdleTTL is dropped. A dropped device is rebuilt from storage on
// its next request.
type Devices struct {
	mu      sync.Mutex
	entries *expirable.LRU[string, *deviceEntry]

	storage  repository.StorageFactory
	users    UserAPI
	carts    CartAPI
	products ProductAPI
	limiter  repository.RateLimitRepository
	tokens   *TokenIssuer
	workers  int
}

type DevicesConfig struct {
	Storage     repository.StorageFactory
	Users       UserAPI
	Carts       CartAPI
	Products    ProductAPI
	Limiter     repository.RateLimitRepository
	Tokens      *TokenIssuer
	JoinWorkers int
	MaxDevices  int
	IdleTTL     time.Duration
}

func NewDevices(cfg DevicesConfig) *Devices {
	if cfg.MaxDevices <= 0 {
		cfg.MaxDevices = defaultMaxDevices
	}

	if cfg.IdleTTL <= 0 {
		cfg.IdleTTL = defaultDeviceIdleTTL
	}

	return &Devices{
		entries:  expirable.NewLRU[string, *deviceEntry](cfg.MaxDevices, nil, cfg.IdleTTL),
		storage:  cfg.Storage,
		users:    cfg.Users,
		carts:    cfg.Carts,
		products: cfg.Products,
		limiter:  cfg.Limiter,
		tokens:   cfg.Tokens,
		workers:  cfg.JoinWorkers,
	}
}

// Get returns the device, restoring its session from storage the first time
// it is seen. A failed restore is retried on the next call.
func (d *Devices) Get(ctx context.Context, deviceID string) (*Device, error) {

	if deviceID == "" {
		return nil, errors.BadRequestError("Device id is required")
	}

	d.mu.Lock()
	entry, ok := d.entries.Get(deviceID)
	if !ok {
		entry = &deviceEntry{}
	}
	// Re-adding restarts the idle timer.
	d.entries.Add(deviceID, entry)
	d.mu.Unlock()

	entry.once.Do(func() {
		entry.device, entry.err = d.build(ctx, deviceID)
	})

	if entry.err != nil {
		d.mu.Lock()
		if current, ok := d.entries.Peek(deviceID); ok && current == entry {
			d.entries.Remove(deviceID)
		}
		d.mu.Unlock()

		return nil, entry.err
	}

	return entry.device, nil
}

// Len reports how many devices are held in memory.
func (d *Devices) Len() int {
	return d.entries.Len()
}

func (d *Devices) build(ctx context.Context, deviceID string) (*Device, error) {

	storage := d.storage.ForDevice(deviceID)
	session := NewSession(deviceID, storage, d.users, d.limiter, d.tokens)
	cart := NewCart(d.carts, d.products, d.workers)

	session.OnUserChange(func(ctx context.Context, user *models.User) {
		if err := cart.SetUser(ctx, user); err != nil {
			middleware.LoggerFromContext(ctx).Warn("Failed to load cart", slog.String("device_id", deviceID), slog.String("error", err.Error()))
		}
	})

	if _, err := session.CheckAuth(ctx); err != nil {
		return nil, err
	}

	return &Device{ID: deviceID, Storage: storage, Session: session, Cart: cart}, nil
}

// ValidateToken accepts a userToken only while it is the one stored for the
// device it was issued to.
func (d *Devices) ValidateToken(ctx context.Context, token string) (*models.Claims, error) {

	claims, err := d.tokens.Parse(token)
	if err != nil {
		return nil, errors.UnauthorizedError("Invalid token").WithError(err)
	}

	device, err := d.Get(ctx, claims.DeviceID)
	if err != nil {
		return nil, err
	}

	if err := device.Session.VerifyToken(ctx, token); err != nil {
		return nil, err
	}

	// The token may have been issued by another instance since this one
	// last read the device's storage.
	if user, ok := device.Session.User(); !ok || user.ID != claims.UserID {
		resp, err := device.Session.CheckAuth(ctx)
		if err != nil {
			return nil, err
		}

		if !resp.Authenticated || resp.User.ID != claims.UserID {
			return nil, errors.UnauthorizedError("Session is not signed in")
		}
	}

	return claims, nil
}
