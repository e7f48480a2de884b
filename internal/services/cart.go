package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/aaravmahajanofficial/plantshop/internal/api/middleware"
	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
	"golang.org/x/sync/errgroup"
)

const defaultJoinWorkers = 4

// Cart is the cart store of one device. It holds the signed-in user's lines
// joined against the catalog and keeps them in step with the backend's
// /carts resource. Mutations are serialized.
type Cart struct {
	mu sync.Mutex

	carts    CartAPI
	products ProductAPI
	workers  int

	userID  string
	cartID  string
	lines   []models.CartLine
	loadErr error
}

func NewCart(carts CartAPI, products ProductAPI, workers int) *Cart {
	if workers <= 0 {
		workers = defaultJoinWorkers
	}

	return &Cart{carts: carts, products: products, workers: workers}
}

// SetUser switches the store to user and loads that user's cart. A nil user
// empties the store.
func (c *Cart) SetUser(ctx context.Context, user *models.User) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cartID = ""
	c.lines = nil
	c.loadErr = nil

	if user == nil {
		c.userID = ""
		return nil
	}

	c.userID = user.ID

	return c.refreshLocked(ctx)
}

// Refresh reloads the cart from the backend.
func (c *Cart) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireUser(); err != nil {
		return err
	}

	return c.refreshLocked(ctx)
}

// AddToCart adds quantity units of product, merging into an existing line.
// A quantity below 1 adds a single unit. A line never grows past
// models.MaxLineQuantity.
func (c *Cart) AddToCart(ctx context.Context, product *models.Product, quantity int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireUser(); err != nil {
		return err
	}

	if product == nil || product.ID == "" {
		return errors.ValidationError("Product is required")
	}

	if quantity <= 0 {
		quantity = 1
	}

	if quantity > models.MaxLineQuantity {
		return errQuantityLimit()
	}

	cart, err := c.fetchLocked(ctx)
	if err != nil {
		return err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == product.ID {
			if cart.Items[i].Quantity > models.MaxLineQuantity-quantity {
				return errQuantityLimit()
			}
			cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}

	if !merged {
		cart.Items = append(cart.Items, models.CartItem{
			ProductID: product.ID,
			Quantity:  quantity,
			Price:     product.Price,
		})
	}

	return c.saveLocked(ctx, cart)
}

// AddItem looks productID up in the catalog and adds it.
func (c *Cart) AddItem(ctx context.Context, productID string, quantity int) error {

	product, err := c.products.GetProduct(ctx, productID)
	if err != nil {
		return err
	}

	return c.AddToCart(ctx, product, quantity)
}

// UpdateQuantity sets the quantity of a line. Zero removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) error {

	if quantity < 0 {
		return errors.ValidationError("Quantity must not be negative")
	}

	if quantity > models.MaxLineQuantity {
		return errQuantityLimit()
	}

	if quantity == 0 {
		return c.RemoveFromCart(ctx, productID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireUser(); err != nil {
		return err
	}

	cart, err := c.fetchLocked(ctx)
	if err != nil {
		return err
	}

	found := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity = quantity
			found = true
			break
		}
	}

	if !found {
		return errors.NotFoundError("Item not found in the cart")
	}

	return c.saveLocked(ctx, cart)
}

func (c *Cart) RemoveFromCart(ctx context.Context, productID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireUser(); err != nil {
		return err
	}

	cart, err := c.fetchLocked(ctx)
	if err != nil {
		return err
	}

	items := cart.Items[:0]
	removed := false
	for _, item := range cart.Items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		items = append(items, item)
	}

	if !removed {
		return errors.NotFoundError("Item not found in the cart")
	}

	cart.Items = items

	return c.saveLocked(ctx, cart)
}

// ClearCart deletes the user's cart resource. The next read creates a new,
// empty one.
func (c *Cart) ClearCart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.requireUser(); err != nil {
		return err
	}

	carts, err := c.carts.FindCartsByUser(ctx, c.userID)
	if err != nil {
		return err
	}

	for _, cart := range carts {
		if err := c.carts.DeleteCart(ctx, cart.ID); err != nil && !errors.IsNotFound(err) {
			return err
		}
	}

	c.cartID = ""
	c.lines = nil
	c.loadErr = nil

	return nil
}

// Total sums price times quantity over the lines in memory.
func (c *Cart) Total() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return linesTotal(c.lines)
}

// Lines returns a copy of the current lines.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]models.CartLine(nil), c.lines...)
}

func (c *Cart) Snapshot() *models.CartSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := linesTotal(c.lines)
	snapshot := &models.CartSnapshot{
		CartID:         c.cartID,
		Items:          append([]models.CartLine{}, c.lines...),
		Total:          total,
		FormattedTotal: utils.FormatVND(total),
	}

	if c.loadErr != nil {
		snapshot.Error = c.loadErr.Error()
	}

	return snapshot
}

func (c *Cart) requireUser() error {
	if c.userID == "" {
		return errors.UnauthorizedError("User not authenticated")
	}

	return nil
}

// fetchLocked reads the user's cart, creating it when the user has none.
func (c *Cart) fetchLocked(ctx context.Context) (*models.Cart, error) {

	carts, err := c.carts.FindCartsByUser(ctx, c.userID)
	if err != nil {
		return nil, err
	}

	if len(carts) > 0 {
		cart := carts[0]
		return &cart, nil
	}

	return c.carts.CreateCart(ctx, &models.Cart{
		UserID: c.userID,
		Items:  []models.CartItem{},
		Total:  utils.FormatVND(0),
	})
}

// saveLocked persists cart with a recomputed total and rebuilds local state
// from what the backend returned.
func (c *Cart) saveLocked(ctx context.Context, cart *models.Cart) error {

	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}

	total, err := itemsTotal(cart.Items)
	if err != nil {
		return err
	}

	cart.Total = utils.FormatVND(total)

	saved, err := c.carts.UpdateCart(ctx, cart)
	if err != nil {
		return err
	}

	c.load(ctx, saved)

	return nil
}

func (c *Cart) refreshLocked(ctx context.Context) error {

	cart, err := c.fetchLocked(ctx)
	if err != nil {
		c.cartID = ""
		c.lines = nil
		c.loadErr = err
		return err
	}

	c.load(ctx, cart)

	return nil
}

// load joins every cart item against the catalog. Items whose product can
// not be fetched are dropped.
func (c *Cart) load(ctx context.Context, cart *models.Cart) {

	logger := middleware.LoggerFromContext(ctx)

	joined := make([]*models.CartLine, len(cart.Items))

	var g errgroup.Group
	g.SetLimit(c.workers)

	for i, item := range cart.Items {
		if item.Quantity <= 0 {
			continue
		}

		g.Go(func() error {
			product, err := c.products.GetProduct(ctx, item.ProductID)
			if err != nil {
				logger.Warn("Dropping cart line", slog.String("productId", item.ProductID), slog.String("error", err.Error()))
				return nil
			}

			price := item.Price
			if price == "" {
				price = product.Price
			}

			joined[i] = &models.CartLine{
				ProductID: item.ProductID,
				Name:      product.Name,
				Image:     product.Image,
				Category:  product.CategoryName,
				Price:     price,
				Quantity:  item.Quantity,
			}
			return nil
		})
	}

	_ = g.Wait()

	lines := make([]models.CartLine, 0, len(joined))
	for _, line := range joined {
		if line != nil {
			lines = append(lines, *line)
		}
	}

	c.cartID = cart.ID
	c.lines = lines
	c.loadErr = nil
}

func errQuantityLimit() *errors.AppError {
	return errors.ValidationError(fmt.Sprintf("Quantity can not exceed %d per item", models.MaxLineQuantity))
}

// linesTotal sums price × quantity over lines, saturating at math.MaxInt64.
func linesTotal(lines []models.CartLine) int64 {
	total, ok := checkedLinesTotal(lines)
	if !ok {
		return math.MaxInt64
	}

	return total
}

func checkedLinesTotal(lines []models.CartLine) (int64, bool) {
	var total int64
	for _, line := range lines {
		amount, ok := utils.LineAmount(utils.ParsePrice(line.Price), int64(line.Quantity))
		if !ok {
			return 0, false
		}

		if total, ok = utils.AddAmounts(total, amount); !ok {
			return 0, false
		}
	}

	return total, true
}

func itemsTotal(items []models.CartItem) (int64, error) {
	var total int64
	for _, item := range items {
		amount, ok := utils.LineAmount(utils.ParsePrice(item.Price), int64(item.Quantity))
		if ok {
			total, ok = utils.AddAmounts(total, amount)
		}

		if !ok {
			return 0, errors.ValidationError("Cart total is too large")
		}
	}

	return total, nil
}
