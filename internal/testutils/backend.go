package testutils

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/aaravmahajanofficial/plantshop/internal/errors"
	"github.com/aaravmahajanofficial/plantshop/internal/models"
)

// Backend is an in-memory stand-in for the REST backend. It satisfies every
// API interface the services depend on.
type Backend struct {
	mu sync.Mutex

	products      map[string]models.Product
	users         []models.User
	carts         map[string]models.Cart
	transactions  map[string]models.Transaction
	notifications []models.Notification
	guides        map[int]models.PlantCareGuide
	faqs          []models.FAQ
	nextID        int

	// Err, when set, fails every call.
	Err error
	// ProductErrs fails GetProduct for the given ids.
	ProductErrs map[string]error

	calls map[string]int
}

func NewBackend() *Backend {
	return &Backend{
		products:     make(map[string]models.Product),
		carts:        make(map[string]models.Cart),
		transactions: make(map[string]models.Transaction),
		guides:       make(map[int]models.PlantCareGuide),
		ProductErrs:  make(map[string]error),
		calls:        make(map[string]int),
	}
}

func (b *Backend) enter(name string) error {
	b.calls[name]++
	return b.Err
}

func (b *Backend) SetErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.Err = err
}

func (b *Backend) FailProduct(id string, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.ProductErrs[id] = err
}

// Calls returns how many times method was invoked.
func (b *Backend) Calls(method string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.calls[method]
}

func (b *Backend) AddProduct(p models.Product) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.products[p.ID] = models.NormalizeProduct(p)
}

func (b *Backend) AddUser(u models.User) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.users = append(b.users, u)
}

func (b *Backend) AddCart(c models.Cart) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.carts[c.ID] = c
}

func (b *Backend) AddGuide(g models.PlantCareGuide) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.guides[g.ID] = g
}

func (b *Backend) SetFAQs(faqs []models.FAQ) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.faqs = faqs
}

func (b *Backend) SetNotifications(n []models.Notification) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notifications = n
}

// Users returns a copy of the stored users.
func (b *Backend) Users() []models.User {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]models.User(nil), b.users...)
}

// CartsOf returns the stored carts of userID.
func (b *Backend) CartsOf(userID string) []models.Cart {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.cartsOf(userID)
}

func (b *Backend) cartsOf(userID string) []models.Cart {
	var out []models.Cart
	for _, c := range b.carts {
		if c.UserID == userID {
			c.Items = append([]models.CartItem(nil), c.Items...)
			out = append(out, c)
		}
	}

	return out
}

func (b *Backend) Transactions() []models.Transaction {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]models.Transaction, 0, len(b.transactions))
	for _, tx := range b.transactions {
		out = append(out, tx)
	}

	return out
}

func (b *Backend) newID() string {
	b.nextID++
	return strconv.Itoa(b.nextID)
}

func (b *Backend) ListProducts(_ context.Context) ([]models.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("ListProducts"); err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(b.products))
	for _, p := range b.products {
		out = append(out, p)
	}

	return out, nil
}

func (b *Backend) GetProduct(_ context.Context, id string) (*models.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("GetProduct"); err != nil {
		return nil, err
	}

	if err, ok := b.ProductErrs[id]; ok {
		return nil, err
	}

	p, ok := b.products[id]
	if !ok {
		return nil, errors.NotFoundError("Resource not found")
	}

	return &p, nil
}

func (b *Backend) ProductsByCategory(_ context.Context, category models.ProductCategory) ([]models.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("ProductsByCategory"); err != nil {
		return nil, err
	}

	var out []models.Product
	for _, p := range b.products {
		if p.Category == category {
			out = append(out, p)
		}
	}

	return out, nil
}

func (b *Backend) SearchProducts(_ context.Context, q string) ([]models.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("SearchProducts"); err != nil {
		return nil, err
	}

	var out []models.Product
	for _, p := range b.products {
		if strings.Contains(strings.ToLower(p.Name), strings.ToLower(q)) {
			out = append(out, p)
		}
	}

	return out, nil
}

func (b *Backend) CreateProduct(_ context.Context, product *models.Product) (*models.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("CreateProduct"); err != nil {
		return nil, err
	}

	p := models.NormalizeProduct(*product)
	if p.ID == "" {
		p.ID = b.newID()
	}
	b.products[p.ID] = p

	return &p, nil
}

func (b *Backend) FindUsers(_ context.Context, email, password string) ([]models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("FindUsers"); err != nil {
		return nil, err
	}

	var out []models.User
	for _, u := range b.users {
		if u.Email == email && (password == "" || u.Password == password) {
			out = append(out, u)
		}
	}

	return out, nil
}

func (b *Backend) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("CreateUser"); err != nil {
		return nil, err
	}

	u := *user
	if u.ID == "" {
		u.ID = b.newID()
	}
	b.users = append(b.users, u)

	return &u, nil
}

func (b *Backend) UpdateUser(_ context.Context, user *models.User) (*models.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("UpdateUser"); err != nil {
		return nil, err
	}

	for i := range b.users {
		if b.users[i].ID == user.ID {
			b.users[i] = *user
			u := *user
			return &u, nil
		}
	}

	return nil, errors.NotFoundError("Resource not found")
}

func (b *Backend) FindCartsByUser(_ context.Context, userID string) ([]models.Cart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("FindCartsByUser"); err != nil {
		return nil, err
	}

	return b.cartsOf(userID), nil
}

func (b *Backend) CreateCart(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("CreateCart"); err != nil {
		return nil, err
	}

	c := *cart
	c.ID = b.newID()
	c.Items = append([]models.CartItem{}, cart.Items...)
	b.carts[c.ID] = c

	return &c, nil
}

func (b *Backend) UpdateCart(_ context.Context, cart *models.Cart) (*models.Cart, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("UpdateCart"); err != nil {
		return nil, err
	}

	if _, ok := b.carts[cart.ID]; !ok {
		return nil, errors.NotFoundError("Resource not found")
	}

	c := *cart
	c.Items = append([]models.CartItem{}, cart.Items...)
	b.carts[c.ID] = c

	out := c
	out.Items = append([]models.CartItem{}, c.Items...)
	return &out, nil
}

func (b *Backend) DeleteCart(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("DeleteCart"); err != nil {
		return err
	}

	if _, ok := b.carts[id]; !ok {
		return errors.NotFoundError("Resource not found")
	}
	delete(b.carts, id)

	return nil
}

func (b *Backend) CreateTransaction(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("CreateTransaction"); err != nil {
		return nil, err
	}

	t := *tx
	b.transactions[t.ID] = t

	return &t, nil
}

func (b *Backend) ListTransactions(_ context.Context, userID string) ([]models.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("ListTransactions"); err != nil {
		return nil, err
	}

	out := []models.Transaction{}
	for _, tx := range b.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}

	return out, nil
}

func (b *Backend) GetTransaction(_ context.Context, id string) (*models.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("GetTransaction"); err != nil {
		return nil, err
	}

	tx, ok := b.transactions[id]
	if !ok {
		return nil, errors.NotFoundError("Resource not found")
	}

	return &tx, nil
}

func (b *Backend) PatchTransactionStatus(_ context.Context, id string, status models.TransactionStatus) (*models.Transaction, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("PatchTransactionStatus"); err != nil {
		return nil, err
	}

	tx, ok := b.transactions[id]
	if !ok {
		return nil, errors.NotFoundError("Resource not found")
	}

	tx.Status = status
	b.transactions[id] = tx

	return &tx, nil
}

func (b *Backend) ListNotifications(_ context.Context) ([]models.Notification, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("ListNotifications"); err != nil {
		return nil, err
	}

	return append([]models.Notification{}, b.notifications...), nil
}

func (b *Backend) GetPlantCareGuide(_ context.Context, id int) (*models.PlantCareGuide, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("GetPlantCareGuide"); err != nil {
		return nil, err
	}

	g, ok := b.guides[id]
	if !ok {
		return nil, errors.NotFoundError("Resource not found")
	}

	return &g, nil
}

func (b *Backend) ListFAQs(_ context.Context) ([]models.FAQ, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enter("ListFAQs"); err != nil {
		return nil, err
	}

	return append([]models.FAQ{}, b.faqs...), nil
}
