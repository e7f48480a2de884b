package models

// CartItem is a cart line as the backend stores it.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// Cart is the backend's /carts resource. One cart per user.
type Cart struct {
	ID     string     `json:"id,omitempty"`
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
	Total  string     `json:"total"`
}

// CartLine is a cart item joined against the product catalog for display.
type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Category  string `json:"category,omitempty"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartSnapshot is the cart store's current state.
type CartSnapshot struct {
	CartID         string     `json:"cartId,omitempty"`
	Items          []CartLine `json:"items"`
	Total          int64      `json:"total"`
	FormattedTotal string     `json:"formattedTotal"`
	Error          string     `json:"error,omitempty"`
}

// MaxLineQuantity bounds the quantity of a single cart line.
const MaxLineQuantity = 999

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0,lte=999"`
}

type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required,gte=0,lte=999"`
}
