package models

import "time"

type TransactionStatus string

type DeliveryMethod string

type PaymentMethod string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusSuccess   TransactionStatus = "success"
	TransactionStatusCancelled TransactionStatus = "cancelled"

	DeliveryFast DeliveryMethod = "fast"
	DeliveryCOD  DeliveryMethod = "cod"

	PaymentVisa PaymentMethod = "visa"
	PaymentATM  PaymentMethod = "atm"
)

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Transaction is an immutable snapshot of a placed order. Only Status is ever
// patched afterwards.
type Transaction struct {
	ID              string            `json:"id"`
	UserID          string            `json:"userId"`
	Items           []CartLine        `json:"items"`
	Subtotal        int64             `json:"subtotal"`
	DeliveryFee     int64             `json:"deliveryFee"`
	TotalAmount     int64             `json:"totalAmount"`
	FormattedTotal  string            `json:"formattedTotal"`
	Customer        Customer          `json:"customer"`
	ShippingAddress string            `json:"shippingAddress"`
	DeliveryMethod  DeliveryMethod    `json:"deliveryMethod"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	Status          TransactionStatus `json:"status"`
	Date            time.Time         `json:"date"`
}

// CheckoutRequest is the checkout form. Fields are only checked for presence.
type CheckoutRequest struct {
	Name           string         `json:"name" validate:"required"`
	Email          string         `json:"email" validate:"required"`
	Address        string         `json:"address" validate:"required"`
	Phone          string         `json:"phone" validate:"required"`
	DeliveryMethod DeliveryMethod `json:"deliveryMethod" validate:"omitempty,oneof=fast cod"`
	PaymentMethod  PaymentMethod  `json:"paymentMethod" validate:"omitempty,oneof=visa atm"`
}

type QuoteRequest struct {
	DeliveryMethod DeliveryMethod `json:"deliveryMethod" validate:"omitempty,oneof=fast cod"`
}

// Quote is the checkout price breakdown. Formatted fields are for display only.
type Quote struct {
	Subtotal             int64          `json:"subtotal"`
	DeliveryMethod       DeliveryMethod `json:"deliveryMethod"`
	DeliveryFee          int64          `json:"deliveryFee"`
	Total                int64          `json:"total"`
	FormattedSubtotal    string         `json:"formattedSubtotal"`
	FormattedDeliveryFee string         `json:"formattedDeliveryFee"`
	FormattedTotal       string         `json:"formattedTotal"`
}

type UpdateTransactionStatusRequest struct {
	Status TransactionStatus `json:"status" validate:"required,oneof=pending success cancelled"`
}
