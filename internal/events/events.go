package events

import "time"

const OrderPlacedEventType = "OrderPlaced"

type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderPlaced is published once per stored transaction.
type OrderPlaced struct {
	EventType      string      `json:"eventType"`
	TransactionID  string      `json:"transactionId"`
	UserID         string      `json:"userId"`
	Items          []OrderLine `json:"items"`
	TotalAmount    int64       `json:"totalAmount"`
	DeliveryMethod string      `json:"deliveryMethod"`
	PaymentMethod  string      `json:"paymentMethod"`
	Timestamp      time.Time   `json:"timestamp"`
}
