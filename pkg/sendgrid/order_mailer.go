package sendgrid

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/aaravmahajanofficial/plantshop/internal/models"
	"github.com/aaravmahajanofficial/plantshop/internal/utils"
)

// OrderMailer emails the customer a confirmation for each placed order.
type OrderMailer struct {
	email EmailService
}

func NewOrderMailer(email EmailService) *OrderMailer {
	return &OrderMailer{email: email}
}

func (m *OrderMailer) OrderPlaced(ctx context.Context, tx *models.Transaction) error {

	if tx.Customer.Email == "" {
		return fmt.Errorf("transaction %s has no customer email", tx.ID)
	}

	var text, rows strings.Builder

	fmt.Fprintf(&text, "Thank you for your order, %s.\n\n", tx.Customer.Name)
	for _, line := range tx.Items {
		fmt.Fprintf(&text, "%d x %s  %s\n", line.Quantity, line.Name, line.Price)
		fmt.Fprintf(&rows, "<tr><td>%d</td><td>%s</td><td>%s</td></tr>", line.Quantity, html.EscapeString(line.Name), html.EscapeString(line.Price))
	}
	fmt.Fprintf(&text, "\nDelivery: %s\nTotal: %s\nShipping to: %s\n", utils.FormatVND(tx.DeliveryFee), tx.FormattedTotal, tx.ShippingAddress)

	htmlContent := fmt.Sprintf(
		"<p>Thank you for your order, %s.</p><table>%s</table><p>Delivery: %s</p><p><strong>Total: %s</strong></p><p>Shipping to: %s</p>",
		html.EscapeString(tx.Customer.Name), rows.String(), utils.FormatVND(tx.DeliveryFee), html.EscapeString(tx.FormattedTotal), html.EscapeString(tx.ShippingAddress),
	)

	return m.email.Send(ctx, &Message{
		To:          tx.Customer.Email,
		ToName:      tx.Customer.Name,
		Subject:     fmt.Sprintf("Order %s confirmed", tx.ID),
		Content:     text.String(),
		HTMLContent: htmlContent,
	})
}
