// Package whatsapp renders order summaries into WhatsApp messages and
// wa.me deep links. There is no API call here: opening the link is a
// user action in the WhatsApp application.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"framecraft-backend/internal/orders"
	"framecraft-backend/internal/pricing"
)

const countryCode = "233"

type OrderSummary struct {
	OrderID       string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	FrameName     string
	FrameSize     string
	TotalPrice    float64
	PaymentMethod orders.PaymentMethod
	Notes         string
	OrderedAt     time.Time
}

// ShortOrderID is the first 8 characters of the order id, the form shown
// in all customer-facing messages.
func ShortOrderID(orderID string) string {
	if len(orderID) > 8 {
		return orderID[:8]
	}
	return orderID
}

// OrderMessage renders the new-order summary the customer forwards to the
// shop for manual confirmation.
func OrderMessage(s OrderSummary) string {
	var b strings.Builder

	b.WriteString("🖼️ *NEW FRAME ORDER*\n\n")
	fmt.Fprintf(&b, "📋 *Order ID:* %s\n", ShortOrderID(s.OrderID))
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", s.CustomerName)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", s.CustomerEmail)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n\n", s.CustomerPhone)
	b.WriteString("🖼️ *Frame Details:*\n")
	fmt.Fprintf(&b, "• Style: %s\n", s.FrameName)
	fmt.Fprintf(&b, "• Size: %s\n", s.FrameSize)
	fmt.Fprintf(&b, "• Price: %s\n", pricing.FormatCurrency(s.TotalPrice))
	fmt.Fprintf(&b, "• Payment: %s\n\n", s.PaymentMethod.Label())

	if s.Notes != "" {
		fmt.Fprintf(&b, "📝 *Notes:* %s\n\n", s.Notes)
	}

	fmt.Fprintf(&b, "⏰ *Ordered:* %s\n\n", s.OrderedAt.Format("1/2/2006, 3:04:05 PM"))
	b.WriteString("Please confirm this order and let me know the expected completion time. Thank you!")

	return b.String()
}

// CustomerConfirmation renders the message the shop sends back to the
// customer once the order is acknowledged.
func CustomerConfirmation(s OrderSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hello %s! 👋\n\n", s.CustomerName)
	b.WriteString("Thank you for your custom frame order!\n\n")
	b.WriteString("📋 *Order Details:*\n")
	fmt.Fprintf(&b, "• Order ID: %s\n", ShortOrderID(s.OrderID))
	fmt.Fprintf(&b, "• Frame: %s\n", s.FrameName)
	fmt.Fprintf(&b, "• Size: %s\n", s.FrameSize)
	fmt.Fprintf(&b, "• Total: %s\n\n", pricing.FormatCurrency(s.TotalPrice))
	b.WriteString("We'll start working on your frame right away and will contact you when it's ready.\n\n")
	b.WriteString("If you have any questions, feel free to reply to this message!")

	return b.String()
}

// NormalizePhone strips non-digits and prefixes the Ghana country code,
// dropping a single leading "0" if present. It is purely string-level:
// malformed numbers pass through without length or format checks.
func NormalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	clean := digits.String()
	if strings.HasPrefix(clean, countryCode) {
		return clean
	}
	return countryCode + strings.TrimPrefix(clean, "0")
}

// Link builds a wa.me deep link carrying the URL-encoded message.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", NormalizePhone(phone), url.QueryEscape(message))
}
