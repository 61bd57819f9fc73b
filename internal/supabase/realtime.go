package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"

	"framecraft-backend/internal/orders"
)

// RealtimeClient notifies admin-facing views that an order changed so
// the read path never serves a stale status. Supabase broadcasts row
// changes automatically; explicit event publishing stays a stub until
// the Go client grows a Realtime publish API.
type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Database writes trigger Realtime row events automatically; this is
	// the hook for explicit broadcast once the client supports it.
	return nil
}

func (r *RealtimeClient) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("order:%s", orderID.String())
	return r.PublishEvent(channel, event, payload)
}

func (r *RealtimeClient) PublishAdminEvent(event string, payload map[string]interface{}) error {
	return r.PublishEvent("admin:orders", event, payload)
}

// Event payloads

func OrderSubmittedPayload(orderID uuid.UUID, totalPrice float64) map[string]interface{} {
	return map[string]interface{}{
		"order_id":    orderID.String(),
		"status":      string(orders.StatusPending),
		"total_price": totalPrice,
	}
}

func StatusChangedPayload(orderID uuid.UUID, status orders.Status) map[string]interface{} {
	return map[string]interface{}{
		"order_id": orderID.String(),
		"status":   string(status),
	}
}

func PaymentChangedPayload(orderID uuid.UUID, paymentStatus orders.PaymentStatus) map[string]interface{} {
	return map[string]interface{}{
		"order_id":       orderID.String(),
		"payment_status": string(paymentStatus),
	}
}
