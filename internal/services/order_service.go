package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/models"
	"framecraft-backend/internal/orders"
	"framecraft-backend/internal/pricing"
	"framecraft-backend/internal/supabase"
	"framecraft-backend/internal/whatsapp"
)

// CatalogStore is the slice of the database client the order flow reads.
type CatalogStore interface {
	GetFrameStyle(frameStyleID uuid.UUID) (*models.FrameStyle, error)
}

type OrderStore interface {
	CreateOrder(o *models.Order) (*models.Order, error)
	GetOrder(orderID uuid.UUID) (*models.OrderWithFrameStyle, error)
	UpdateOrderStatus(orderID uuid.UUID, status orders.Status) (*models.Order, error)
	UpdatePaymentStatus(orderID uuid.UUID, paymentStatus orders.PaymentStatus) (*models.Order, error)
	UpdateFulfillment(orderID uuid.UUID, trackingNumber sql.NullString, estimatedDelivery sql.NullTime) (*models.Order, error)
}

type Publisher interface {
	PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error
	PublishAdminEvent(event string, payload map[string]interface{}) error
}

type InvalidValueError struct {
	Field string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Field, e.Value)
}

// OrderService owns order submission and the admin-driven lifecycle
// transitions, publishing a realtime event after every write so
// admin-facing views re-read instead of serving stale state.
type OrderService struct {
	catalog  CatalogStore
	store    OrderStore
	realtime Publisher
	log      *logger.Logger

	adminWhatsAppNumber string
}

func NewOrderService(catalog CatalogStore, store OrderStore, realtime Publisher, log *logger.Logger, adminWhatsAppNumber string) *OrderService {
	return &OrderService{
		catalog:             catalog,
		store:               store,
		realtime:            realtime,
		log:                 log,
		adminWhatsAppNumber: adminWhatsAppNumber,
	}
}

// SubmitResult carries the persisted order plus the WhatsApp message and
// deep link the customer uses for manual confirmation.
type SubmitResult struct {
	Order           *models.Order
	WhatsAppMessage string
	WhatsAppLink    string
}

// Submit runs the draft builder over the accumulated flow inputs and
// persists the order in a single atomic insert. The total price is
// snapshotted from the frame's current base price; later catalog edits
// never touch existing orders.
func (s *OrderService) Submit(req *models.SubmitOrderRequest) (*SubmitResult, error) {
	draft := orders.NewDraft().
		SelectSize(pricing.FrameSize(req.FrameSize)).
		AttachImage(req.ImageURL).
		WithCaption(req.CaptionText).
		WithContact(orders.Contact{
			Name:  req.CustomerName,
			Email: req.CustomerEmail,
			Phone: req.CustomerPhone,
		}).
		WithPayment(orders.PaymentMethod(req.PaymentMethod)).
		WithNotes(req.Notes)

	if req.FrameStyleID != "" {
		frameStyleID, err := uuid.Parse(req.FrameStyleID)
		if err != nil {
			return nil, &InvalidValueError{Field: "frame_style_id", Value: req.FrameStyleID}
		}

		frame, err := s.catalog.GetFrameStyle(frameStyleID)
		if err != nil {
			return nil, err
		}
		draft.SelectFrame(frame.ID, frame.Name, frame.BasePrice)
	}

	payload, err := draft.Build()
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateOrder(&models.Order{
		CustomerName:  payload.Contact.Name,
		CustomerEmail: payload.Contact.Email,
		CustomerPhone: payload.Contact.Phone,
		FrameStyleID:  payload.FrameStyleID,
		FrameSize:     string(payload.FrameSize),
		ImageURL:      payload.ImageURL,
		CaptionText:   supabase.NullString(payload.CaptionText),
		TotalPrice:    payload.TotalPrice,
		PaymentMethod: payload.PaymentMethod,
		Notes:         supabase.NullString(payload.Notes),
	})
	if err != nil {
		return nil, err
	}

	sizeSpec, _ := pricing.Spec(payload.FrameSize)
	message := whatsapp.OrderMessage(whatsapp.OrderSummary{
		OrderID:       created.ID.String(),
		CustomerName:  created.CustomerName,
		CustomerEmail: created.CustomerEmail,
		CustomerPhone: created.CustomerPhone,
		FrameName:     draft.FrameName(),
		FrameSize:     sizeSpec.Label,
		TotalPrice:    created.TotalPrice,
		PaymentMethod: created.PaymentMethod,
		Notes:         payload.Notes,
		OrderedAt:     created.CreatedAt,
	})

	if err := s.realtime.PublishAdminEvent("order_submitted", supabase.OrderSubmittedPayload(created.ID, created.TotalPrice)); err != nil {
		s.log.Warn("REALTIME", "failed to publish order_submitted for %s: %v", created.ID, err)
	}
	s.log.Info("ORDER", "order %s submitted, total %s", whatsapp.ShortOrderID(created.ID.String()), pricing.FormatCurrency(created.TotalPrice))

	return &SubmitResult{
		Order:           created,
		WhatsAppMessage: message,
		WhatsAppLink:    whatsapp.Link(s.adminWhatsAppNumber, message),
	}, nil
}

// SetStatus applies an admin status change. The transition table is
// advisory: off-table transitions are logged, not rejected.
func (s *OrderService) SetStatus(orderID uuid.UUID, status orders.Status) (*models.Order, error) {
	if !status.IsValid() {
		return nil, &InvalidValueError{Field: "status", Value: string(status)}
	}

	current, err := s.store.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	if !orders.IsAdvisoryTransition(current.Status, status) {
		s.log.Warn("ORDER", "order %s: off-table status transition %s -> %s",
			whatsapp.ShortOrderID(orderID.String()), current.Status, status)
	}

	updated, err := s.store.UpdateOrderStatus(orderID, status)
	if err != nil {
		return nil, err
	}

	if err := s.realtime.PublishAdminEvent("status_changed", supabase.StatusChangedPayload(orderID, status)); err != nil {
		s.log.Warn("REALTIME", "failed to publish status_changed for %s: %v", orderID, err)
	}

	return updated, nil
}

// SetPaymentStatus applies a manual payment confirmation. It never
// touches the fulfillment status: the two axes are deliberately
// independent.
func (s *OrderService) SetPaymentStatus(orderID uuid.UUID, paymentStatus orders.PaymentStatus) (*models.Order, error) {
	if !paymentStatus.IsValid() {
		return nil, &InvalidValueError{Field: "payment_status", Value: string(paymentStatus)}
	}

	if _, err := s.store.GetOrder(orderID); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdatePaymentStatus(orderID, paymentStatus)
	if err != nil {
		return nil, err
	}

	if err := s.realtime.PublishAdminEvent("payment_changed", supabase.PaymentChangedPayload(orderID, paymentStatus)); err != nil {
		s.log.Warn("REALTIME", "failed to publish payment_changed for %s: %v", orderID, err)
	}

	return updated, nil
}

func (s *OrderService) SetFulfillment(orderID uuid.UUID, trackingNumber string, estimatedDelivery *time.Time) (*models.Order, error) {
	if _, err := s.store.GetOrder(orderID); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateFulfillment(orderID, supabase.NullString(trackingNumber), supabase.NullTime(estimatedDelivery))
	if err != nil {
		return nil, err
	}

	if err := s.realtime.PublishOrderEvent(orderID, "fulfillment_updated", map[string]interface{}{
		"order_id":        orderID.String(),
		"tracking_number": trackingNumber,
	}); err != nil {
		s.log.Warn("REALTIME", "failed to publish fulfillment_updated for %s: %v", orderID, err)
	}

	return updated, nil
}

// ConfirmationMessage renders the customer-facing WhatsApp confirmation
// an admin sends once an order is acknowledged.
func (s *OrderService) ConfirmationMessage(o *models.OrderWithFrameStyle) (message, link string) {
	sizeSpec, _ := pricing.Spec(pricing.FrameSize(o.FrameSize))
	message = whatsapp.CustomerConfirmation(whatsapp.OrderSummary{
		OrderID:      o.ID.String(),
		CustomerName: o.CustomerName,
		FrameName:    o.FrameStyle.Name,
		FrameSize:    sizeSpec.Label,
		TotalPrice:   o.TotalPrice,
	})
	return message, whatsapp.Link(o.CustomerPhone, message)
}
