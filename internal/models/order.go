package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"framecraft-backend/internal/orders"
)

type Order struct {
	ID                uuid.UUID
	CustomerName      string
	CustomerEmail     string
	CustomerPhone     string
	FrameStyleID      uuid.UUID
	FrameSize         string
	ImageURL          string
	CaptionText       sql.NullString
	TotalPrice        float64
	Status            orders.Status
	PaymentStatus     orders.PaymentStatus
	PaymentMethod     orders.PaymentMethod
	Notes             sql.NullString
	TrackingNumber    sql.NullString
	EstimatedDelivery sql.NullTime
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// OrderWithFrameStyle carries the joined catalog row for admin views and
// order confirmation read-back.
type OrderWithFrameStyle struct {
	Order
	FrameStyle FrameStyle
}
