package models

import (
	"time"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	// Step names the ordering-flow step to return to when a draft is
	// incomplete (selection, upload, checkout).
	Step string `json:"step,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type SizeOption struct {
	Size       string  `json:"size"`
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

type QuoteResponse struct {
	FrameStyleID string  `json:"frame_style_id"`
	FrameSize    string  `json:"frame_size"`
	BasePrice    float64 `json:"base_price"`
	Multiplier   float64 `json:"multiplier"`
	TotalPrice   float64 `json:"total_price"`
	Display      string  `json:"display"`
}

type FrameStyleResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	BasePrice   float64   `json:"base_price"`
	Material    string    `json:"material,omitempty"`
	Color       string    `json:"color,omitempty"`
	WidthInches float64   `json:"width_inches,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	MockupURL   string    `json:"mockup_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewFrameStyleResponse(fs *FrameStyle) FrameStyleResponse {
	resp := FrameStyleResponse{
		ID:        fs.ID.String(),
		Name:      fs.Name,
		BasePrice: fs.BasePrice,
		CreatedAt: fs.CreatedAt,
	}
	if fs.Description.Valid {
		resp.Description = fs.Description.String
	}
	if fs.Material.Valid {
		resp.Material = fs.Material.String
	}
	if fs.Color.Valid {
		resp.Color = fs.Color.String
	}
	if fs.WidthInches.Valid {
		resp.WidthInches = fs.WidthInches.Float64
	}
	if fs.ImageURL.Valid {
		resp.ImageURL = fs.ImageURL.String
	}
	if fs.MockupURL.Valid {
		resp.MockupURL = fs.MockupURL.String
	}
	return resp
}

type FrameStyleListResponse struct {
	Frames []FrameStyleResponse `json:"frames"`
}

type OrderResponse struct {
	ID                string              `json:"order_id"`
	CustomerName      string              `json:"customer_name"`
	CustomerEmail     string              `json:"customer_email"`
	CustomerPhone     string              `json:"customer_phone"`
	FrameStyleID      string              `json:"frame_style_id"`
	FrameSize         string              `json:"frame_size"`
	ImageURL          string              `json:"image_url"`
	CaptionText       string              `json:"caption_text,omitempty"`
	TotalPrice        float64             `json:"total_price"`
	Status            string              `json:"status"`
	PaymentStatus     string              `json:"payment_status"`
	PaymentMethod     string              `json:"payment_method"`
	Notes             string              `json:"notes,omitempty"`
	TrackingNumber    string              `json:"tracking_number,omitempty"`
	EstimatedDelivery *time.Time          `json:"estimated_delivery,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	FrameStyle        *FrameStyleResponse `json:"frame_style,omitempty"`
}

func NewOrderResponse(o *Order) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID.String(),
		CustomerName:  o.CustomerName,
		CustomerEmail: o.CustomerEmail,
		CustomerPhone: o.CustomerPhone,
		FrameStyleID:  o.FrameStyleID.String(),
		FrameSize:     o.FrameSize,
		ImageURL:      o.ImageURL,
		TotalPrice:    o.TotalPrice,
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: string(o.PaymentMethod),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	if o.CaptionText.Valid {
		resp.CaptionText = o.CaptionText.String
	}
	if o.Notes.Valid {
		resp.Notes = o.Notes.String
	}
	if o.TrackingNumber.Valid {
		resp.TrackingNumber = o.TrackingNumber.String
	}
	if o.EstimatedDelivery.Valid {
		t := o.EstimatedDelivery.Time
		resp.EstimatedDelivery = &t
	}
	return resp
}

func NewOrderWithFrameStyleResponse(o *OrderWithFrameStyle) OrderResponse {
	resp := NewOrderResponse(&o.Order)
	fs := NewFrameStyleResponse(&o.FrameStyle)
	resp.FrameStyle = &fs
	return resp
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
}

type SubmitOrderResponse struct {
	OrderID         string    `json:"order_id"`
	TotalPrice      float64   `json:"total_price"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	WhatsAppMessage string    `json:"whatsapp_message"`
	WhatsAppLink    string    `json:"whatsapp_link"`
	CreatedAt       time.Time `json:"created_at"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type UploadResponse struct {
	Filename    string `json:"filename"`
	Size        int64  `json:"size"`
	ContentType string `json:"content_type"`
	StoragePath string `json:"storage_path"`
	URL         string `json:"url"`
}

type FavoritesResponse struct {
	Favorites []string `json:"favorites"`
}

type NotificationsReadResponse struct {
	Read []string `json:"read"`
}
