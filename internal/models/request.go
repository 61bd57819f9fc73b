package models

import "time"

// SubmitOrderRequest carries the accumulated draft of the three-step
// ordering flow. Required-ness of the step inputs is enforced by the
// draft builder so callers get a step-identifying incomplete error;
// binding tags only check formats.
type SubmitOrderRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	FrameStyleID  string `json:"frame_style_id" binding:"omitempty,uuid"`
	FrameSize     string `json:"frame_size" binding:"omitempty,framesize"`
	ImageURL      string `json:"image_url" binding:"omitempty,url"`
	CaptionText   string `json:"caption_text"`
	PaymentMethod string `json:"payment_method" binding:"omitempty,oneof=cash_on_delivery bank_transfer online_payment"`
	Notes         string `json:"notes"`
}

type FrameStyleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price" binding:"required,gt=0"`
	Material    string   `json:"material"`
	Color       string   `json:"color"`
	WidthInches *float64 `json:"width_inches" binding:"omitempty,gt=0"`
	ImageURL    string   `json:"image_url" binding:"omitempty,url"`
	MockupURL   string   `json:"mockup_url" binding:"omitempty,url"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

type UpdateFulfillmentRequest struct {
	TrackingNumber    string     `json:"tracking_number"`
	EstimatedDelivery *time.Time `json:"estimated_delivery"`
}

type FavoritesRequest struct {
	Favorites []string `json:"favorites" binding:"required"`
}

type MarkReadRequest struct {
	NotificationIDs []string `json:"notification_ids" binding:"required"`
}
