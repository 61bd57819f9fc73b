package supabase

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"framecraft-backend/internal/models"
	"framecraft-backend/internal/orders"
)

// ErrNotFound is returned when a referenced row does not exist.
var ErrNotFound = errors.New("not found")

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

const frameStyleColumns = `id, name, description, base_price, material, color, width_inches, image_url, mockup_url, created_at`

func scanFrameStyle(row interface{ Scan(...interface{}) error }, fs *models.FrameStyle) error {
	return row.Scan(
		&fs.ID, &fs.Name, &fs.Description, &fs.BasePrice, &fs.Material,
		&fs.Color, &fs.WidthInches, &fs.ImageURL, &fs.MockupURL, &fs.CreatedAt,
	)
}

// ListFrameStyles returns the catalog ordered by base price ascending.
func (d *DatabaseClient) ListFrameStyles() ([]models.FrameStyle, error) {
	rows, err := d.db.Query(`
		SELECT ` + frameStyleColumns + `
		FROM frame_styles
		ORDER BY base_price ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list frame styles: %w", err)
	}
	defer rows.Close()

	var styles []models.FrameStyle
	for rows.Next() {
		var fs models.FrameStyle
		if err := scanFrameStyle(rows, &fs); err != nil {
			return nil, fmt.Errorf("failed to scan frame style: %w", err)
		}
		styles = append(styles, fs)
	}

	return styles, rows.Err()
}

func (d *DatabaseClient) GetFrameStyle(frameStyleID uuid.UUID) (*models.FrameStyle, error) {
	var fs models.FrameStyle
	err := scanFrameStyle(d.db.QueryRow(`
		SELECT `+frameStyleColumns+`
		FROM frame_styles
		WHERE id = $1
	`, frameStyleID), &fs)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get frame style: %w", err)
	}

	return &fs, nil
}

func (d *DatabaseClient) CreateFrameStyle(fs *models.FrameStyle) (*models.FrameStyle, error) {
	var created models.FrameStyle
	err := scanFrameStyle(d.db.QueryRow(`
		INSERT INTO frame_styles (name, description, base_price, material, color, width_inches, image_url, mockup_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+frameStyleColumns+`
	`, fs.Name, fs.Description, fs.BasePrice, fs.Material, fs.Color,
		fs.WidthInches, fs.ImageURL, fs.MockupURL), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create frame style: %w", err)
	}

	return &created, nil
}

func (d *DatabaseClient) UpdateFrameStyle(frameStyleID uuid.UUID, fs *models.FrameStyle) (*models.FrameStyle, error) {
	var updated models.FrameStyle
	err := scanFrameStyle(d.db.QueryRow(`
		UPDATE frame_styles
		SET name = $1, description = $2, base_price = $3, material = $4,
		    color = $5, width_inches = $6, image_url = $7, mockup_url = $8
		WHERE id = $9
		RETURNING `+frameStyleColumns+`
	`, fs.Name, fs.Description, fs.BasePrice, fs.Material, fs.Color,
		fs.WidthInches, fs.ImageURL, fs.MockupURL, frameStyleID), &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update frame style: %w", err)
	}

	return &updated, nil
}

func (d *DatabaseClient) DeleteFrameStyle(frameStyleID uuid.UUID) error {
	result, err := d.db.Exec(`
		DELETE FROM frame_styles
		WHERE id = $1
	`, frameStyleID)
	if err != nil {
		return fmt.Errorf("failed to delete frame style: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

const orderColumns = `id, customer_name, customer_email, customer_phone, frame_style_id, frame_size,
	image_url, caption_text, total_price, status, payment_status, payment_method, notes,
	tracking_number, estimated_delivery, created_at, updated_at`

func scanOrder(row interface{ Scan(...interface{}) error }, o *models.Order) error {
	return row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.FrameStyleID, &o.FrameSize, &o.ImageURL, &o.CaptionText,
		&o.TotalPrice, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
		&o.Notes, &o.TrackingNumber, &o.EstimatedDelivery,
		&o.CreatedAt, &o.UpdatedAt,
	)
}

// CreateOrder inserts the full order row in a single atomic write.
// The total price is the frozen value computed at submission time.
func (d *DatabaseClient) CreateOrder(o *models.Order) (*models.Order, error) {
	var created models.Order
	err := scanOrder(d.db.QueryRow(`
		INSERT INTO orders (customer_name, customer_email, customer_phone, frame_style_id,
			frame_size, image_url, caption_text, total_price, status, payment_status,
			payment_method, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+orderColumns+`
	`, o.CustomerName, o.CustomerEmail, o.CustomerPhone, o.FrameStyleID,
		o.FrameSize, o.ImageURL, o.CaptionText, o.TotalPrice,
		orders.StatusPending, orders.PaymentPending, o.PaymentMethod, o.Notes), &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return &created, nil
}

const orderJoinColumns = `o.id, o.customer_name, o.customer_email, o.customer_phone, o.frame_style_id,
	o.frame_size, o.image_url, o.caption_text, o.total_price, o.status, o.payment_status,
	o.payment_method, o.notes, o.tracking_number, o.estimated_delivery, o.created_at, o.updated_at,
	f.id, f.name, f.description, f.base_price, f.material, f.color, f.width_inches,
	f.image_url, f.mockup_url, f.created_at`

func scanOrderWithFrameStyle(row interface{ Scan(...interface{}) error }, o *models.OrderWithFrameStyle) error {
	return row.Scan(
		&o.ID, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.FrameStyleID, &o.FrameSize, &o.ImageURL, &o.CaptionText,
		&o.TotalPrice, &o.Status, &o.PaymentStatus, &o.PaymentMethod,
		&o.Notes, &o.TrackingNumber, &o.EstimatedDelivery,
		&o.CreatedAt, &o.UpdatedAt,
		&o.FrameStyle.ID, &o.FrameStyle.Name, &o.FrameStyle.Description,
		&o.FrameStyle.BasePrice, &o.FrameStyle.Material, &o.FrameStyle.Color,
		&o.FrameStyle.WidthInches, &o.FrameStyle.ImageURL, &o.FrameStyle.MockupURL,
		&o.FrameStyle.CreatedAt,
	)
}

// ListOrders returns all orders joined with their frame styles, newest first.
func (d *DatabaseClient) ListOrders() ([]models.OrderWithFrameStyle, error) {
	rows, err := d.db.Query(`
		SELECT ` + orderJoinColumns + `
		FROM orders o
		JOIN frame_styles f ON f.id = o.frame_style_id
		ORDER BY o.created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var list []models.OrderWithFrameStyle
	for rows.Next() {
		var o models.OrderWithFrameStyle
		if err := scanOrderWithFrameStyle(rows, &o); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		list = append(list, o)
	}

	return list, rows.Err()
}

func (d *DatabaseClient) GetOrder(orderID uuid.UUID) (*models.OrderWithFrameStyle, error) {
	var o models.OrderWithFrameStyle
	err := scanOrderWithFrameStyle(d.db.QueryRow(`
		SELECT `+orderJoinColumns+`
		FROM orders o
		JOIN frame_styles f ON f.id = o.frame_style_id
		WHERE o.id = $1
	`, orderID), &o)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &o, nil
}

// UpdateOrderStatus writes the new status and bumps updated_at. Writing
// the current status again still bumps updated_at (idempotent elsewhere).
func (d *DatabaseClient) UpdateOrderStatus(orderID uuid.UUID, status orders.Status) (*models.Order, error) {
	var updated models.Order
	err := scanOrder(d.db.QueryRow(`
		UPDATE orders
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns+`
	`, status, orderID), &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return &updated, nil
}

func (d *DatabaseClient) UpdatePaymentStatus(orderID uuid.UUID, paymentStatus orders.PaymentStatus) (*models.Order, error) {
	var updated models.Order
	err := scanOrder(d.db.QueryRow(`
		UPDATE orders
		SET payment_status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING `+orderColumns+`
	`, paymentStatus, orderID), &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	return &updated, nil
}

func (d *DatabaseClient) UpdateFulfillment(orderID uuid.UUID, trackingNumber sql.NullString, estimatedDelivery sql.NullTime) (*models.Order, error) {
	var updated models.Order
	err := scanOrder(d.db.QueryRow(`
		UPDATE orders
		SET tracking_number = $1, estimated_delivery = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING `+orderColumns+`
	`, trackingNumber, estimatedDelivery, orderID), &updated)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update fulfillment: %w", err)
	}

	return &updated, nil
}

// OrderStats aggregates the figures shown on the admin dashboard.
type OrderStats struct {
	TotalOrders     int                          `json:"total_orders"`
	TotalRevenue    float64                      `json:"total_revenue"`
	ByStatus        map[orders.Status]int        `json:"by_status"`
	ByPaymentStatus map[orders.PaymentStatus]int `json:"by_payment_status"`
}

func (d *DatabaseClient) GetOrderStats() (*OrderStats, error) {
	stats := &OrderStats{
		ByStatus:        make(map[orders.Status]int),
		ByPaymentStatus: make(map[orders.PaymentStatus]int),
	}

	rows, err := d.db.Query(`
		SELECT status, payment_status, COUNT(*), COALESCE(SUM(total_price), 0)
		FROM orders
		GROUP BY status, payment_status
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate orders: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status        orders.Status
			paymentStatus orders.PaymentStatus
			count         int
			revenue       float64
		)
		if err := rows.Scan(&status, &paymentStatus, &count, &revenue); err != nil {
			return nil, fmt.Errorf("failed to scan order stats: %w", err)
		}
		stats.TotalOrders += count
		stats.TotalRevenue += revenue
		stats.ByStatus[status] += count
		stats.ByPaymentStatus[paymentStatus] += count
	}

	return stats, rows.Err()
}

// Ping exercises the connection for health checks.
func (d *DatabaseClient) Ping() error {
	return d.db.Ping()
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

// NullTime wraps a pointer into sql.NullTime for fulfillment updates.
func NullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// NullString wraps a possibly-empty string into sql.NullString.
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
