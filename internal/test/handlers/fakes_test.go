package handlers_test

import (
	"database/sql"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"framecraft-backend/internal/handlers"
	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/models"
	"framecraft-backend/internal/orders"
	"framecraft-backend/internal/services"
	"framecraft-backend/internal/supabase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := handlers.RegisterValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeDB is an in-memory stand-in for the database client, implementing
// the catalog and order store interfaces the handlers and the order
// service consume.
type fakeDB struct {
	frames map[uuid.UUID]*models.FrameStyle
	orders map[uuid.UUID]*models.OrderWithFrameStyle

	createOrderCalls int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		frames: make(map[uuid.UUID]*models.FrameStyle),
		orders: make(map[uuid.UUID]*models.OrderWithFrameStyle),
	}
}

func (f *fakeDB) addFrame(name string, basePrice float64) *models.FrameStyle {
	frame := &models.FrameStyle{
		ID:        uuid.New(),
		Name:      name,
		BasePrice: basePrice,
		CreatedAt: time.Now(),
	}
	f.frames[frame.ID] = frame
	return frame
}

func (f *fakeDB) ListFrameStyles() ([]models.FrameStyle, error) {
	list := make([]models.FrameStyle, 0, len(f.frames))
	for _, frame := range f.frames {
		list = append(list, *frame)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].BasePrice < list[j].BasePrice })
	return list, nil
}

func (f *fakeDB) GetFrameStyle(frameStyleID uuid.UUID) (*models.FrameStyle, error) {
	frame, ok := f.frames[frameStyleID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	copied := *frame
	return &copied, nil
}

func (f *fakeDB) CreateFrameStyle(fs *models.FrameStyle) (*models.FrameStyle, error) {
	created := *fs
	created.ID = uuid.New()
	created.CreatedAt = time.Now()
	f.frames[created.ID] = &created
	copied := created
	return &copied, nil
}

func (f *fakeDB) UpdateFrameStyle(frameStyleID uuid.UUID, fs *models.FrameStyle) (*models.FrameStyle, error) {
	existing, ok := f.frames[frameStyleID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	updated := *fs
	updated.ID = frameStyleID
	updated.CreatedAt = existing.CreatedAt
	f.frames[frameStyleID] = &updated
	copied := updated
	return &copied, nil
}

func (f *fakeDB) DeleteFrameStyle(frameStyleID uuid.UUID) error {
	if _, ok := f.frames[frameStyleID]; !ok {
		return supabase.ErrNotFound
	}
	delete(f.frames, frameStyleID)
	return nil
}

func (f *fakeDB) CreateOrder(o *models.Order) (*models.Order, error) {
	f.createOrderCalls++

	created := *o
	created.ID = uuid.New()
	created.Status = orders.StatusPending
	created.PaymentStatus = orders.PaymentPending
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt

	joined := &models.OrderWithFrameStyle{Order: created}
	if frame, ok := f.frames[created.FrameStyleID]; ok {
		joined.FrameStyle = *frame
	}
	f.orders[created.ID] = joined
	return &created, nil
}

func (f *fakeDB) ListOrders() ([]models.OrderWithFrameStyle, error) {
	list := make([]models.OrderWithFrameStyle, 0, len(f.orders))
	for _, o := range f.orders {
		list = append(list, *o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (f *fakeDB) GetOrder(orderID uuid.UUID) (*models.OrderWithFrameStyle, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeDB) UpdateOrderStatus(orderID uuid.UUID, status orders.Status) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	copied := o.Order
	return &copied, nil
}

func (f *fakeDB) UpdatePaymentStatus(orderID uuid.UUID, paymentStatus orders.PaymentStatus) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	o.PaymentStatus = paymentStatus
	o.UpdatedAt = time.Now()
	copied := o.Order
	return &copied, nil
}

func (f *fakeDB) UpdateFulfillment(orderID uuid.UUID, trackingNumber sql.NullString, estimatedDelivery sql.NullTime) (*models.Order, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	o.TrackingNumber = trackingNumber
	o.EstimatedDelivery = estimatedDelivery
	o.UpdatedAt = time.Now()
	copied := o.Order
	return &copied, nil
}

func (f *fakeDB) GetOrderStats() (*supabase.OrderStats, error) {
	stats := &supabase.OrderStats{
		ByStatus:        make(map[orders.Status]int),
		ByPaymentStatus: make(map[orders.PaymentStatus]int),
	}
	for _, o := range f.orders {
		stats.TotalOrders++
		stats.TotalRevenue += o.TotalPrice
		stats.ByStatus[o.Status]++
		stats.ByPaymentStatus[o.PaymentStatus]++
	}
	return stats, nil
}

type fakePublisher struct {
	events []string
}

func (f *fakePublisher) PublishOrderEvent(orderID uuid.UUID, event string, payload map[string]interface{}) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) PublishAdminEvent(event string, payload map[string]interface{}) error {
	f.events = append(f.events, event)
	return nil
}

type fakeAssets struct {
	uploads []string
	err     error
}

func (f *fakeAssets) UploadAsset(kind, filename, contentType string, data []byte) (string, string, error) {
	if f.err != nil {
		return "", "", f.err
	}
	path := kind + "/" + filename
	f.uploads = append(f.uploads, path)
	return path, "https://supabase.example.com/storage/v1/object/public/order-photos/" + path, nil
}

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(log.Close)
	return log
}

const adminNumber = "233539210458"

func newOrderService(t *testing.T, db *fakeDB) *services.OrderService {
	t.Helper()
	return services.NewOrderService(db, db, &fakePublisher{}, newTestLogger(t), adminNumber)
}
