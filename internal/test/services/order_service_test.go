package services_test

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"framecraft-backend/internal/logger"
	"framecraft-backend/internal/models"
	"framecraft-backend/internal/orders"
	"framecraft-backend/internal/services"
	"framecraft-backend/internal/supabase"
)

type fakeCatalog struct {
	frames map[uuid.UUID]*models.FrameStyle
}

func (f *fakeCatalog) GetFrameStyle(frameStyleID uuid.UUID) (*models.FrameStyle, error) {
	frame, ok := f.frames[frameStyleID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	copied := *frame
	return &copied, nil
}

type fakeOrderStore struct {
	orders map[uuid.UUID]*models.OrderWithFrameStyle

	createCalls      int
	statusCalls      int
	paymentCalls     int
	fulfillmentCalls int
}

func newFakeOrderStore() *fakeOrderStore {
	return &fakeOrderStore{orders: make(map[uuid.UUID]*models.OrderWithFrameStyle)}
}

func (f *fakeOrderStore) CreateOrder(o *models.Order) (*models.Order, error) {
	f.createCalls++

	created := *o
	created.ID = uuid.New()
	created.Status = orders.StatusPending
	created.PaymentStatus = orders.PaymentPending
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt

	f.orders[created.ID] = &models.OrderWithFrameStyle{Order: created}
	return &created, nil
}

func (f *fakeOrderStore) GetOrder(orderID uuid.UUID) (*models.OrderWithFrameStyle, error) {
	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	copied := *o
	return &copied, nil
}

func (f *fakeOrderStore) UpdateOrderStatus(orderID uuid.UUID, status orders.Status) (*models.Order, error) {
	f.statusCalls++

	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	o.Status = status
	o.UpdatedAt = time.Now()
	copied := o.Order
	return &copied, nil
}

func (f *fakeOrderStore) UpdatePaymentStatus(orderID uuid.UUID, paymentStatus orders.PaymentStatus) (*models.Order, error) {
	f.paymentCalls++

	o, ok := f.orders[orderID]
	if !ok {
		return nil, supabase.ErrNotFound
	}
	o.PaymentStatus = paymentStatus
	o.UpdatedAt = time.Now()
	copied := o.Order
	return &copied, nil
}

func (f *fakeOrderStore) UpdateFulfillment(orderID uuid.UUID, trackingNumber sql.NullString, estimatedDelivery sql.NullTime) (*models.Order, error) {
	f.fulfillmentCalls++

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

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(log.Close)
	return log
}

const adminNumber = "233539210458"

func newService(t *testing.T, catalog *fakeCatalog, store *fakeOrderStore, publisher *fakePublisher) *services.OrderService {
	t.Helper()
	return services.NewOrderService(catalog, store, publisher, newTestLogger(t), adminNumber)
}

func submitRequest(frameStyleID string) *models.SubmitOrderRequest {
	return &models.SubmitOrderRequest{
		CustomerName:  "Ama Mensah",
		CustomerEmail: "ama@example.com",
		CustomerPhone: "0539210458",
		FrameStyleID:  frameStyleID,
		FrameSize:     "16x20",
		ImageURL:      "https://example.com/photo.jpg",
		PaymentMethod: "cash_on_delivery",
	}
}

func TestSubmit(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	publisher := &fakePublisher{}
	svc := newService(t, catalog, store, publisher)

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	assert.Equal(t, 1, store.createCalls)
	assert.InDelta(t, 180.0, result.Order.TotalPrice, 1e-9)
	assert.Equal(t, orders.StatusPending, result.Order.Status)
	assert.Equal(t, orders.PaymentPending, result.Order.PaymentStatus)

	assert.Contains(t, result.WhatsAppMessage, "Classic Oak")
	assert.Contains(t, result.WhatsAppMessage, "GH₵180.00")
	assert.True(t, strings.HasPrefix(result.WhatsAppLink, "https://wa.me/"+adminNumber+"?text="), result.WhatsAppLink)

	assert.Equal(t, []string{"order_submitted"}, publisher.events)
}

func TestSubmit_IncompleteDraft_NothingPersisted(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	publisher := &fakePublisher{}
	svc := newService(t, catalog, store, publisher)

	req := submitRequest(frameID.String())
	req.CustomerPhone = ""

	_, err := svc.Submit(req)

	var incomplete *orders.IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, orders.StepCheckout, incomplete.Step)
	assert.Equal(t, 0, store.createCalls)
	assert.Empty(t, publisher.events)
}

func TestSubmit_MissingFrameSelection(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(t, &fakeCatalog{}, store, &fakePublisher{})

	_, err := svc.Submit(submitRequest(""))

	var incomplete *orders.IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, orders.StepSelection, incomplete.Step)
	assert.Equal(t, 0, store.createCalls)
}

func TestSubmit_UnknownFrameStyle(t *testing.T) {
	svc := newService(t, &fakeCatalog{}, newFakeOrderStore(), &fakePublisher{})

	_, err := svc.Submit(submitRequest(uuid.New().String()))
	assert.ErrorIs(t, err, supabase.ErrNotFound)
}

func TestSubmit_MalformedFrameStyleID(t *testing.T) {
	svc := newService(t, &fakeCatalog{}, newFakeOrderStore(), &fakePublisher{})

	_, err := svc.Submit(submitRequest("not-a-uuid"))

	var invalid *services.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "frame_style_id", invalid.Field)
}

func TestSubmit_TotalSurvivesCatalogEdit(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	svc := newService(t, catalog, store, &fakePublisher{})

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	// Admin raises the base price after the order is in.
	catalog.frames[frameID].BasePrice = 250

	stored, err := store.GetOrder(result.Order.ID)
	require.NoError(t, err)
	assert.InDelta(t, 180.0, stored.TotalPrice, 1e-9)
}

func TestSetStatus_DoesNotTouchPayment(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	publisher := &fakePublisher{}
	svc := newService(t, catalog, store, publisher)

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	updated, err := svc.SetStatus(result.Order.ID, orders.StatusCompleted)
	require.NoError(t, err)

	assert.Equal(t, orders.StatusCompleted, updated.Status)
	assert.Equal(t, orders.PaymentPending, updated.PaymentStatus)
	assert.Equal(t, 0, store.paymentCalls)
	assert.Contains(t, publisher.events, "status_changed")
}

func TestSetStatus_OffTableTransitionPermitted(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	svc := newService(t, catalog, store, &fakePublisher{})

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	_, err = svc.SetStatus(result.Order.ID, orders.StatusCompleted)
	require.NoError(t, err)

	// Reopening a completed order is off the expected flow but allowed.
	updated, err := svc.SetStatus(result.Order.ID, orders.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, updated.Status)
}

func TestSetStatus_Idempotent(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	svc := newService(t, catalog, store, &fakePublisher{})

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	// Re-selecting the current status writes again (bumping updated_at)
	// but changes nothing else.
	updated, err := svc.SetStatus(result.Order.ID, orders.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, orders.StatusPending, updated.Status)
	assert.Equal(t, orders.PaymentPending, updated.PaymentStatus)
	assert.Equal(t, 1, store.statusCalls)
	assert.True(t, updated.UpdatedAt.After(result.Order.UpdatedAt) || updated.UpdatedAt.Equal(result.Order.UpdatedAt))
}

func TestSetStatus_InvalidValue(t *testing.T) {
	store := newFakeOrderStore()
	svc := newService(t, &fakeCatalog{}, store, &fakePublisher{})

	_, err := svc.SetStatus(uuid.New(), "shipped")

	var invalid *services.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "status", invalid.Field)
	assert.Equal(t, 0, store.statusCalls)
}

func TestSetStatus_UnknownOrder(t *testing.T) {
	svc := newService(t, &fakeCatalog{}, newFakeOrderStore(), &fakePublisher{})

	_, err := svc.SetStatus(uuid.New(), orders.StatusProcessing)
	assert.ErrorIs(t, err, supabase.ErrNotFound)
}

func TestSetPaymentStatus_DoesNotTouchStatus(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	publisher := &fakePublisher{}
	svc := newService(t, catalog, store, publisher)

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	updated, err := svc.SetPaymentStatus(result.Order.ID, orders.PaymentPaid)
	require.NoError(t, err)

	assert.Equal(t, orders.PaymentPaid, updated.PaymentStatus)
	assert.Equal(t, orders.StatusPending, updated.Status)
	assert.Equal(t, 0, store.statusCalls)
	assert.Contains(t, publisher.events, "payment_changed")
}

func TestSetPaymentStatus_InvalidValue(t *testing.T) {
	svc := newService(t, &fakeCatalog{}, newFakeOrderStore(), &fakePublisher{})

	_, err := svc.SetPaymentStatus(uuid.New(), "refunded")

	var invalid *services.InvalidValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "payment_status", invalid.Field)
}

func TestSetFulfillment(t *testing.T) {
	frameID := uuid.New()
	catalog := &fakeCatalog{frames: map[uuid.UUID]*models.FrameStyle{
		frameID: {ID: frameID, Name: "Classic Oak", BasePrice: 100},
	}}
	store := newFakeOrderStore()
	publisher := &fakePublisher{}
	svc := newService(t, catalog, store, publisher)

	result, err := svc.Submit(submitRequest(frameID.String()))
	require.NoError(t, err)

	eta := time.Now().Add(72 * time.Hour)
	updated, err := svc.SetFulfillment(result.Order.ID, "GH-TRACK-42", &eta)
	require.NoError(t, err)

	assert.Equal(t, "GH-TRACK-42", updated.TrackingNumber.String)
	assert.True(t, updated.EstimatedDelivery.Valid)
	assert.Contains(t, publisher.events, "fulfillment_updated")
}

func TestConfirmationMessage(t *testing.T) {
	svc := newService(t, &fakeCatalog{}, newFakeOrderStore(), &fakePublisher{})

	order := &models.OrderWithFrameStyle{
		Order: models.Order{
			ID:            uuid.New(),
			CustomerName:  "Ama Mensah",
			CustomerPhone: "0539210458",
			FrameSize:     "16x20",
			TotalPrice:    180,
		},
		FrameStyle: models.FrameStyle{Name: "Classic Oak"},
	}

	message, link := svc.ConfirmationMessage(order)

	assert.Contains(t, message, "Hello Ama Mensah!")
	assert.Contains(t, message, "Classic Oak")
	assert.Contains(t, message, "GH₵180.00")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/233539210458?text="), link)
}
