package orders

// Status tracks fulfillment progress of an order. The transition table
// below is advisory: an administrator may set any status on any order,
// and off-table transitions are logged rather than rejected.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// PaymentStatus is an independent axis: it is never coupled to Status.
// A completed order can still have a pending payment.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "cash_on_delivery"
	BankTransfer   PaymentMethod = "bank_transfer"
	OnlinePayment  PaymentMethod = "online_payment"
)

var advisoryTransitions = map[Status][]Status{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// IsAdvisoryTransition reports whether from -> to follows the expected
// order flow. Setting a status to itself is always advisory (idempotent
// writes happen when an admin re-selects the current value).
func IsAdvisoryTransition(from, to Status) bool {
	if from == to {
		return true
	}
	for _, next := range advisoryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return true
	}
	return false
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case CashOnDelivery, BankTransfer, OnlinePayment:
		return true
	}
	return false
}

// Label returns the human-readable form used in customer-facing messages.
func (m PaymentMethod) Label() string {
	switch m {
	case CashOnDelivery:
		return "Cash on Delivery"
	case BankTransfer:
		return "Bank Transfer"
	case OnlinePayment:
		return "Online Payment"
	default:
		return string(m)
	}
}
