package orders

import (
	"fmt"

	"github.com/google/uuid"

	"framecraft-backend/internal/pricing"
)

// Step names the ordering-flow step a customer must return to when a
// draft is missing one of its inputs.
type Step string

const (
	StepSelection Step = "selection"
	StepUpload    Step = "upload"
	StepCheckout  Step = "checkout"
)

type IncompleteError struct {
	Step    Step
	Missing string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("order draft incomplete: missing %s (go back to %s)", e.Missing, e.Step)
}

type Contact struct {
	Name  string
	Email string
	Phone string
}

// Draft accumulates the customer's selections across the multi-step flow
// (selection -> upload -> checkout). Nothing is persisted until Build
// produces a payload and the caller inserts it in a single write.
type Draft struct {
	frameStyleID uuid.UUID
	frameName    string
	basePrice    float64
	size         pricing.FrameSize
	imageURL     string
	caption      string
	contact      Contact
	payment      PaymentMethod
	notes        string
}

// Payload is the immutable order payload ready for submission.
// TotalPrice is snapshotted here and never recomputed afterwards.
type Payload struct {
	FrameStyleID  uuid.UUID
	FrameSize     pricing.FrameSize
	ImageURL      string
	CaptionText   string
	Contact       Contact
	PaymentMethod PaymentMethod
	Notes         string
	TotalPrice    float64
}

func NewDraft() *Draft {
	return &Draft{}
}

func (d *Draft) SelectFrame(id uuid.UUID, name string, basePrice float64) *Draft {
	d.frameStyleID = id
	d.frameName = name
	d.basePrice = basePrice
	return d
}

func (d *Draft) SelectSize(size pricing.FrameSize) *Draft {
	d.size = size
	return d
}

func (d *Draft) AttachImage(url string) *Draft {
	d.imageURL = url
	return d
}

func (d *Draft) WithCaption(text string) *Draft {
	d.caption = text
	return d
}

func (d *Draft) WithContact(c Contact) *Draft {
	d.contact = c
	return d
}

func (d *Draft) WithPayment(m PaymentMethod) *Draft {
	d.payment = m
	return d
}

func (d *Draft) WithNotes(notes string) *Draft {
	d.notes = notes
	return d
}

// FrameName is used when rendering the WhatsApp summary for a built draft.
func (d *Draft) FrameName() string {
	return d.frameName
}

// Build validates the accumulated steps in flow order and freezes the
// total price. A missing input yields an IncompleteError naming the step
// to return to; no partial payload is ever produced.
func (d *Draft) Build() (*Payload, error) {
	if d.frameStyleID == uuid.Nil {
		return nil, &IncompleteError{Step: StepSelection, Missing: "frame style"}
	}
	if d.basePrice <= 0 {
		return nil, &IncompleteError{Step: StepSelection, Missing: "frame price"}
	}
	if d.size == "" {
		return nil, &IncompleteError{Step: StepSelection, Missing: "frame size"}
	}
	if !d.size.IsValid() {
		return nil, &pricing.UnknownSizeError{Size: d.size}
	}
	if d.imageURL == "" {
		return nil, &IncompleteError{Step: StepUpload, Missing: "photo"}
	}
	if d.contact.Name == "" {
		return nil, &IncompleteError{Step: StepCheckout, Missing: "customer name"}
	}
	if d.contact.Email == "" {
		return nil, &IncompleteError{Step: StepCheckout, Missing: "customer email"}
	}
	if d.contact.Phone == "" {
		return nil, &IncompleteError{Step: StepCheckout, Missing: "customer phone"}
	}
	if !d.payment.IsValid() {
		return nil, &IncompleteError{Step: StepCheckout, Missing: "payment method"}
	}

	total, err := pricing.Total(d.basePrice, d.size)
	if err != nil {
		return nil, err
	}

	return &Payload{
		FrameStyleID:  d.frameStyleID,
		FrameSize:     d.size,
		ImageURL:      d.imageURL,
		CaptionText:   d.caption,
		Contact:       d.contact,
		PaymentMethod: d.payment,
		Notes:         d.notes,
		TotalPrice:    total,
	}, nil
}
