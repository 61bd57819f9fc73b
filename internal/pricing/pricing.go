package pricing

import (
	"fmt"
)

// FrameSize is a closed enum of the physical sizes the shop offers.
type FrameSize string

const (
	Size8x10  FrameSize = "8x10"
	Size11x14 FrameSize = "11x14"
	Size16x20 FrameSize = "16x20"
	Size18x24 FrameSize = "18x24"
	Size24x36 FrameSize = "24x36"
)

type SizeSpec struct {
	Label      string  `json:"label"`
	Multiplier float64 `json:"multiplier"`
}

// frameSizes is static configuration, not user-editable data.
// Multipliers increase monotonically with physical size.
var frameSizes = map[FrameSize]SizeSpec{
	Size8x10:  {Label: `8" × 10"`, Multiplier: 1.0},
	Size11x14: {Label: `11" × 14"`, Multiplier: 1.3},
	Size16x20: {Label: `16" × 20"`, Multiplier: 1.8},
	Size18x24: {Label: `18" × 24"`, Multiplier: 2.2},
	Size24x36: {Label: `24" × 36"`, Multiplier: 3.0},
}

// sizeOrder lists the sizes in physical-size order.
var sizeOrder = []FrameSize{Size8x10, Size11x14, Size16x20, Size18x24, Size24x36}

type UnknownSizeError struct {
	Size FrameSize
}

func (e *UnknownSizeError) Error() string {
	return fmt.Sprintf("unknown frame size: %q", string(e.Size))
}

// Sizes returns the available frame sizes in physical-size order.
func Sizes() []FrameSize {
	sizes := make([]FrameSize, len(sizeOrder))
	copy(sizes, sizeOrder)
	return sizes
}

// Spec returns the display label and price multiplier for a size.
// An unknown size is a programming error, never silently defaulted.
func Spec(size FrameSize) (SizeSpec, error) {
	spec, ok := frameSizes[size]
	if !ok {
		return SizeSpec{}, &UnknownSizeError{Size: size}
	}
	return spec, nil
}

func (s FrameSize) IsValid() bool {
	_, ok := frameSizes[s]
	return ok
}

// Total computes base price times the size multiplier at full precision.
// Rounding to 2 decimal places happens at presentation time only.
func Total(basePrice float64, size FrameSize) (float64, error) {
	spec, err := Spec(size)
	if err != nil {
		return 0, err
	}
	return basePrice * spec.Multiplier, nil
}

// FormatCurrency renders an amount in Ghana cedis with 2 decimal places.
func FormatCurrency(amount float64) string {
	return fmt.Sprintf("GH₵%.2f", amount)
}
