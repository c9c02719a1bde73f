package logistics

import (
	"fmt"
	"math"

	"github.com/andrescamacho/settlement-go/pkg/utils"
)

// MinPickupUnits is the smallest quantity worth a collector's trip
const MinPickupUnits = 1.0

// ResourceBuffer is the local stock of a single production site.
// It holds output until a collector picks it up.
//
// Invariants:
// - kind and capacity are fixed at creation, capacity > 0
// - 0 <= amount <= capacity at all times
// - Add only rejects when the buffer is already full; overflow is clamped
//
// Not safe for concurrent use: all mutation happens on the simulation step.
type ResourceBuffer struct {
	kind     ResourceKind
	capacity float64
	amount   float64
}

// NewResourceBuffer creates an empty buffer
func NewResourceBuffer(kind ResourceKind, capacity float64) (*ResourceBuffer, error) {
	if !kind.IsValid() {
		return nil, &ErrUnknownResourceKind{Kind: string(kind)}
	}
	if !(capacity > 0) || math.IsInf(capacity, 0) {
		return nil, &ErrInvalidCapacity{Capacity: capacity}
	}

	return &ResourceBuffer{
		kind:     kind,
		capacity: capacity,
	}, nil
}

// Getters

func (b *ResourceBuffer) Kind() ResourceKind { return b.kind }
func (b *ResourceBuffer) Capacity() float64  { return b.capacity }
func (b *ResourceBuffer) Amount() float64    { return b.amount }

// Add stores produced resource.
//
// Returns false, leaving the buffer untouched, only when it was already at
// capacity (or amount is negative or not a number). Otherwise the amount is
// added, clamped to capacity, and Add returns true even if part of it was cut.
func (b *ResourceBuffer) Add(amount float64) bool {
	if amount < 0 || math.IsNaN(amount) {
		return false
	}
	if b.amount >= b.capacity {
		return false
	}

	b.amount = utils.MinFloat(b.amount+amount, b.capacity)
	return true
}

// TakeAll drains the buffer and returns what it held.
// Draining an empty buffer returns 0.
func (b *ResourceBuffer) TakeAll() float64 {
	taken := b.amount
	b.amount = 0
	return taken
}

// HasAtLeastOneUnit reports whether a pickup is worth the trip
func (b *ResourceBuffer) HasAtLeastOneUnit() bool {
	return b.amount >= MinPickupUnits
}

// IsFull reports whether the next Add would be rejected
func (b *ResourceBuffer) IsFull() bool {
	return b.amount >= b.capacity
}

// Headroom returns the space left before the buffer is full
func (b *ResourceBuffer) Headroom() float64 {
	return b.capacity - b.amount
}

// FillRatio returns amount/capacity in [0, 1]
func (b *ResourceBuffer) FillRatio() float64 {
	return utils.Clamp(b.amount/b.capacity, 0, 1)
}

func (b *ResourceBuffer) String() string {
	return fmt.Sprintf("ResourceBuffer[%s %.2f/%.2f]", b.kind, b.amount, b.capacity)
}
