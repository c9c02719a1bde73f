package logistics

import (
	"fmt"

	"github.com/andrescamacho/settlement-go/internal/domain/construction"
)

// Producer generates output into its site's buffer while enabled.
// Disabling it suspends output without touching what is already buffered.
type Producer struct {
	ratePerStep float64
	enabled     bool
	buffer      *ResourceBuffer
}

// NewProducer creates an enabled producer feeding the given buffer
func NewProducer(ratePerStep float64, buffer *ResourceBuffer) (*Producer, error) {
	if ratePerStep < 0 {
		return nil, fmt.Errorf("production rate cannot be negative")
	}
	if buffer == nil {
		return nil, fmt.Errorf("producer requires a buffer")
	}
	return &Producer{
		ratePerStep: ratePerStep,
		enabled:     true,
		buffer:      buffer,
	}, nil
}

func (p *Producer) RatePerStep() float64 { return p.ratePerStep }
func (p *Producer) Enabled() bool        { return p.enabled }

// SetProductionEnabled implements construction.ProductionToggle
func (p *Producer) SetProductionEnabled(enabled bool) {
	p.enabled = enabled
}

// Produce runs the given number of simulation steps.
// It returns true when output was stored; false when paused or the buffer is full,
// in which case the producer simply retries on a later step.
func (p *Producer) Produce(steps int) bool {
	if !p.enabled || steps <= 0 {
		return false
	}
	return p.buffer.Add(p.ratePerStep * float64(steps))
}

var _ construction.ProductionToggle = (*Producer)(nil)
