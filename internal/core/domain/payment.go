package domain

// Payment is a mutable holder of fungible value in minor units. A purchase
// splits the exact charge out of the buyer's holder; whatever remains stays
// with the caller as change.
type Payment struct {
	value uint64
}

func NewPayment(value uint64) *Payment {
	return &Payment{value: value}
}

func (p *Payment) Value() uint64 {
	return p.value
}

func (p *Payment) IsZero() bool {
	return p.value == 0
}

// Split moves amount out of p into a new holder.
func (p *Payment) Split(amount uint64) (*Payment, error) {
	if amount > p.value {
		return nil, ErrSplitTooLarge
	}
	p.value -= amount
	return &Payment{value: amount}, nil
}

// Merge drains other into p, leaving other empty.
func (p *Payment) Merge(other *Payment) {
	p.value += other.value
	other.value = 0
}
