package domain

import (
	"errors"
	"testing"
)

func TestPayment_Split(t *testing.T) {
	p := NewPayment(1000)

	part, err := p.Split(300)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if part.Value() != 300 {
		t.Errorf("expected split value 300, got %d", part.Value())
	}
	if p.Value() != 700 {
		t.Errorf("expected remainder 700, got %d", p.Value())
	}
}

func TestPayment_SplitTooLarge(t *testing.T) {
	p := NewPayment(100)

	if _, err := p.Split(101); !errors.Is(err, ErrSplitTooLarge) {
		t.Errorf("expected ErrSplitTooLarge, got: %v", err)
	}
	if p.Value() != 100 {
		t.Errorf("failed split changed value: %d", p.Value())
	}
}

func TestPayment_SplitExact(t *testing.T) {
	p := NewPayment(100)

	part, err := p.Split(100)
	if err != nil {
		t.Fatalf("split failed: %v", err)
	}
	if part.Value() != 100 {
		t.Errorf("expected split value 100, got %d", part.Value())
	}
	if !p.IsZero() {
		t.Errorf("expected empty holder, got %d", p.Value())
	}
}

func TestPayment_Merge(t *testing.T) {
	a := NewPayment(60)
	b := NewPayment(40)

	a.Merge(b)
	if a.Value() != 100 {
		t.Errorf("expected merged value 100, got %d", a.Value())
	}
	if !b.IsZero() {
		t.Errorf("expected drained holder, got %d", b.Value())
	}
}
