package domain

import (
	"errors"
	"math"
	"testing"
)

func newTestShop() *Shop {
	return NewShop("shop-1", "cap-1")
}

func mustAddItem(t *testing.T, s *Shop, price uint64, supply int) Item {
	t.Helper()
	item, err := s.AddItem("Game Boy Color", "handheld console", "https://example.com/gbc", price, supply, CategoryGeneral)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	return item
}

func TestAddItem_AssignsSequentialIDs(t *testing.T) {
	s := newTestShop()

	for i := 0; i < 5; i++ {
		item := mustAddItem(t, s, 100, 3)
		if item.ID != i {
			t.Errorf("expected item id %d, got %d", i, item.ID)
		}
	}

	if s.ItemCounter != len(s.Items) {
		t.Errorf("item counter %d != catalog length %d", s.ItemCounter, len(s.Items))
	}
	for i, item := range s.Items {
		if item.ID != i {
			t.Errorf("item at position %d has id %d", i, item.ID)
		}
	}
}

func TestAddItem_InitialState(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 250, 7)

	if item.Available != 7 || item.TotalSupply != 7 {
		t.Errorf("expected available=total=7, got %d/%d", item.Available, item.TotalSupply)
	}
	if !item.Listed {
		t.Error("new item must be listed")
	}
}

func TestAddItem_InvalidPrice(t *testing.T) {
	s := newTestShop()

	_, err := s.AddItem("free stuff", "", "", 0, 5, CategoryGeneral)
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got: %v", err)
	}
	if len(s.Items) != 0 || s.ItemCounter != 0 {
		t.Error("catalog must be unchanged after rejected add")
	}
}

func TestAddItem_InvalidSupply(t *testing.T) {
	s := newTestShop()

	for _, supply := range []int{0, -1} {
		_, err := s.AddItem("ghost stock", "", "", 100, supply, CategoryGeneral)
		if !errors.Is(err, ErrInvalidSupply) {
			t.Errorf("supply %d: expected ErrInvalidSupply, got: %v", supply, err)
		}
	}
	if len(s.Items) != 0 || s.ItemCounter != 0 {
		t.Error("catalog must be unchanged after rejected add")
	}
}

func TestUnlistItem_Idempotent(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 100, 5)

	if err := s.UnlistItem(item.ID); err != nil {
		t.Fatalf("first unlist failed: %v", err)
	}
	if err := s.UnlistItem(item.ID); err != nil {
		t.Fatalf("second unlist failed: %v", err)
	}
	if s.Items[item.ID].Listed {
		t.Error("item still listed after unlist")
	}
	if s.Items[item.ID].Available != 5 {
		t.Error("unlist must not touch availability")
	}
}

func TestUnlistItem_InvalidItemID(t *testing.T) {
	s := newTestShop()
	mustAddItem(t, s, 100, 5)

	for _, id := range []int{-1, 1, 42} {
		if err := s.UnlistItem(id); !errors.Is(err, ErrInvalidItemID) {
			t.Errorf("id %d: expected ErrInvalidItemID, got: %v", id, err)
		}
	}
}

func TestPurchaseItem_Success(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 1_000_000_000, 34)

	payment := NewPayment(1_000_000_000)
	delisted, err := s.PurchaseItem(item.ID, 1, payment)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if delisted {
		t.Error("purchase must not delist with supply remaining")
	}

	if got := s.Items[item.ID].Available; got != 33 {
		t.Errorf("expected available 33, got %d", got)
	}
	if !s.Items[item.ID].Listed {
		t.Error("item must stay listed")
	}
	if s.Balance != 1_000_000_000 {
		t.Errorf("expected balance 1000000000, got %d", s.Balance)
	}
	if !payment.IsZero() {
		t.Errorf("expected exact payment consumed, %d left", payment.Value())
	}
}

func TestPurchaseItem_ChangeStaysWithBuyer(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 300, 10)

	payment := NewPayment(1000)
	if _, err := s.PurchaseItem(item.ID, 2, payment); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if payment.Value() != 400 {
		t.Errorf("expected change 400 in the payment holder, got %d", payment.Value())
	}
	if s.Balance != 600 {
		t.Errorf("expected balance 600, got %d", s.Balance)
	}
}

func TestPurchaseItem_ExhaustsSupplyDelists(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 1_000_000_000, 10)

	payment := NewPayment(10_000_000_000)
	delisted, err := s.PurchaseItem(item.ID, 10, payment)
	if err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if !delisted {
		t.Error("full-supply purchase must report delisting")
	}
	if s.Items[item.ID].Available != 0 {
		t.Errorf("expected available 0, got %d", s.Items[item.ID].Available)
	}
	if s.Items[item.ID].Listed {
		t.Error("item with zero availability must be unlisted")
	}
	if s.Balance != 10_000_000_000 {
		t.Errorf("expected balance 10000000000, got %d", s.Balance)
	}
}

func TestPurchaseItem_ZeroQuantity(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 500, 3)

	payment := NewPayment(100)
	delisted, err := s.PurchaseItem(item.ID, 0, payment)
	if err != nil {
		t.Fatalf("zero-quantity purchase failed: %v", err)
	}
	if delisted {
		t.Error("zero-quantity purchase must not delist")
	}
	if payment.Value() != 100 || s.Balance != 0 {
		t.Error("zero-quantity purchase must move no funds")
	}
	if s.Items[item.ID].Available != 3 {
		t.Error("zero-quantity purchase must not touch availability")
	}
}

func TestPurchaseItem_InvalidItemID(t *testing.T) {
	s := newTestShop()
	mustAddItem(t, s, 100, 5)

	payment := NewPayment(1000)
	for _, id := range []int{-1, 1, 99} {
		if _, err := s.PurchaseItem(id, 1, payment); !errors.Is(err, ErrInvalidItemID) {
			t.Errorf("id %d: expected ErrInvalidItemID, got: %v", id, err)
		}
	}
	if payment.Value() != 1000 {
		t.Error("failed purchase must not touch payment")
	}
}

func TestPurchaseItem_NotListed(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 100, 5)
	if err := s.UnlistItem(item.ID); err != nil {
		t.Fatalf("unlist failed: %v", err)
	}

	payment := NewPayment(1000)
	if _, err := s.PurchaseItem(item.ID, 1, payment); !errors.Is(err, ErrItemNotListed) {
		t.Errorf("expected ErrItemNotListed, got: %v", err)
	}
	if payment.Value() != 1000 || s.Balance != 0 || s.Items[item.ID].Available != 5 {
		t.Error("failed purchase must leave all state unchanged")
	}
}

func TestPurchaseItem_QuantityExceedsAvailable(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 100, 5)

	payment := NewPayment(10_000)
	if _, err := s.PurchaseItem(item.ID, 6, payment); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got: %v", err)
	}
	if _, err := s.PurchaseItem(item.ID, -1, payment); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("negative quantity: expected ErrInvalidQuantity, got: %v", err)
	}
	if payment.Value() != 10_000 || s.Balance != 0 || s.Items[item.ID].Available != 5 {
		t.Error("failed purchase must leave all state unchanged")
	}
}

func TestPurchaseItem_QuantityBelowAvailableAfterPartialSale(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 10, 10)

	if _, err := s.PurchaseItem(item.ID, 4, NewPayment(40)); err != nil {
		t.Fatalf("first purchase failed: %v", err)
	}

	// available is now 6: asking for the original total supply must fail,
	// asking for the remainder must pass
	if _, err := s.PurchaseItem(item.ID, 10, NewPayment(100)); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got: %v", err)
	}
	if _, err := s.PurchaseItem(item.ID, 6, NewPayment(60)); err != nil {
		t.Errorf("remainder purchase failed: %v", err)
	}
}

func TestPurchaseItem_InsufficientPayment(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 1_000_000_000, 34)

	payment := NewPayment(999_999_999)
	if _, err := s.PurchaseItem(item.ID, 1, payment); !errors.Is(err, ErrInsufficientPayment) {
		t.Errorf("expected ErrInsufficientPayment, got: %v", err)
	}
	if payment.Value() != 999_999_999 {
		t.Errorf("payment changed on failure: %d", payment.Value())
	}
	if s.Balance != 0 || s.Items[item.ID].Available != 34 || !s.Items[item.ID].Listed {
		t.Error("failed purchase must leave all state unchanged")
	}
}

func TestPurchaseItem_PriceOverflow(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, math.MaxUint64, 5)

	payment := NewPayment(math.MaxUint64)
	if _, err := s.PurchaseItem(item.ID, 2, payment); !errors.Is(err, ErrAmountOverflow) {
		t.Errorf("expected ErrAmountOverflow, got: %v", err)
	}
	if payment.Value() != math.MaxUint64 || s.Balance != 0 || s.Items[item.ID].Available != 5 {
		t.Error("overflowing purchase must leave all state unchanged")
	}
}

func TestWithdraw_FullBalance(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 1_000, 5)
	if _, err := s.PurchaseItem(item.ID, 5, NewPayment(5_000)); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	payout, err := s.Withdraw(5_000)
	if err != nil {
		t.Fatalf("withdraw failed: %v", err)
	}
	if payout.Value() != 5_000 {
		t.Errorf("expected payout 5000, got %d", payout.Value())
	}
	if s.Balance != 0 {
		t.Errorf("expected balance 0, got %d", s.Balance)
	}
}

func TestWithdraw_Zero(t *testing.T) {
	s := newTestShop()

	payout, err := s.Withdraw(0)
	if err != nil {
		t.Fatalf("zero withdraw failed: %v", err)
	}
	if !payout.IsZero() {
		t.Errorf("expected empty payout, got %d", payout.Value())
	}
}

func TestWithdraw_ExceedsBalance(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 1_000, 5)
	if _, err := s.PurchaseItem(item.ID, 1, NewPayment(1_000)); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if _, err := s.Withdraw(1_001); !errors.Is(err, ErrInvalidWithdrawalAmount) {
		t.Errorf("expected ErrInvalidWithdrawalAmount, got: %v", err)
	}
	if s.Balance != 1_000 {
		t.Errorf("failed withdraw changed balance: %d", s.Balance)
	}
}

func TestClone_Independent(t *testing.T) {
	s := newTestShop()
	item := mustAddItem(t, s, 100, 5)

	snapshot := s.Clone()
	if _, err := s.PurchaseItem(item.ID, 5, NewPayment(500)); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}

	if snapshot.Items[item.ID].Available != 5 || !snapshot.Items[item.ID].Listed {
		t.Error("mutating the shop must not touch an earlier clone")
	}
	if snapshot.Balance != 0 {
		t.Error("clone balance changed")
	}
}
