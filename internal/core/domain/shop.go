package domain

import "math"

// Shop is the shared aggregate: an append-only item catalog plus a pooled
// balance in minor units. All mutation goes through the operations below;
// each one checks every precondition before its first write, so a failed
// operation leaves the shop, its items, and the payment untouched.
// Serializing concurrent callers is the hosting layer's job, not the
// aggregate's.
type Shop struct {
	ID          string
	OwnerCapID  string
	Balance     uint64
	Items       []Item
	ItemCounter int // always len(Items); item i sits at Items[i]
}

func NewShop(id, ownerCapID string) *Shop {
	return &Shop{ID: id, OwnerCapID: ownerCapID}
}

// AddItem appends a new listed item and returns it. The item id is the
// catalog position at insertion time.
func (s *Shop) AddItem(title, description, url string, price uint64, supply int, category Category) (Item, error) {
	if price == 0 {
		return Item{}, ErrInvalidPrice
	}
	if supply <= 0 {
		return Item{}, ErrInvalidSupply
	}

	item := Item{
		ID:          s.ItemCounter,
		Title:       title,
		Description: description,
		URL:         url,
		Price:       price,
		Category:    category,
		TotalSupply: supply,
		Available:   supply,
		Listed:      true,
	}
	s.Items = append(s.Items, item)
	s.ItemCounter++
	return item, nil
}

// UnlistItem takes the item off sale. Unlisting an already-unlisted item is
// not an error; the flag only ever moves from true to false.
func (s *Shop) UnlistItem(itemID int) error {
	if itemID < 0 || itemID >= len(s.Items) {
		return ErrInvalidItemID
	}
	s.Items[itemID].Listed = false
	return nil
}

// PurchaseItem charges price*quantity out of payment into the shop balance
// and decrements availability, delisting the item when supply runs out. It
// reports whether this purchase caused the delisting so the caller can emit
// the follow-up notification.
func (s *Shop) PurchaseItem(itemID, quantity int, payment *Payment) (delisted bool, err error) {
	if itemID < 0 || itemID >= len(s.Items) {
		return false, ErrInvalidItemID
	}
	item := &s.Items[itemID]
	if !item.Listed {
		return false, ErrItemNotListed
	}
	if quantity < 0 || quantity > item.Available {
		return false, ErrInvalidQuantity
	}
	total, ok := mulPrice(item.Price, quantity)
	if !ok {
		return false, ErrAmountOverflow
	}
	if payment.Value() < total {
		return false, ErrInsufficientPayment
	}

	paid, err := payment.Split(total)
	if err != nil {
		return false, err
	}
	s.Balance += paid.Value()
	item.Available -= quantity
	if item.Available == 0 {
		item.Listed = false
		return true, nil
	}
	return false, nil
}

// Withdraw moves amount out of the pooled balance into a fresh payment.
// Withdrawing zero, or the exact full balance, is permitted.
func (s *Shop) Withdraw(amount uint64) (*Payment, error) {
	if amount > s.Balance {
		return nil, ErrInvalidWithdrawalAmount
	}
	s.Balance -= amount
	return NewPayment(amount), nil
}

// Clone returns a deep copy for read snapshots and persistence jobs.
func (s *Shop) Clone() Shop {
	cp := *s
	cp.Items = append([]Item(nil), s.Items...)
	return cp
}

func mulPrice(price uint64, quantity int) (uint64, bool) {
	q := uint64(quantity)
	if q == 0 {
		return 0, true
	}
	if price > math.MaxUint64/q {
		return 0, false
	}
	return price * q, true
}
