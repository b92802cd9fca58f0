package domain

// Receipt proves the purchase of a single unit. A purchase of quantity q
// mints q independent receipts, all referencing the same item and all owned
// by the buyer. Receipts are immutable once minted.
type Receipt struct {
	ID     string
	ShopID string
	ItemID int
	Owner  string
}
