package domain

// Category tags an item for display purposes; the ledger never interprets it.
type Category string

const (
	CategoryGeneral     Category = "general"
	CategoryDigital     Category = "digital"
	CategoryCollectible Category = "collectible"
)

// Item is a catalog entry. Its id equals its catalog position, assigned at
// insertion and never changed; items are never removed, only delisted.
type Item struct {
	ID          int
	Title       string
	Description string
	URL         string
	Price       uint64 // minor units per unit
	Category    Category
	TotalSupply int
	Available   int
	Listed      bool
}
