package domain

// Event is a notification appended to the sink after a successful
// state-changing operation. The core writes events and never reads them back.
type Event interface {
	Type() string
}

type ShopCreated struct {
	ShopID       string `json:"shop_id"`
	CapabilityID string `json:"capability_id"`
}

func (ShopCreated) Type() string { return "ShopCreated" }

type ItemAdded struct {
	ShopID string `json:"shop_id"`
	ItemID int    `json:"item_id"`
}

func (ItemAdded) Type() string { return "ItemAdded" }

type ItemUnlisted struct {
	ShopID string `json:"shop_id"`
	ItemID int    `json:"item_id"`
}

func (ItemUnlisted) Type() string { return "ItemUnlisted" }

type ItemPurchased struct {
	ShopID   string `json:"shop_id"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
	Buyer    string `json:"buyer"`
}

func (ItemPurchased) Type() string { return "ItemPurchased" }

type ShopWithdrawal struct {
	ShopID    string `json:"shop_id"`
	Amount    uint64 `json:"amount"`
	Recipient string `json:"recipient"`
}

func (ShopWithdrawal) Type() string { return "ShopWithdrawal" }
