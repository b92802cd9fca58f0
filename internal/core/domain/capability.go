package domain

// OwnerCap is the single credential authorizing privileged operations on one
// shop. A capability is bound to its shop for its entire lifetime;
// authorization compares the referenced shop identity by value, never a
// caller-supplied claim.
type OwnerCap struct {
	ID     string
	ShopID string
}

func (c *OwnerCap) Authorizes(s *Shop) bool {
	return c != nil && s != nil && c.ShopID == s.ID
}
