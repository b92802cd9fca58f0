package port

import (
	"context"

	"github.com/hqv2016/shop-ledger/internal/core/domain"
)

type ShopStore interface {
	// SaveShop upserts the shop row and all of its item rows in one transaction
	SaveShop(ctx context.Context, shop domain.Shop) error

	// SaveCapability persists an owner capability record
	SaveCapability(ctx context.Context, cap domain.OwnerCap) error

	// SaveReceipts persists the receipts minted by one purchase
	SaveReceipts(ctx context.Context, receipts []domain.Receipt) error

	// GetShop loads one shop with its full catalog, or nil when absent
	GetShop(ctx context.Context, shopID string) (*domain.Shop, error)

	// ListShops loads every shop for boot-time restore
	ListShops(ctx context.Context) ([]domain.Shop, error)

	// ListCapabilities loads every capability for boot-time restore
	ListCapabilities(ctx context.Context) ([]domain.OwnerCap, error)
}
