package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/hqv2016/shop-ledger/internal/core/domain"
	"github.com/hqv2016/shop-ledger/internal/port"
)

var ErrShopNotFound = errors.New("shop not found")

// PersistJob is the write-through snapshot enqueued after every successful
// mutation. Workers drain these into durable storage; the in-memory registry
// stays authoritative, so a failed write is logged downstream rather than
// rolled back.
type PersistJob struct {
	Shop       domain.Shop
	Capability *domain.OwnerCap
	Receipts   []domain.Receipt
}

type shopEntry struct {
	mu   sync.Mutex // serializes all operations against this shop
	shop *domain.Shop
}

// ShopService hosts the shop aggregates: it holds the registry, serializes
// concurrent callers per shop, mints identities, publishes events, and
// enqueues persistence jobs. The aggregate operations themselves live in
// domain and are pure.
type ShopService struct {
	mu    sync.RWMutex
	shops map[string]*shopEntry
	caps  map[string]domain.OwnerCap

	sink  port.EventSink
	queue chan PersistJob
}

func NewShopService(sink port.EventSink, queueSize int) *ShopService {
	return &ShopService{
		shops: make(map[string]*shopEntry),
		caps:  make(map[string]domain.OwnerCap),
		sink:  sink,
		queue: make(chan PersistJob, queueSize),
	}
}

// CreateShop allocates an empty shop and its owner capability. The returned
// capability id is the credential for every privileged operation; handing it
// to the caller is the transfer. Creation has no failure conditions.
func (s *ShopService) CreateShop(ctx context.Context) (shopID, capID string, err error) {
	shopID = uuid.NewString()
	capID = uuid.NewString()
	shop := domain.NewShop(shopID, capID)
	ownerCap := domain.OwnerCap{ID: capID, ShopID: shopID}

	s.mu.Lock()
	s.shops[shopID] = &shopEntry{shop: shop}
	s.caps[capID] = ownerCap
	s.mu.Unlock()

	s.publish(ctx, domain.ShopCreated{ShopID: shopID, CapabilityID: capID})
	s.enqueue(PersistJob{Shop: shop.Clone(), Capability: &ownerCap})
	return shopID, capID, nil
}

func (s *ShopService) AddItem(ctx context.Context, shopID, capID, title, description, url string, price uint64, supply int, category domain.Category) (int, error) {
	e, err := s.entryFor(shopID)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := s.authorize(capID, e.shop); err != nil {
		return 0, err
	}
	item, err := e.shop.AddItem(title, description, url, price, supply, category)
	if err != nil {
		return 0, err
	}

	s.publish(ctx, domain.ItemAdded{ShopID: shopID, ItemID: item.ID})
	s.enqueue(PersistJob{Shop: e.shop.Clone()})
	return item.ID, nil
}

func (s *ShopService) UnlistItem(ctx context.Context, shopID, capID string, itemID int) error {
	e, err := s.entryFor(shopID)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := s.authorize(capID, e.shop); err != nil {
		return err
	}
	if err := e.shop.UnlistItem(itemID); err != nil {
		return err
	}

	s.publish(ctx, domain.ItemUnlisted{ShopID: shopID, ItemID: itemID})
	s.enqueue(PersistJob{Shop: e.shop.Clone()})
	return nil
}

// PurchaseItem needs no capability. On success it mints one receipt per unit
// bought, all owned by buyer, and emits the aggregate purchase event followed
// by an unlist event iff this purchase exhausted the supply. On any failure
// the shop and the payment are unchanged.
func (s *ShopService) PurchaseItem(ctx context.Context, shopID string, itemID, quantity int, buyer string, payment *domain.Payment) ([]domain.Receipt, error) {
	e, err := s.entryFor(shopID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	delisted, err := e.shop.PurchaseItem(itemID, quantity, payment)
	if err != nil {
		return nil, err
	}

	receipts := make([]domain.Receipt, 0, quantity)
	for i := 0; i < quantity; i++ {
		receipts = append(receipts, domain.Receipt{
			ID:     uuid.NewString(),
			ShopID: shopID,
			ItemID: itemID,
			Owner:  buyer,
		})
	}

	s.publish(ctx, domain.ItemPurchased{ShopID: shopID, ItemID: itemID, Quantity: quantity, Buyer: buyer})
	if delisted {
		s.publish(ctx, domain.ItemUnlisted{ShopID: shopID, ItemID: itemID})
	}
	s.enqueue(PersistJob{Shop: e.shop.Clone(), Receipts: receipts})
	return receipts, nil
}

func (s *ShopService) Withdraw(ctx context.Context, shopID, capID string, amount uint64, recipient string) (*domain.Payment, error) {
	e, err := s.entryFor(shopID)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := s.authorize(capID, e.shop); err != nil {
		return nil, err
	}
	payout, err := e.shop.Withdraw(amount)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, domain.ShopWithdrawal{ShopID: shopID, Amount: amount, Recipient: recipient})
	s.enqueue(PersistJob{Shop: e.shop.Clone()})
	return payout, nil
}

// Shop returns a deep-copied snapshot for read-only surfaces.
func (s *ShopService) Shop(shopID string) (domain.Shop, error) {
	e, err := s.entryFor(shopID)
	if err != nil {
		return domain.Shop{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.shop.Clone(), nil
}

// Restore reloads the registry from durable records at boot. It replaces
// matching entries wholesale and enqueues nothing.
func (s *ShopService) Restore(shops []domain.Shop, caps []domain.OwnerCap) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sh := range shops {
		cp := sh.Clone()
		s.shops[sh.ID] = &shopEntry{shop: &cp}
	}
	for _, c := range caps {
		s.caps[c.ID] = c
	}
}

func (s *ShopService) Jobs() <-chan PersistJob {
	return s.queue
}

func (s *ShopService) Close() {
	close(s.queue)
}

func (s *ShopService) entryFor(shopID string) (*shopEntry, error) {
	s.mu.RLock()
	e, ok := s.shops[shopID]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrShopNotFound
	}
	return e, nil
}

// authorize runs before any mutation; an unknown capability and a capability
// bound to a different shop fail the same way.
func (s *ShopService) authorize(capID string, shop *domain.Shop) error {
	s.mu.RLock()
	c, ok := s.caps[capID]
	s.mu.RUnlock()
	if !ok || !c.Authorizes(shop) {
		return domain.ErrNotShopOwner
	}
	return nil
}

// publish is fire-and-forget: a sink failure is logged and never aborts the
// already-committed mutation.
func (s *ShopService) publish(ctx context.Context, ev domain.Event) {
	if s.sink == nil {
		return
	}
	if err := s.sink.Publish(ctx, ev); err != nil {
		log.Printf("event sink: publish %s failed: %v", ev.Type(), err)
	}
}

func (s *ShopService) enqueue(job PersistJob) {
	s.queue <- job
}
