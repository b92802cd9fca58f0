package storage

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/hqv2016/shop-ledger/internal/core/domain"
)

func getMySQLDB(t *testing.T) *sql.DB {
	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "root:root@tcp(localhost:3306)/shopledger?parseTime=true"
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("MySQL not available: %v", err)
	}

	return db
}

func testShopID() string {
	return "test-shop-" + time.Now().Format("20060102150405.000000000")
}

func TestSaveShop_Roundtrip(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	shopID := testShopID()
	shop := domain.Shop{
		ID:          shopID,
		OwnerCapID:  "test-cap-1",
		Balance:     12_345,
		ItemCounter: 2,
		Items: []domain.Item{
			{ID: 0, Title: "NES Console", Description: "classic", URL: "https://example.com/nes",
				Price: 1_000, Category: domain.CategoryGeneral, TotalSupply: 34, Available: 30, Listed: true},
			{ID: 1, Title: "Game Cartridge", Price: 500,
				Category: domain.CategoryCollectible, TotalSupply: 10, Available: 0, Listed: false},
		},
	}

	if err := adapter.SaveShop(ctx, shop); err != nil {
		t.Fatalf("SaveShop failed: %v", err)
	}

	got, err := adapter.GetShop(ctx, shopID)
	if err != nil {
		t.Fatalf("GetShop failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected shop, got nil")
	}

	if got.Balance != 12_345 || got.ItemCounter != 2 || got.OwnerCapID != "test-cap-1" {
		t.Errorf("bad shop row: %+v", got)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	if got.Items[0].Title != "NES Console" || got.Items[0].Available != 30 || !got.Items[0].Listed {
		t.Errorf("bad item 0: %+v", got.Items[0])
	}
	if got.Items[1].Category != domain.CategoryCollectible || got.Items[1].Listed {
		t.Errorf("bad item 1: %+v", got.Items[1])
	}

	// Cleanup
	db.ExecContext(ctx, `DELETE FROM shop_items WHERE shop_id = ?`, shopID)
	db.ExecContext(ctx, `DELETE FROM shops WHERE id = ?`, shopID)
}

func TestSaveShop_Upsert(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	shopID := testShopID()
	shop := domain.Shop{
		ID:          shopID,
		OwnerCapID:  "test-cap-2",
		Balance:     0,
		ItemCounter: 1,
		Items: []domain.Item{
			{ID: 0, Title: "Vinyl Record", Price: 2_000, Category: domain.CategoryGeneral,
				TotalSupply: 5, Available: 5, Listed: true},
		},
	}
	if err := adapter.SaveShop(ctx, shop); err != nil {
		t.Fatalf("first SaveShop failed: %v", err)
	}

	// Second write with updated balance and depleted item
	shop.Balance = 10_000
	shop.Items[0].Available = 0
	shop.Items[0].Listed = false
	if err := adapter.SaveShop(ctx, shop); err != nil {
		t.Fatalf("second SaveShop failed: %v", err)
	}

	got, err := adapter.GetShop(ctx, shopID)
	if err != nil {
		t.Fatalf("GetShop failed: %v", err)
	}
	if got.Balance != 10_000 {
		t.Errorf("expected balance 10000, got %d", got.Balance)
	}
	if got.Items[0].Available != 0 || got.Items[0].Listed {
		t.Errorf("upsert did not update item: %+v", got.Items[0])
	}

	db.ExecContext(ctx, `DELETE FROM shop_items WHERE shop_id = ?`, shopID)
	db.ExecContext(ctx, `DELETE FROM shops WHERE id = ?`, shopID)
}

func TestGetShop_NotFound(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	got, err := adapter.GetShop(ctx, "nonexistent-shop")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("expected nil for nonexistent shop")
	}
}

func TestSaveCapability_Idempotent(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	capID := "test-cap-" + time.Now().Format("20060102150405.000000000")
	cred := domain.OwnerCap{ID: capID, ShopID: "test-shop-x"}

	if err := adapter.SaveCapability(ctx, cred); err != nil {
		t.Fatalf("SaveCapability failed: %v", err)
	}
	if err := adapter.SaveCapability(ctx, cred); err != nil {
		t.Fatalf("second SaveCapability failed: %v", err)
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM capabilities WHERE id = ?`, capID).Scan(&count)
	if count != 1 {
		t.Errorf("expected 1 capability row, got %d", count)
	}

	caps, err := adapter.ListCapabilities(ctx)
	if err != nil {
		t.Fatalf("ListCapabilities failed: %v", err)
	}
	found := false
	for _, c := range caps {
		if c.ID == capID && c.ShopID == "test-shop-x" {
			found = true
		}
	}
	if !found {
		t.Error("saved capability not listed")
	}

	db.ExecContext(ctx, `DELETE FROM capabilities WHERE id = ?`, capID)
}

func TestSaveReceipts(t *testing.T) {
	db := getMySQLDB(t)
	defer db.Close()

	ctx := context.Background()
	adapter := NewMySQLAdapter(db)

	if err := adapter.EnsureSchema(ctx); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	stamp := time.Now().Format("20060102150405.000000000")
	receipts := []domain.Receipt{
		{ID: "test-receipt-a-" + stamp, ShopID: "test-shop-y", ItemID: 0, Owner: "alice"},
		{ID: "test-receipt-b-" + stamp, ShopID: "test-shop-y", ItemID: 0, Owner: "alice"},
		{ID: "test-receipt-c-" + stamp, ShopID: "test-shop-y", ItemID: 1, Owner: "bob"},
	}

	if err := adapter.SaveReceipts(ctx, receipts); err != nil {
		t.Fatalf("SaveReceipts failed: %v", err)
	}

	var count int
	db.QueryRowContext(ctx, `SELECT COUNT(*) FROM receipts WHERE id LIKE ?`, "test-receipt-%-"+stamp).Scan(&count)
	if count != 3 {
		t.Errorf("expected 3 receipt rows, got %d", count)
	}

	// Empty slice is a no-op
	if err := adapter.SaveReceipts(ctx, nil); err != nil {
		t.Errorf("empty SaveReceipts failed: %v", err)
	}

	db.ExecContext(ctx, `DELETE FROM receipts WHERE id LIKE ?`, "test-receipt-%-"+stamp)
}
