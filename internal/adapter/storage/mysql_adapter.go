package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hqv2016/shop-ledger/internal/core/domain"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

// EnsureSchema creates the ledger tables when missing. Safe to run on every
// startup.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS shops (
			id VARCHAR(36) PRIMARY KEY,
			owner_cap_id VARCHAR(36) NOT NULL,
			balance BIGINT UNSIGNED NOT NULL DEFAULT 0,
			item_counter INT NOT NULL DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS shop_items (
			shop_id VARCHAR(36) NOT NULL,
			item_id INT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			url TEXT,
			price BIGINT UNSIGNED NOT NULL,
			category VARCHAR(32) NOT NULL DEFAULT '',
			total_supply INT NOT NULL,
			available INT NOT NULL,
			listed TINYINT(1) NOT NULL,
			PRIMARY KEY (shop_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS capabilities (
			id VARCHAR(36) PRIMARY KEY,
			shop_id VARCHAR(36) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS receipts (
			id VARCHAR(36) PRIMARY KEY,
			shop_id VARCHAR(36) NOT NULL,
			item_id INT NOT NULL,
			owner VARCHAR(128) NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			INDEX idx_receipts_owner (owner)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (m *MySQLAdapter) SaveShop(ctx context.Context, shop domain.Shop) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO shops (id, owner_cap_id, balance, item_counter)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE balance = VALUES(balance), item_counter = VALUES(item_counter)`,
		shop.ID, shop.OwnerCapID, shop.Balance, shop.ItemCounter,
	)
	if err != nil {
		return fmt.Errorf("upsert shop: %w", err)
	}

	for _, item := range shop.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO shop_items (shop_id, item_id, title, description, url, price, category, total_supply, available, listed)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON DUPLICATE KEY UPDATE available = VALUES(available), listed = VALUES(listed)`,
			shop.ID, item.ID, item.Title, item.Description, item.URL,
			item.Price, string(item.Category), item.TotalSupply, item.Available, item.Listed,
		)
		if err != nil {
			return fmt.Errorf("upsert item %d: %w", item.ID, err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) SaveCapability(ctx context.Context, cred domain.OwnerCap) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO capabilities (id, shop_id) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE shop_id = shop_id`,
		cred.ID, cred.ShopID,
	)
	if err != nil {
		return fmt.Errorf("insert capability: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) SaveReceipts(ctx context.Context, receipts []domain.Receipt) error {
	if len(receipts) == 0 {
		return nil
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for _, r := range receipts {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO receipts (id, shop_id, item_id, owner) VALUES (?, ?, ?, ?)`,
			r.ID, r.ShopID, r.ItemID, r.Owner,
		)
		if err != nil {
			return fmt.Errorf("insert receipt %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) GetShop(ctx context.Context, shopID string) (*domain.Shop, error) {
	var shop domain.Shop
	err := m.db.QueryRowContext(ctx, `
		SELECT id, owner_cap_id, balance, item_counter
		FROM shops WHERE id = ?`, shopID,
	).Scan(&shop.ID, &shop.OwnerCapID, &shop.Balance, &shop.ItemCounter)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query shop: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT item_id, title, description, url, price, category, total_supply, available, listed
		FROM shop_items WHERE shop_id = ? ORDER BY item_id`, shopID,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.Item
		var category string
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &item.URL,
			&item.Price, &category, &item.TotalSupply, &item.Available, &item.Listed); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		item.Category = domain.Category(category)
		shop.Items = append(shop.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return &shop, nil
}

func (m *MySQLAdapter) ListShops(ctx context.Context) ([]domain.Shop, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id FROM shops`)
	if err != nil {
		return nil, fmt.Errorf("query shops: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan shop id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shops: %w", err)
	}

	shops := make([]domain.Shop, 0, len(ids))
	for _, id := range ids {
		shop, err := m.GetShop(ctx, id)
		if err != nil {
			return nil, err
		}
		if shop != nil {
			shops = append(shops, *shop)
		}
	}
	return shops, nil
}

func (m *MySQLAdapter) ListCapabilities(ctx context.Context) ([]domain.OwnerCap, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT id, shop_id FROM capabilities`)
	if err != nil {
		return nil, fmt.Errorf("query capabilities: %w", err)
	}
	defer rows.Close()

	var caps []domain.OwnerCap
	for rows.Next() {
		var c domain.OwnerCap
		if err := rows.Scan(&c.ID, &c.ShopID); err != nil {
			return nil, fmt.Errorf("scan capability: %w", err)
		}
		caps = append(caps, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate capabilities: %w", err)
	}
	return caps, nil
}
