package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hqv2016/shop-ledger/internal/adapter/storage"
	"github.com/hqv2016/shop-ledger/internal/core/domain"
	"github.com/hqv2016/shop-ledger/internal/core/service"
)

const (
	redisAddr     = "localhost:6379"
	initialSupply = 20
	totalBuyers   = 50
	itemPrice     = 1_000_000
	queueSize     = 100
)

func main() {
	ctx := context.Background()

	// Initialize Redis for the event stream
	rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	defer rdb.Close()

	sink := storage.NewRedisSink(rdb, "shop-events-stress")
	rdb.Del(ctx, sink.Stream())

	shopService := service.NewShopService(sink, queueSize)
	defer shopService.Close()

	// Drain the persistence queue in background
	go func() {
		for range shopService.Jobs() {
		}
	}()

	shopID, capID, err := shopService.CreateShop(ctx)
	if err != nil {
		log.Fatalf("failed to create shop: %v", err)
	}

	itemID, err := shopService.AddItem(ctx, shopID, capID,
		"limited drop", "stress test item", "https://example.com/drop",
		itemPrice, initialSupply, domain.CategoryGeneral)
	if err != nil {
		log.Fatalf("failed to add item: %v", err)
	}

	// Counters
	var successCount atomic.Int32
	var failCount atomic.Int32

	// Spawn concurrent buyers
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < totalBuyers; i++ {
		wg.Add(1)
		go func(buyerID int) {
			defer wg.Done()

			payment := domain.NewPayment(itemPrice)
			_, err := shopService.PurchaseItem(ctx, shopID, itemID, 1,
				fmt.Sprintf("buyer-%d", buyerID), payment)
			if err == nil {
				successCount.Add(1)
			} else {
				failCount.Add(1)
			}
		}(i)
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Results
	success := successCount.Load()
	fail := failCount.Load()

	shop, err := shopService.Shop(shopID)
	if err != nil {
		log.Fatalf("failed to read shop: %v", err)
	}
	item := shop.Items[itemID]

	fmt.Println("========== STRESS TEST RESULTS ==========")
	fmt.Printf("Initial Supply:   %d\n", initialSupply)
	fmt.Printf("Total Buyers:     %d\n", totalBuyers)
	fmt.Printf("Successful:       %d\n", success)
	fmt.Printf("Failed:           %d\n", fail)
	fmt.Printf("Duration:         %v\n", elapsed)
	fmt.Println("==========================================")

	if success == int32(initialSupply) && fail == int32(totalBuyers-initialSupply) {
		fmt.Printf("PASS: Exactly %d purchases succeeded, %d failed\n", initialSupply, totalBuyers-initialSupply)
	} else {
		fmt.Printf("FAIL: Expected %d success/%d fail, got %d/%d\n",
			initialSupply, totalBuyers-initialSupply, success, fail)
	}

	if item.Available == 0 && !item.Listed {
		fmt.Println("PASS: Supply depleted and item delisted")
	} else {
		fmt.Printf("FAIL: Expected available 0 unlisted, got available %d listed %v\n", item.Available, item.Listed)
	}

	wantBalance := uint64(itemPrice) * uint64(initialSupply)
	if shop.Balance == wantBalance {
		fmt.Printf("PASS: Shop balance is exactly %d\n", wantBalance)
	} else {
		fmt.Printf("FAIL: Expected balance %d, got %d\n", wantBalance, shop.Balance)
	}

	streamLen, _ := rdb.XLen(ctx, sink.Stream()).Result()
	fmt.Printf("Events in stream:  %d\n", streamLen)
}
