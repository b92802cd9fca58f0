package main

import (
	"context"
	"database/sql"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"

	"github.com/hqv2016/shop-ledger/internal/adapter/handler"
	"github.com/hqv2016/shop-ledger/internal/adapter/handler/pb"
	"github.com/hqv2016/shop-ledger/internal/adapter/storage"
	"github.com/hqv2016/shop-ledger/internal/config"
	"github.com/hqv2016/shop-ledger/internal/core/service"
	"github.com/hqv2016/shop-ledger/internal/port"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize MySQL
	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("failed to connect mysql: %v", err)
	}
	db.SetMaxOpenConns(50)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping mysql: %v", err)
	}
	log.Println("connected to mysql")

	// Initialize Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		PoolSize: 100,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	log.Println("connected to redis")

	// Initialize adapters
	store := storage.NewMySQLAdapter(db)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatalf("failed to ensure schema: %v", err)
	}
	sink := storage.NewRedisSink(rdb, cfg.EventStream)

	// Initialize service and restore state from durable records
	shopService := service.NewShopService(sink, cfg.QueueSize)

	shops, err := store.ListShops(ctx)
	if err != nil {
		log.Fatalf("failed to load shops: %v", err)
	}
	caps, err := store.ListCapabilities(ctx)
	if err != nil {
		log.Fatalf("failed to load capabilities: %v", err)
	}
	shopService.Restore(shops, caps)
	log.Printf("restored %d shops, %d capabilities", len(shops), len(caps))

	// Start persistence worker pool
	var wg sync.WaitGroup
	for i := 0; i < cfg.WorkerCount; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerLoop(id, shopService.Jobs(), store)
		}(i)
	}
	log.Printf("started %d workers", cfg.WorkerCount)

	// Initialize gRPC server
	grpcServer := grpc.NewServer()
	grpcHandler := handler.NewGRPCHandler(shopService)
	pb.RegisterShopLedgerServer(grpcServer, grpcHandler)

	// Start gRPC server
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}

	go func() {
		log.Printf("gRPC server listening on :%s", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// Initialize HTTP server
	httpHandler := handler.NewHTTPHandler(shopService)
	mux := http.NewServeMux()
	mux.HandleFunc("/health", httpHandler.HealthCheck)
	mux.HandleFunc("/api/shop/create", httpHandler.CreateShop)
	mux.HandleFunc("/api/shop", httpHandler.GetShop)
	mux.HandleFunc("/api/item/add", httpHandler.AddItem)
	mux.HandleFunc("/api/item/unlist", httpHandler.UnlistItem)
	mux.HandleFunc("/api/purchase", httpHandler.Purchase)
	mux.HandleFunc("/api/withdraw", httpHandler.Withdraw)

	httpServer := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: mux,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	// Stop HTTP server
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	httpServer.Shutdown(shutdownCtx)
	log.Println("HTTP server stopped")

	// Stop gRPC server
	grpcServer.GracefulStop()
	log.Println("gRPC server stopped")

	// Close persistence queue and wait for workers
	shopService.Close()
	wg.Wait()
	log.Println("workers stopped")

	// Close connections
	rdb.Close()
	db.Close()
	log.Println("connections closed")
}

func workerLoop(id int, jobs <-chan service.PersistJob, store port.ShopStore) {
	for job := range jobs {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

		if err := store.SaveShop(ctx, job.Shop); err != nil {
			log.Printf("worker %d: failed to save shop %s: %v", id, job.Shop.ID, err)
		}
		if job.Capability != nil {
			if err := store.SaveCapability(ctx, *job.Capability); err != nil {
				log.Printf("worker %d: failed to save capability %s: %v", id, job.Capability.ID, err)
			}
		}
		if len(job.Receipts) > 0 {
			if err := store.SaveReceipts(ctx, job.Receipts); err != nil {
				log.Printf("worker %d: failed to save receipts for shop %s: %v", id, job.Shop.ID, err)
			}
		}

		cancel()
	}
}
