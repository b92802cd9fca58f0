package handler

import (
	"context"
	"errors"

	"github.com/hqv2016/shop-ledger/internal/adapter/handler/pb"
	"github.com/hqv2016/shop-ledger/internal/core/domain"
	"github.com/hqv2016/shop-ledger/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedShopLedgerServer
	shops *service.ShopService
}

func NewGRPCHandler(shops *service.ShopService) *GRPCHandler {
	return &GRPCHandler{shops: shops}
}

func (h *GRPCHandler) CreateShop(ctx context.Context, req *pb.CreateShopRequest) (*pb.CreateShopResponse, error) {
	shopID, capID, err := h.shops.CreateShop(ctx)
	if err != nil {
		return &pb.CreateShopResponse{Success: false, Message: errorMessage(err)}, nil
	}

	return &pb.CreateShopResponse{
		Success:      true,
		Message:      "shop created",
		ShopId:       shopID,
		CapabilityId: capID,
	}, nil
}

func (h *GRPCHandler) AddItem(ctx context.Context, req *pb.AddItemRequest) (*pb.AddItemResponse, error) {
	itemID, err := h.shops.AddItem(ctx, req.GetShopId(), req.GetCapabilityId(),
		req.GetTitle(), req.GetDescription(), req.GetUrl(),
		req.GetPrice(), int(req.GetSupply()), domain.Category(req.GetCategory()))
	if err != nil {
		return &pb.AddItemResponse{Success: false, Message: errorMessage(err)}, nil
	}

	return &pb.AddItemResponse{
		Success: true,
		Message: "item added",
		ItemId:  int32(itemID),
	}, nil
}

func (h *GRPCHandler) UnlistItem(ctx context.Context, req *pb.UnlistItemRequest) (*pb.UnlistItemResponse, error) {
	err := h.shops.UnlistItem(ctx, req.GetShopId(), req.GetCapabilityId(), int(req.GetItemId()))
	if err != nil {
		return &pb.UnlistItemResponse{Success: false, Message: errorMessage(err)}, nil
	}

	return &pb.UnlistItemResponse{Success: true, Message: "item unlisted"}, nil
}

func (h *GRPCHandler) PurchaseItem(ctx context.Context, req *pb.PurchaseItemRequest) (*pb.PurchaseItemResponse, error) {
	payment := domain.NewPayment(req.GetPayment())
	receipts, err := h.shops.PurchaseItem(ctx, req.GetShopId(), int(req.GetItemId()),
		int(req.GetQuantity()), req.GetBuyer(), payment)
	if err != nil {
		return &pb.PurchaseItemResponse{Success: false, Message: errorMessage(err)}, nil
	}

	ids := make([]string, 0, len(receipts))
	for _, r := range receipts {
		ids = append(ids, r.ID)
	}

	return &pb.PurchaseItemResponse{
		Success:    true,
		Message:    "purchase completed",
		ReceiptIds: ids,
		Change:     payment.Value(),
	}, nil
}

func (h *GRPCHandler) Withdraw(ctx context.Context, req *pb.WithdrawRequest) (*pb.WithdrawResponse, error) {
	payout, err := h.shops.Withdraw(ctx, req.GetShopId(), req.GetCapabilityId(),
		req.GetAmount(), req.GetRecipient())
	if err != nil {
		return &pb.WithdrawResponse{Success: false, Message: errorMessage(err)}, nil
	}

	return &pb.WithdrawResponse{
		Success: true,
		Message: "withdrawal completed",
		Amount:  payout.Value(),
	}, nil
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrShopNotFound):
		return "shop not found"
	case errors.Is(err, domain.ErrNotShopOwner):
		return "not shop owner"
	case errors.Is(err, domain.ErrInvalidItemID):
		return "invalid item id"
	case errors.Is(err, domain.ErrItemNotListed):
		return "item not listed"
	case errors.Is(err, domain.ErrInvalidQuantity):
		return "invalid quantity"
	case errors.Is(err, domain.ErrInsufficientPayment):
		return "insufficient payment"
	case errors.Is(err, domain.ErrInvalidPrice):
		return "invalid price"
	case errors.Is(err, domain.ErrInvalidSupply):
		return "invalid supply"
	case errors.Is(err, domain.ErrInvalidWithdrawalAmount):
		return "invalid withdrawal amount"
	case errors.Is(err, domain.ErrAmountOverflow):
		return "amount overflow"
	default:
		return "internal error"
	}
}
