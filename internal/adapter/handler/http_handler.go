package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hqv2016/shop-ledger/internal/core/domain"
	"github.com/hqv2016/shop-ledger/internal/core/service"
)

type HTTPHandler struct {
	shops *service.ShopService
}

func NewHTTPHandler(shops *service.ShopService) *HTTPHandler {
	return &HTTPHandler{shops: shops}
}

type createShopHTTPResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message,omitempty"`
	ShopID       string `json:"shop_id,omitempty"`
	CapabilityID string `json:"capability_id,omitempty"`
}

type addItemHTTPRequest struct {
	ShopID       string `json:"shop_id"`
	CapabilityID string `json:"capability_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	Price        uint64 `json:"price"`
	Supply       int    `json:"supply"`
	Category     string `json:"category"`
}

type addItemHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	ItemID  int    `json:"item_id"`
}

type unlistItemHTTPRequest struct {
	ShopID       string `json:"shop_id"`
	CapabilityID string `json:"capability_id"`
	ItemID       int    `json:"item_id"`
}

type purchaseHTTPRequest struct {
	ShopID   string `json:"shop_id"`
	ItemID   int    `json:"item_id"`
	Quantity int    `json:"quantity"`
	Buyer    string `json:"buyer"`
	Payment  uint64 `json:"payment"`
}

type purchaseHTTPResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message,omitempty"`
	ReceiptIDs []string `json:"receipt_ids,omitempty"`
	Change     uint64   `json:"change"`
}

type withdrawHTTPRequest struct {
	ShopID       string `json:"shop_id"`
	CapabilityID string `json:"capability_id"`
	Amount       uint64 `json:"amount"`
	Recipient    string `json:"recipient"`
}

type withdrawHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Amount  uint64 `json:"amount"`
}

type statusHTTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type itemView struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Price       uint64 `json:"price"`
	Category    string `json:"category"`
	TotalSupply int    `json:"total_supply"`
	Available   int    `json:"available"`
	Listed      bool   `json:"listed"`
}

type shopView struct {
	ID          string     `json:"id"`
	Balance     uint64     `json:"balance"`
	ItemCounter int        `json:"item_counter"`
	Items       []itemView `json:"items"`
}

func (h *HTTPHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	shopID, capID, err := h.shops.CreateShop(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, createShopHTTPResponse{Success: false, Message: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, createShopHTTPResponse{
		Success:      true,
		ShopID:       shopID,
		CapabilityID: capID,
	})
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req addItemHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.ShopID == "" || req.CapabilityID == "" || req.Title == "" {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	itemID, err := h.shops.AddItem(r.Context(), req.ShopID, req.CapabilityID,
		req.Title, req.Description, req.URL, req.Price, req.Supply, domain.Category(req.Category))
	if err != nil {
		writeJSON(w, statusFor(err), statusHTTPResponse{Success: false, Message: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, addItemHTTPResponse{Success: true, ItemID: itemID})
}

func (h *HTTPHandler) UnlistItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req unlistItemHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.ShopID == "" || req.CapabilityID == "" {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	if err := h.shops.UnlistItem(r.Context(), req.ShopID, req.CapabilityID, req.ItemID); err != nil {
		writeJSON(w, statusFor(err), statusHTTPResponse{Success: false, Message: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, statusHTTPResponse{Success: true, Message: "item unlisted"})
}

func (h *HTTPHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req purchaseHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.ShopID == "" || req.Buyer == "" {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	payment := domain.NewPayment(req.Payment)
	receipts, err := h.shops.PurchaseItem(r.Context(), req.ShopID, req.ItemID, req.Quantity, req.Buyer, payment)
	if err != nil {
		writeJSON(w, statusFor(err), statusHTTPResponse{Success: false, Message: errorMessage(err)})
		return
	}

	ids := make([]string, 0, len(receipts))
	for _, rc := range receipts {
		ids = append(ids, rc.ID)
	}

	writeJSON(w, http.StatusOK, purchaseHTTPResponse{
		Success:    true,
		ReceiptIDs: ids,
		Change:     payment.Value(),
	})
}

func (h *HTTPHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req withdrawHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "invalid request body"})
		return
	}
	if req.ShopID == "" || req.CapabilityID == "" {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "missing required fields"})
		return
	}

	payout, err := h.shops.Withdraw(r.Context(), req.ShopID, req.CapabilityID, req.Amount, req.Recipient)
	if err != nil {
		writeJSON(w, statusFor(err), statusHTTPResponse{Success: false, Message: errorMessage(err)})
		return
	}

	writeJSON(w, http.StatusOK, withdrawHTTPResponse{Success: true, Amount: payout.Value()})
}

// GetShop returns a read-only snapshot of one shop.
func (h *HTTPHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, statusHTTPResponse{Success: false, Message: "missing shop id"})
		return
	}

	shop, err := h.shops.Shop(id)
	if err != nil {
		writeJSON(w, statusFor(err), statusHTTPResponse{Success: false, Message: errorMessage(err)})
		return
	}

	view := shopView{
		ID:          shop.ID,
		Balance:     shop.Balance,
		ItemCounter: shop.ItemCounter,
		Items:       make([]itemView, 0, len(shop.Items)),
	}
	for _, it := range shop.Items {
		view.Items = append(view.Items, itemView{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			URL:         it.URL,
			Price:       it.Price,
			Category:    string(it.Category),
			TotalSupply: it.TotalSupply,
			Available:   it.Available,
			Listed:      it.Listed,
		})
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrShopNotFound), errors.Is(err, domain.ErrInvalidItemID):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNotShopOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrItemNotListed):
		return http.StatusGone
	case errors.Is(err, domain.ErrInsufficientPayment):
		return http.StatusPaymentRequired
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidSupply),
		errors.Is(err, domain.ErrInvalidWithdrawalAmount),
		errors.Is(err, domain.ErrAmountOverflow):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
