package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/service"
)

// PurchaseHandler handles purchase history, the seller summary, and
// settlement.
type PurchaseHandler struct {
	purchases  *service.PurchaseService
	settlement *service.SettlementService
	summary    *service.SummaryService
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchases *service.PurchaseService, settlement *service.SettlementService, summary *service.SummaryService) *PurchaseHandler {
	return &PurchaseHandler{purchases: purchases, settlement: settlement, summary: summary}
}

// HandleHistory returns the authenticated buyer's purchases, newest first.
// GET /purchases/history
func (h *PurchaseHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	history, err := h.purchases.History(r.Context(), buyerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPurchaseDTOs(history))
}

// HandleSellerSummary returns the seller's unpaid purchases grouped by
// buyer with the amount each buyer owes.
// GET /purchases/seller-summary
func (h *PurchaseHandler) HandleSellerSummary(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	groups, err := h.summary.SellerSummary(r.Context(), sellerID)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toBuyerGroupDTOs(groups))
}

// HandlePay settles a single purchase. The caller must be the seller of
// the purchased product.
// POST /purchase/{id}/pay
func (h *PurchaseHandler) HandlePay(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	purchaseID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}

	if err := h.settlement.Pay(r.Context(), userID, purchaseID); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandlePayBulk settles all of one buyer's unpaid purchases from the
// authenticated seller. The count from the caller's summary view must
// still match or nothing is settled.
// POST /purchase/user/{buyerId}/pay
// Request:  {"count":N}
func (h *PurchaseHandler) HandlePayBulk(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	buyerID, err := strconv.ParseInt(r.PathValue("buyerId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid buyer id")
		return
	}

	var req struct {
		Count int64 `json:"count"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.settlement.PayBulk(r.Context(), sellerID, buyerID, req.Count); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
