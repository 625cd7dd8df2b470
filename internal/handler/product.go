package handler

import (
	"net/http"
	"strconv"

	"bazaar/internal/service"
)

// ProductHandler handles catalog listing, product creation, and purchases.
type ProductHandler struct {
	catalog   *service.CatalogService
	purchases *service.PurchaseService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *service.CatalogService, purchases *service.PurchaseService) *ProductHandler {
	return &ProductHandler{catalog: catalog, purchases: purchases}
}

// HandleList returns all products with stock remaining.
// GET /products
func (h *ProductHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.ListAvailable(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductDTOs(products))
}

// HandleInsert lists a new product for the authenticated seller.
// POST /product
// Request:  {"name":"...","description":"...","stock":N,"price":N}
func (h *ProductHandler) HandleInsert(w http.ResponseWriter, r *http.Request) {
	sellerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	var req struct {
		Name        string  `json:"name"`
		Description *string `json:"description"`
		Stock       int64   `json:"stock"`
		Price       int64   `json:"price"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	product, err := h.catalog.Insert(r.Context(), sellerID, req.Name, req.Description, req.Stock, req.Price)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toProductDTO(product))
}

// HandlePurchase buys a quantity of the product for the authenticated user.
// POST /product/{id}/purchase
// Request:  {"quantity":N}
func (h *ProductHandler) HandlePurchase(w http.ResponseWriter, r *http.Request) {
	buyerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "login required")
		return
	}

	productID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req struct {
		Quantity int64 `json:"quantity"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := h.purchases.Purchase(r.Context(), buyerID, productID, req.Quantity); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
