package handler

import (
	"net/http"

	"bazaar/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(
	mux *http.ServeMux,
	tokens *service.TokenService,
	auth *service.AuthService,
	catalog *service.CatalogService,
	purchases *service.PurchaseService,
	settlement *service.SettlementService,
	summary *service.SummaryService,
	cookieSecure bool,
) {
	authHandler := NewAuthHandler(auth, tokens, cookieSecure)
	productHandler := NewProductHandler(catalog, purchases)
	purchaseHandler := NewPurchaseHandler(purchases, settlement, summary)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /register", authHandler.HandleRegister)
	mux.HandleFunc("POST /login", authHandler.HandleLogin)
	mux.HandleFunc("GET /logout", authHandler.HandleLogout)
	mux.Handle("GET /user/info", RequireAuth(tokens, http.HandlerFunc(authHandler.HandleUserInfo)))

	mux.HandleFunc("GET /products", productHandler.HandleList)
	mux.Handle("POST /product", RequireAuth(tokens, http.HandlerFunc(productHandler.HandleInsert)))
	mux.Handle("POST /product/{id}/purchase", RequireAuth(tokens, http.HandlerFunc(productHandler.HandlePurchase)))

	mux.Handle("GET /purchases/history", RequireAuth(tokens, http.HandlerFunc(purchaseHandler.HandleHistory)))
	mux.Handle("GET /purchases/seller-summary", RequireAuth(tokens, http.HandlerFunc(purchaseHandler.HandleSellerSummary)))
	mux.Handle("POST /purchase/{id}/pay", RequireAuth(tokens, http.HandlerFunc(purchaseHandler.HandlePay)))
	mux.Handle("POST /purchase/user/{buyerId}/pay", RequireAuth(tokens, http.HandlerFunc(purchaseHandler.HandlePayBulk)))
}
