package handler

import "net/http"

// NewRouter registers the REST routes and wraps them with request-ID and
// logging middleware.
func NewRouter(app *App) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", app.healthHandler)

	mux.HandleFunc("POST /api/auth/register", app.registerHandler)
	mux.HandleFunc("POST /api/auth/login", app.loginHandler)

	mux.HandleFunc("GET /api/products", app.listProductsHandler)
	mux.HandleFunc("GET /api/products/{id}", app.getProductHandler)
	mux.HandleFunc("POST /api/products", app.requireAdmin(app.createProductHandler))
	mux.HandleFunc("PUT /api/products/{id}", app.requireAdmin(app.updateProductHandler))
	mux.HandleFunc("DELETE /api/products/{id}", app.requireAdmin(app.deleteProductHandler))
	mux.HandleFunc("PUT /api/products/{id}/stock", app.requireAdmin(app.setStockHandler))

	mux.HandleFunc("POST /api/orders", app.requireUser(app.createOrderHandler))
	mux.HandleFunc("GET /api/orders/user/{userId}", app.requireUser(app.listUserOrdersHandler))
	mux.HandleFunc("GET /api/orders/admin/all", app.requireAdmin(app.listAllOrdersHandler))
	mux.HandleFunc("GET /api/orders/{id}", app.requireUser(app.getOrderHandler))
	mux.HandleFunc("PUT /api/orders/{id}/cancel", app.requireUser(app.cancelOrderHandler))
	mux.HandleFunc("PUT /api/orders/{id}/status", app.requireAdmin(app.updateOrderStatusHandler))

	mux.HandleFunc("GET /api/addresses", app.requireUser(app.listAddressesHandler))
	mux.HandleFunc("POST /api/addresses", app.requireUser(app.addAddressHandler))
	mux.HandleFunc("PUT /api/addresses/{id}", app.requireUser(app.updateAddressHandler))
	mux.HandleFunc("DELETE /api/addresses/{id}", app.requireUser(app.deleteAddressHandler))
	mux.HandleFunc("PUT /api/addresses/{id}/default", app.requireUser(app.setDefaultAddressHandler))

	mux.HandleFunc("GET /api/wishlist", app.requireUser(app.getWishlistHandler))
	mux.HandleFunc("POST /api/wishlist", app.requireUser(app.addToWishlistHandler))
	mux.HandleFunc("DELETE /api/wishlist/{productId}", app.requireUser(app.removeFromWishlistHandler))

	mux.HandleFunc("POST /api/reviews", app.requireUser(app.createReviewHandler))
	mux.HandleFunc("GET /api/reviews/product/{productId}", app.listReviewsHandler)

	return withRequestID(withLogging(mux))
}
