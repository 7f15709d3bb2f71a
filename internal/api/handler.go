package api

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"marketplace-service/internal/cart"
	"marketplace-service/internal/catalog"
	"marketplace-service/internal/checkout"
	"marketplace-service/internal/models"
	"marketplace-service/internal/notify"
	"marketplace-service/internal/store"
	"marketplace-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	catalog    *catalog.Catalog
	cart       *cart.Engine
	checkout   *checkout.Service
	sink       *notify.MemorySink
	orders     *store.OrderStore
	deliveries *store.DeliveryStore
	contracts  *store.ContractStore

	// selMu guards the active option-selection modal. Exactly one modal is
	// open at a time, in add or edit mode.
	selMu     sync.Mutex
	selection *cart.Selection
}

// NewHandler creates a new HTTP handler
func NewHandler(
	cat *catalog.Catalog,
	cartEngine *cart.Engine,
	checkoutSvc *checkout.Service,
	sink *notify.MemorySink,
	orders *store.OrderStore,
	deliveries *store.DeliveryStore,
	contracts *store.ContractStore,
) *Handler {
	return &Handler{
		catalog:    cat,
		cart:       cartEngine,
		checkout:   checkoutSvc,
		sink:       sink,
		orders:     orders,
		deliveries: deliveries,
		contracts:  contracts,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/products", h.listProducts)
		v1.GET("/products/:id", h.getProduct)
		v1.POST("/products", h.createProduct)
		v1.PUT("/products/:id", h.updateProduct)
		v1.DELETE("/products/:id", h.deleteProduct)

		v1.GET("/sellers", h.listSellers)
		v1.GET("/sellers/:id", h.getSeller)
		v1.POST("/sellers", h.registerSeller)
		v1.PUT("/sellers/:id", h.updateSeller)

		v1.GET("/provinces", h.listProvinces)

		v1.GET("/cart", h.getCart)
		v1.POST("/cart/items", h.addCartItem)
		v1.PATCH("/cart/items/:id", h.updateCartItem)
		v1.PUT("/cart/items/:id/options", h.editCartItemOptions)
		v1.DELETE("/cart/items/:id", h.removeCartItem)

		v1.POST("/selection", h.openSelection)
		v1.POST("/selection/choose", h.chooseOption)
		v1.POST("/selection/confirm", h.confirmSelection)
		v1.DELETE("/selection", h.closeSelection)

		v1.POST("/checkout", h.beginCheckout)
		v1.GET("/checkout", h.getCheckout)
		v1.POST("/checkout/shipping", h.submitShipping)
		v1.POST("/checkout/back", h.backToShipping)
		v1.POST("/checkout/confirm", h.confirmReview)
		v1.POST("/checkout/payment-method", h.selectPaymentMethod)
		v1.POST("/checkout/pay", h.submitPayment)
		v1.DELETE("/checkout", h.abandonCheckout)

		v1.GET("/orders", h.listOrders)
		v1.GET("/orders/:id", h.getOrder)

		v1.GET("/tracking/:code", h.trackDelivery)
		v1.GET("/deliveries", h.listDeliveries)
		v1.GET("/contracts", h.listContracts)

		v1.GET("/notifications", h.listNotifications)
		v1.POST("/notifications/read", h.markNotificationsRead)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

func (h *Handler) listProducts(c *gin.Context) {
	products := h.catalog.Search(c.Query("q"), c.Query("category"))
	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *Handler) getProduct(c *gin.Context) {
	product, err := h.catalog.ProductByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) createProduct(c *gin.Context) {
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.catalog.AddProduct(req))
}

func (h *Handler) updateProduct(c *gin.Context) {
	var req models.Product
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.ID = c.Param("id")
	if err := h.catalog.UpdateProduct(req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) deleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listSellers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sellers": h.catalog.Sellers()})
}

func (h *Handler) getSeller(c *gin.Context) {
	seller, err := h.catalog.SellerByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"seller":   seller,
		"products": h.catalog.ProductsBySeller(seller.ID),
	})
}

func (h *Handler) registerSeller(c *gin.Context) {
	var req models.Seller
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.catalog.RegisterSeller(req))
}

func (h *Handler) updateSeller(c *gin.Context) {
	var req models.Seller
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	req.ID = c.Param("id")
	if err := h.catalog.UpdateSellerProfile(req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

func (h *Handler) listProvinces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"provinces": catalog.Provinces})
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"lines":      h.cart.Lines(),
		"subtotal":   h.cart.Subtotal(),
		"item_count": h.cart.ItemCount(),
	})
}

type addCartItemRequest struct {
	ProductID       string                 `json:"product_id" binding:"required"`
	SelectedOptions models.OptionSelection `json:"selected_options,omitempty"`
}

// addCartItem adds a product directly. Products with options must carry a
// complete selection; selections are validated with the same contract the
// options modal uses.
func (h *Handler) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	product, err := h.catalog.ProductByID(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !product.HasOptions() {
		line, err := h.cart.AddToCart(c.Request.Context(), product, nil)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, line)
		return
	}

	sel, err := cart.NewAddSelection(product, h.sink)
	if err != nil {
		respondError(c, err)
		return
	}
	for axis, value := range req.SelectedOptions {
		if err := sel.Choose(axis, value); err != nil {
			respondError(c, err)
			return
		}
	}
	line, err := sel.Confirm(c.Request.Context(), h.cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

type updateQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *Handler) updateCartItem(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	line, err := h.cart.UpdateQuantity(c.Request.Context(), c.Param("id"), req.Delta)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

type editOptionsRequest struct {
	SelectedOptions models.OptionSelection `json:"selected_options" binding:"required"`
}

func (h *Handler) editCartItemOptions(c *gin.Context) {
	var req editOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	line, err := h.findLine(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	product, err := h.catalog.ProductByID(line.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}

	sel, err := cart.NewEditSelection(line, product, h.sink)
	if err != nil {
		respondError(c, err)
		return
	}
	for axis, value := range req.SelectedOptions {
		if err := sel.Choose(axis, value); err != nil {
			respondError(c, err)
			return
		}
	}
	updated, err := sel.Confirm(c.Request.Context(), h.cart)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	if err := h.cart.RemoveLine(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type openSelectionRequest struct {
	ProductID string `json:"product_id,omitempty"`
	LineID    string `json:"line_id,omitempty"`
}

// openSelection opens the options modal: product_id opens add mode,
// line_id opens edit mode. The two are distinct entry points.
func (h *Handler) openSelection(c *gin.Context) {
	var req openSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	var sel *cart.Selection
	switch {
	case req.LineID != "":
		line, err := h.findLine(req.LineID)
		if err != nil {
			respondError(c, err)
			return
		}
		product, err := h.catalog.ProductByID(line.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		sel, err = cart.NewEditSelection(line, product, h.sink)
		if err != nil {
			respondError(c, err)
			return
		}
	case req.ProductID != "":
		product, err := h.catalog.ProductByID(req.ProductID)
		if err != nil {
			respondError(c, err)
			return
		}
		sel, err = cart.NewAddSelection(product, h.sink)
		if err != nil {
			respondError(c, err)
			return
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id or line_id required"})
		return
	}

	h.selMu.Lock()
	h.selection = sel
	h.selMu.Unlock()

	c.JSON(http.StatusOK, gin.H{
		"chosen":   sel.Chosen(),
		"complete": sel.Complete(),
	})
}

type chooseOptionRequest struct {
	Axis  string `json:"axis" binding:"required"`
	Value string `json:"value" binding:"required"`
}

func (h *Handler) chooseOption(c *gin.Context) {
	var req chooseOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	h.selMu.Lock()
	defer h.selMu.Unlock()

	if h.selection == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no open selection"})
		return
	}
	if err := h.selection.Choose(req.Axis, req.Value); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chosen":   h.selection.Chosen(),
		"complete": h.selection.Complete(),
	})
}

func (h *Handler) confirmSelection(c *gin.Context) {
	h.selMu.Lock()
	defer h.selMu.Unlock()

	if h.selection == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no open selection"})
		return
	}
	line, err := h.selection.Confirm(c.Request.Context(), h.cart)
	if err != nil {
		respondError(c, err)
		return
	}
	h.selection = nil
	c.JSON(http.StatusOK, line)
}

func (h *Handler) closeSelection(c *gin.Context) {
	h.selMu.Lock()
	h.selection = nil
	h.selMu.Unlock()
	c.Status(http.StatusNoContent)
}

func (h *Handler) beginCheckout(c *gin.Context) {
	session := h.checkout.Begin(c.Request.Context())
	c.JSON(http.StatusCreated, session)
}

func (h *Handler) getCheckout(c *gin.Context) {
	session, err := h.checkout.Session()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":       session,
		"subtotal":      h.cart.Subtotal(),
		"shipping_cost": h.checkout.ShippingCost(),
		"total":         h.checkout.FinalTotal(),
	})
}

func (h *Handler) submitShipping(c *gin.Context) {
	var req models.ShippingInfo
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	session, err := h.checkout.SubmitShipping(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) backToShipping(c *gin.Context) {
	session, err := h.checkout.BackToShipping(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *Handler) confirmReview(c *gin.Context) {
	session, err := h.checkout.ConfirmReview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

type paymentMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

func (h *Handler) selectPaymentMethod(c *gin.Context) {
	var req paymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.checkout.SelectPaymentMethod(req.Method); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) submitPayment(c *gin.Context) {
	session, err := h.checkout.SubmitPayment(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, session)
}

func (h *Handler) abandonCheckout(c *gin.Context) {
	if err := h.checkout.Abandon(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": h.orders.All()})
}

func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.orders.ByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) trackDelivery(c *gin.Context) {
	delivery, err := h.deliveries.ByTrackingCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Código de rastreio não encontrado. Tente ex: KZ-998877",
		})
		return
	}
	c.JSON(http.StatusOK, delivery)
}

func (h *Handler) listDeliveries(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		c.JSON(http.StatusOK, gin.H{"deliveries": h.deliveries.ByStatus(status)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deliveries": h.deliveries.All()})
}

func (h *Handler) listContracts(c *gin.Context) {
	status := c.Query("status")
	if status != "" {
		c.JSON(http.StatusOK, gin.H{"contracts": h.contracts.ByStatus(status)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"contracts": h.contracts.All()})
}

func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.sink.All(),
		"unread":        h.sink.UnreadCount(),
	})
}

func (h *Handler) markNotificationsRead(c *gin.Context) {
	h.sink.MarkAllRead()
	c.Status(http.StatusNoContent)
}

func (h *Handler) findLine(lineID string) (*models.CartLine, error) {
	for _, line := range h.cart.Lines() {
		if line.LineID == lineID {
			l := line
			return &l, nil
		}
	}
	return nil, cart.ErrLineNotFound
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Invalid request body",
		"details": err.Error(),
	})
}

// respondError maps domain sentinel errors to HTTP statuses.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, cart.ErrLineNotFound),
		errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, catalog.ErrSellerNotFound),
		errors.Is(err, store.ErrOrderNotFound),
		errors.Is(err, store.ErrDeliveryNotFound),
		errors.Is(err, checkout.ErrNoSession):
		status = http.StatusNotFound
	case errors.Is(err, cart.ErrStockExceeded),
		errors.Is(err, cart.ErrOptionUnavailable),
		errors.Is(err, checkout.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, cart.ErrIncompleteSelection),
		errors.Is(err, cart.ErrUnknownOption),
		errors.Is(err, cart.ErrNoOptions),
		errors.Is(err, checkout.ErrMissingShippingField),
		errors.Is(err, checkout.ErrInvalidPaymentMethod):
		status = http.StatusUnprocessableEntity
	}

	c.JSON(status, gin.H{"error": err.Error()})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
