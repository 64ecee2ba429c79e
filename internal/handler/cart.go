package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"petbhai-backend/internal/cart"
	"petbhai-backend/internal/cartstore"
	"petbhai-backend/internal/middleware"
	"petbhai-backend/internal/repository"
)

// CartHandler drives the cart state machine over a persistence store.
// The store is best-effort: a failed save is logged and the mutated
// cart is still returned, so the shopper's session keeps working even
// when persistence is down.
type CartHandler struct {
	carts    cartstore.Store
	products repository.ProductRepository
	logger   *zap.Logger
}

func NewCartHandler(carts cartstore.Store, products repository.ProductRepository, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, products: products, logger: logger}
}

type cartResponse struct {
	Items []cart.Item `json:"items"`
	Count int         `json:"count"`
	Total int         `json:"total"`
}

func toCartResponse(state cart.State) cartResponse {
	items := state.Items
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{Items: items, Count: state.Count(), Total: state.Total()}
}

func (h *CartHandler) load(c *gin.Context) cart.State {
	userID := c.GetString(middleware.ContextUserID)
	state, err := h.carts.Load(c.Request.Context(), userID)
	if err != nil {
		h.logger.Warn("cart load failed, starting empty",
			zap.String("user_id", userID), zap.Error(err))
		return cart.Empty()
	}
	return state
}

func (h *CartHandler) save(c *gin.Context, state cart.State) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.carts.Save(c.Request.Context(), userID, state); err != nil {
		h.logger.Warn("cart save failed, continuing",
			zap.String("user_id", userID), zap.Error(err))
	}
}

func (h *CartHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, toCartResponse(h.load(c)))
}

type addToCartRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.products.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, err)
		return
	}

	state := h.load(c).AddQuantity(*product, req.Quantity)
	h.save(c, state)
	c.JSON(http.StatusOK, toCartResponse(state))
}

type updateCartRequest struct {
	Quantity int `json:"quantity"`
}

// Update sets the line quantity; zero or below removes the line.
func (h *CartHandler) Update(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	state := h.load(c).SetQuantity(productID, req.Quantity)
	h.save(c, state)
	c.JSON(http.StatusOK, toCartResponse(state))
}

func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	state := h.load(c).Remove(productID)
	h.save(c, state)
	c.JSON(http.StatusOK, toCartResponse(state))
}

func (h *CartHandler) Clear(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.carts.Clear(c.Request.Context(), userID); err != nil {
		h.logger.Warn("cart clear failed, continuing",
			zap.String("user_id", userID), zap.Error(err))
	}
	c.JSON(http.StatusOK, toCartResponse(cart.Empty()))
}
