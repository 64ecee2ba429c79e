package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petbhai-backend/internal/catalog"
	"petbhai-backend/internal/domain"
	"petbhai-backend/internal/service"
)

type ProductHandler struct {
	catalog *service.CatalogService
}

func NewProductHandler(catalog *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List serves the shop page: ?q=, ?category=, ?brand=, ?sort= flow
// straight into the filter pipeline.
func (h *ProductHandler) List(c *gin.Context) {
	params := catalog.Params{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Sort:     catalog.SortOption(c.DefaultQuery("sort", string(catalog.SortDefault))),
	}

	products, err := h.catalog.List(c.Request.Context(), params)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	product, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		bindError(c, err)
		return
	}

	if err := h.catalog.Add(c.Request.Context(), &product); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}

type reviewRequest struct {
	Author  string  `json:"author" binding:"required"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

func (h *ProductHandler) AddReview(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid product id"})
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	product, err := h.catalog.AddReview(c.Request.Context(), id, req.Author, req.Rating, req.Comment)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, product)
}
