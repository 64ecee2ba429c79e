package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"petbhai-backend/internal/repository"
)

// ContentHandler serves the read-only informational collections. The
// four follow the same list/detail shape.
type ContentHandler struct {
	vets     repository.VetRepository
	animals  repository.AnimalRepository
	brands   repository.BrandRepository
	articles repository.ArticleRepository
}

func NewContentHandler(
	vets repository.VetRepository,
	animals repository.AnimalRepository,
	brands repository.BrandRepository,
	articles repository.ArticleRepository,
) *ContentHandler {
	return &ContentHandler{vets: vets, animals: animals, brands: brands, articles: articles}
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return 0, false
	}
	return id, true
}

func (h *ContentHandler) ListVets(c *gin.Context) {
	vets, err := h.vets.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vets)
}

func (h *ContentHandler) GetVet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	vet, err := h.vets.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, vet)
}

func (h *ContentHandler) ListAnimals(c *gin.Context) {
	animals, err := h.animals.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, animals)
}

func (h *ContentHandler) GetAnimal(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	animal, err := h.animals.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, animal)
}

func (h *ContentHandler) ListBrands(c *gin.Context) {
	brands, err := h.brands.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h *ContentHandler) GetBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	brand, err := h.brands.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

func (h *ContentHandler) ListArticles(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, articles)
}

func (h *ContentHandler) GetArticle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, article)
}
