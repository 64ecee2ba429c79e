// Package handler exposes the HTTP surface. Handlers bind input, call
// the services or repositories, and translate errors to status codes;
// all business rules live below this layer.
package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"petbhai-backend/internal/repository"
	"petbhai-backend/internal/service"
)

// writeError maps known error values to the response taxonomy: 400
// validation, 404 missing id, 409 conflict, 500 anything unexpected.
func writeError(c *gin.Context, err error) {
	var stockErr *service.StockError

	switch {
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	case errors.As(err, &stockErr):
		c.JSON(http.StatusConflict, gin.H{
			"message": "insufficient stock",
			"details": stockErr.Details,
		})
	case errors.Is(err, service.ErrCancelNotAllowed),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, repository.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	case errors.Is(err, service.ErrCartEmpty),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidCategory):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
	}
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
}
