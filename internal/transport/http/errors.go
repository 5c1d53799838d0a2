package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogdomain "github.com/light-bringer/ecom-backoffice/internal/app/catalog/domain"
	salesdomain "github.com/light-bringer/ecom-backoffice/internal/app/sales/domain"
	"github.com/light-bringer/ecom-backoffice/internal/pkg/committer"
)

// respondError maps domain errors to HTTP status codes and writes a JSON
// error body. Unrecognized errors are logged and returned as a generic
// 500 so internals never leak to clients.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound),
		errors.Is(err, catalogdomain.ErrCategoryNotFound),
		errors.Is(err, salesdomain.ErrSaleNotFound),
		// A product that is missing, deleted, or inactive cannot be sold;
		// the request names something that does not exist for sale purposes.
		errors.Is(err, salesdomain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, salesdomain.ErrInsufficientStock),
		errors.Is(err, salesdomain.ErrStorageConflict),
		errors.Is(err, committer.ErrVersionConflict),
		errors.Is(err, catalogdomain.ErrAlreadyDeleted),
		errors.Is(err, catalogdomain.ErrNotDeleted),
		errors.Is(err, catalogdomain.ErrCannotModifyDeleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, catalogdomain.ErrEmptyName),
		errors.Is(err, catalogdomain.ErrInvalidPrice),
		errors.Is(err, catalogdomain.ErrInvalidCategory),
		errors.Is(err, catalogdomain.ErrNegativeStock),
		errors.Is(err, salesdomain.ErrNoLineItems),
		errors.Is(err, salesdomain.ErrInvalidQuantity),
		errors.Is(err, salesdomain.ErrDuplicateProduct),
		errors.Is(err, salesdomain.ErrFutureSaleDate),
		errors.Is(err, salesdomain.ErrMissingCustomer),
		errors.Is(err, salesdomain.ErrMissingEmail),
		errors.Is(err, salesdomain.ErrMissingAddress):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		logger.Error("request failed", zap.Error(err), zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
