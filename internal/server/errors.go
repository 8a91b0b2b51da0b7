package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	itemdomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/masteritem/domain"
	scandomain "github.com/daviddvsjrgg/warehouse-system-intern-backend/internal/scan/domain"
)

// respondError maps domain errors onto the response envelope. Every
// handler funnels its failures through here so the status taxonomy
// stays in one place.
func respondError(c *gin.Context, err error) {
	var scanValidation *scandomain.ValidationError
	var itemValidation *itemdomain.ValidationError
	var conflict *scandomain.ConflictError

	switch {
	case errors.As(err, &scanValidation):
		respond(c, http.StatusUnprocessableEntity, "Validation failed.", gin.H{
			"errors": scanValidation.Fields,
		})
	case errors.As(err, &itemValidation):
		data := gin.H{"errors": itemValidation.Fields}
		message := "Validation failed."
		if len(itemValidation.ConflictingSKUs) > 0 {
			message = fmt.Sprintf("The following SKUs have already been taken: %s",
				strings.Join(itemValidation.ConflictingSKUs, ", "))
			data["conflicting_skus"] = itemValidation.ConflictingSKUs
		}
		if len(itemValidation.ConflictingBarcodes) > 0 {
			if len(itemValidation.ConflictingSKUs) == 0 {
				message = fmt.Sprintf("The following barcode serials have already been taken: %s",
					strings.Join(itemValidation.ConflictingBarcodes, ", "))
			}
			data["conflicting_barcodes"] = itemValidation.ConflictingBarcodes
		}
		respond(c, http.StatusUnprocessableEntity, message, data)
	case errors.As(err, &conflict):
		respond(c, http.StatusConflict, fmt.Sprintf(
			"One or more barcode serial numbers already exist: %s",
			strings.Join(conflict.Values, ", ")), gin.H{
			"conflicts": conflict.Values,
		})
	case errors.Is(err, scandomain.ErrLimitExceeded):
		respond(c, http.StatusBadRequest, "per_page cannot be more than 500", nil)
	case errors.Is(err, scandomain.ErrDuplicateCheckEmpty):
		respond(c, http.StatusUnprocessableEntity, "Either invoice_numbers or barcode_sns must be provided.", nil)
	case errors.Is(err, scandomain.ErrInvoiceNumberRequired):
		respond(c, http.StatusUnprocessableEntity, "invoice_number is required.", nil)
	case errors.Is(err, scandomain.ErrRenameValuesRequired):
		respond(c, http.StatusBadRequest, "Both invoice values are required.", nil)
	case errors.Is(err, scandomain.ErrRenameInProgress):
		respond(c, http.StatusConflict, "This invoice is already being renamed, try again shortly.", nil)
	case errors.Is(err, scandomain.ErrNotFound),
		errors.Is(err, itemdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		respond(c, http.StatusNotFound, "Item not found.", nil)
	default:
		respond(c, http.StatusInternalServerError,
			fmt.Sprintf("An error occurred: %s", err.Error()), nil)
	}
}
