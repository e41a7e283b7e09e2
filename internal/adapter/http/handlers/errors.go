package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"liquidation_backoffice/internal/adapter/remote"
	"liquidation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID reads a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// mapTransportError surfaces failures of the upstream API with its message.
func mapTransportError(err error) (*pkg.AppError, bool) {
	var te *remote.TransportError
	if !errors.As(err, &te) {
		return nil, false
	}
	return pkg.NewDomainError("UPSTREAM_ERROR", te.Message, err, http.StatusBadGateway), true
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
