package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "liquidation_backoffice/internal/adapter/http/dto/request"
	response "liquidation_backoffice/internal/adapter/http/dto/response"
	"liquidation_backoffice/internal/usecase"
	"liquidation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLiquidationPayload = pkg.NewDomainErrorSimple("INVALID_LIQUIDATION_INPUT", "Invalid liquidation payload", http.StatusBadRequest)

// LiquidationHandler handles HTTP requests for liquidations.
//
// Every liquidation is returned with its customer's display name and the
// derived overdue state.
type LiquidationHandler struct {
	usecase usecase.ILiquidationUseCase
}

func NewLiquidationHandler(uc usecase.ILiquidationUseCase) *LiquidationHandler {
	return &LiquidationHandler{usecase: uc}
}

// @Summary      List liquidations
// @Tags         liquidations
// @Produce      json
// @Param        q           query  string  false  "Free text"
// @Param        status      query  string  false  "Status"
// @Param        customerId  query  int     false  "Customer ID"
// @Param        dateField   query  string  false  "issueDate or dueDate"
// @Param        startDate   query  string  false  "YYYY-MM-DD"
// @Param        endDate     query  string  false  "YYYY-MM-DD"
// @Param        page        query  int     false  "Zero-based page"
// @Param        size        query  int     false  "Page size"
// @Success      200  {object}  response.PageResponse[response.LiquidationResponse]
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations [get]
func (h *LiquidationHandler) List(c *gin.Context) {
	var q request.LiquidationListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_FILTER", err.Error(), http.StatusBadRequest))
		return
	}

	page, err := h.usecase.List(c.Request.Context(), filter)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLiquidationPage(page))
}

// @Summary      Get a liquidation
// @Tags         liquidations
// @Produce      json
// @Param        id  path  int  true  "Liquidation ID"
// @Success      200  {object}  response.LiquidationResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id} [get]
func (h *LiquidationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLiquidationView(view))
}

// @Summary      List liquidations of a customer
// @Tags         liquidations
// @Produce      json
// @Param        customerId  path  int  true  "Customer ID"
// @Success      200  {array}  response.LiquidationResponse
// @Security     Bearer
// @Router       /liquidations/customer/{customerId} [get]
func (h *LiquidationHandler) ListByCustomer(c *gin.Context) {
	customerID, ok := pathID(c, "customerId")
	if !ok {
		return
	}

	views, err := h.usecase.ListByCustomerID(c.Request.Context(), customerID)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLiquidationViews(views))
}

// @Summary      Create a liquidation
// @Tags         liquidations
// @Accept       json
// @Produce      json
// @Param        liquidation  body  request.LiquidationRequest  true  "Liquidation"
// @Success      201  {object}  response.LiquidationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations [post]
func (h *LiquidationHandler) Create(c *gin.Context) {
	fields, ok := bindLiquidation(c)
	if !ok {
		return
	}

	view, err := h.usecase.Create(c.Request.Context(), fields)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLiquidationView(view))
}

// Update accepts any status of the configured vocabulary, PAID back to
// PENDING included.
//
// @Summary      Update a liquidation
// @Tags         liquidations
// @Accept       json
// @Produce      json
// @Param        id           path  int                         true  "Liquidation ID"
// @Param        liquidation  body  request.LiquidationRequest  true  "Fields to change"
// @Success      200  {object}  response.LiquidationResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id} [put]
func (h *LiquidationHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	fields, ok := bindLiquidation(c)
	if !ok {
		return
	}

	view, err := h.usecase.Update(c.Request.Context(), id, fields)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLiquidationView(view))
}

// @Summary      Mark a liquidation as paid
// @Tags         liquidations
// @Produce      json
// @Param        id  path  int  true  "Liquidation ID"
// @Success      200  {object}  response.LiquidationResponse
// @Failure      402  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id}/pay [put]
func (h *LiquidationHandler) Pay(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.usecase.Pay(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLiquidationView(view))
}

// @Summary      Delete a liquidation
// @Tags         liquidations
// @Param        id  path  int  true  "Liquidation ID"
// @Success      204
// @Failure      405  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id} [delete]
func (h *LiquidationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Penalty reads the optional dailyRate query parameter.
//
// @Summary      Compute the late penalty
// @Tags         liquidations
// @Produce      json
// @Param        id         path   int     true   "Liquidation ID"
// @Param        dailyRate  query  string  false  "Daily rate, e.g. 0.01"
// @Success      200  {object}  response.PenaltyResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id}/penalty [get]
func (h *LiquidationHandler) Penalty(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.usecase.Penalty(c.Request.Context(), id, c.Query("dailyRate"))
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPenalty(result))
}

// @Summary      Get the payment reference payload
// @Tags         liquidations
// @Produce      json
// @Param        id          path   int   true   "Liquidation ID"
// @Param        regenerate  query  bool  false  "Append a fresh suffix"
// @Success      200  {object}  response.PaymentReferenceResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id}/payment-reference [get]
func (h *LiquidationHandler) PaymentReference(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	regenerate, _ := strconv.ParseBool(c.DefaultQuery("regenerate", "false"))

	ref, err := h.usecase.PaymentReference(c.Request.Context(), id, regenerate)
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentReference(ref))
}

// QRCode writes the payment reference as a PNG image.
//
// @Summary      Render the payment reference as a QR code
// @Tags         liquidations
// @Produce      png
// @Param        id     path   int     true   "Liquidation ID"
// @Param        size   query  int     false  "Pixels, 64 to 1024"
// @Param        level  query  string  false  "L, M, Q or H"
// @Success      200  {file}  binary
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /liquidations/{id}/qrcode [get]
func (h *LiquidationHandler) QRCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	size := 0
	if raw := c.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(c, errInvalidRequest)
			return
		}
		size = n
	}

	img, err := h.usecase.RenderPaymentReference(c.Request.Context(), id, size, c.Query("level"))
	if err != nil {
		writeError(c, mapLiquidationError(err))
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

func bindLiquidation(c *gin.Context) (map[string]any, bool) {
	var payload request.LiquidationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidLiquidationPayload)
		return nil, false
	}
	fields, err := payload.ToFields()
	if err != nil {
		writeError(c, errInvalidLiquidationPayload)
		return nil, false
	}
	return fields, true
}

func mapLiquidationError(err error) *pkg.AppError {
	if appErr, ok := mapTransportError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidLiquidationID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvalidLiquidationPayload):
		return errInvalidLiquidationPayload
	case errors.Is(err, usecase.ErrStatusOutsideVocabulary):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Status not allowed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidDailyRate):
		return pkg.NewDomainErrorSimple("INVALID_DAILY_RATE", "Daily rate must be a non-negative number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrLiquidationNotFound):
		return pkg.NewDomainErrorSimple("LIQUIDATION_NOT_FOUND", "Liquidation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDeleteNotSupported):
		return pkg.NewDomainErrorSimple("DELETE_NOT_SUPPORTED", "Liquidations cannot be deleted", http.StatusMethodNotAllowed)
	case errors.Is(err, usecase.ErrPaymentDeclined):
		return pkg.NewDomainError("PAYMENT_DECLINED", "Payment was declined", err, http.StatusPaymentRequired)
	default:
		return internalError(err)
	}
}
