package handlers

import (
	"errors"
	"net/http"

	request "liquidation_backoffice/internal/adapter/http/dto/request"
	response "liquidation_backoffice/internal/adapter/http/dto/response"
	"liquidation_backoffice/internal/usecase"
	"liquidation_backoffice/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

// @Summary      List customers
// @Tags         customers
// @Produce      json
// @Param        q     query  string  false  "Free text"
// @Param        page  query  int     false  "Zero-based page"
// @Param        size  query  int     false  "Page size"
// @Success      200  {object}  response.PageResponse[response.CustomerResponse]
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	var q request.CustomerListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	page, err := h.usecase.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerPage(page))
}

// Search matches q over names, email, phone, city, ifu and address.
//
// @Summary      Search customers
// @Tags         customers
// @Produce      json
// @Param        q     query  string  false  "Free text"
// @Param        page  query  int     false  "Zero-based page"
// @Param        size  query  int     false  "Page size"
// @Success      200  {object}  response.PageResponse[response.CustomerResponse]
// @Security     Bearer
// @Router       /customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	var q request.CustomerListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	page, err := h.usecase.Search(c.Request.Context(), q.ToFilter().Text, q.Page, q.Size)
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomerPage(page))
}

// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id  path  int  true  "Customer ID"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        customer  body  request.CustomerRequest  true  "Customer"
// @Success      201  {object}  response.CustomerResponse
// @Failure      400  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidCustomerPayload)
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), payload.ToFields())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id        path  int                      true  "Customer ID"
// @Param        customer  body  request.CustomerRequest  true  "Fields to change"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidCustomerPayload)
		return
	}

	customer, err := h.usecase.Update(c.Request.Context(), id, payload.ToFields())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// Delete never cascades to the customer's liquidations.
//
// @Summary      Delete a customer
// @Tags         customers
// @Param        id  path  int  true  "Customer ID"
// @Success      204
// @Security     Bearer
// @Router       /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCustomerError(err error) *pkg.AppError {
	if appErr, ok := mapTransportError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidID
	case errors.Is(err, usecase.ErrInvalidCustomerPayload):
		return errInvalidCustomerPayload
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
