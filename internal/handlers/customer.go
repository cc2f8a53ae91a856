package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	apperrors "github.com/umalmyha/customer-relay/internal/errors"
	"github.com/umalmyha/customer-relay/internal/model"
	"github.com/umalmyha/customer-relay/internal/service"
)

// CustomerHTTPHandler is http handler for customer endpoint
type CustomerHTTPHandler struct {
	relaySvc service.CustomerRelayService
}

// NewCustomerHTTPHandler builds new CustomerHTTPHandler
func NewCustomerHTTPHandler(relaySvc service.CustomerRelayService) *CustomerHTTPHandler {
	return &CustomerHTTPHandler{relaySvc: relaySvc}
}

// Post relays customer to collector
// @Summary     Relay customer
// @Description Forwards customer to the downstream collector and reports whether collector accepted it
// @Tags        customers
// @Accept      json
// @Param       customer body model.Customer true "Customer to relay"
// @Success     200      "Collector accepted customer"
// @Failure     400      "Collector rejected customer or payload is invalid"
// @Failure     415      "Content type is not supported"
// @Failure     502      "Collector is unreachable"
// @Router      /customer [post]
func (h *CustomerHTTPHandler) Post(c echo.Context) error {
	var customer model.Customer
	if err := c.Bind(&customer); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&customer); err != nil {
		return err
	}

	err := h.relaySvc.Relay(c.Request().Context(), &customer)
	if err == nil {
		return c.NoContent(http.StatusOK)
	}

	var rejectedErr *apperrors.CollectorRejectedErr
	if errors.As(err, &rejectedErr) {
		return c.NoContent(http.StatusBadRequest)
	}

	var unavailableErr *apperrors.CollectorUnavailableErr
	if errors.As(err, &unavailableErr) {
		return c.NoContent(http.StatusBadGateway)
	}

	return err
}
