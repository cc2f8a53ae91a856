package infra

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echoSwagger "github.com/swaggo/echo-swagger"
	_ "github.com/umalmyha/customer-relay/docs" // registers swagger docs
	"github.com/umalmyha/customer-relay/internal/config"
	"github.com/umalmyha/customer-relay/internal/handlers"
	"github.com/umalmyha/customer-relay/internal/middleware"
	"github.com/umalmyha/customer-relay/internal/service"
	"github.com/umalmyha/customer-relay/internal/validation"
)

// Router builds echo app with customer relay routes
func Router(cfg config.HTTPCfg, logger *logrus.Logger, relaySvc service.CustomerRelayService) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	v, err := validation.English()
	if err != nil {
		return nil, err
	}
	e.Validator = v

	e.HTTPErrorHandler = func(err error, c echo.Context) {
		logger.WithField("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).Errorf("request failed - %v", err)

		var pldErr *validation.PayloadError
		if errors.As(err, &pldErr) && !c.Response().Committed {
			if err := c.JSON(http.StatusBadRequest, pldErr); err != nil {
				logger.Errorf("failed to write payload error response - %v", err)
			}
			return
		}

		e.DefaultHTTPErrorHandler(err, c)
	}

	// Middleware
	e.Use(echomw.Recover())
	if cfg.HTTPSRedirect {
		e.Pre(echomw.HTTPSRedirect())
	}
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))

	// Handlers
	customerHandler := handlers.NewCustomerHTTPHandler(relaySvc)

	// Routes
	e.POST("/customer", customerHandler.Post)

	if cfg.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e, nil
}
