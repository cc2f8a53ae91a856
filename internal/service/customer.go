package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/customer-relay/internal/collector"
	apperrors "github.com/umalmyha/customer-relay/internal/errors"
	"github.com/umalmyha/customer-relay/internal/model"
	"github.com/umalmyha/customer-relay/internal/requestid"
)

// CustomerSender delivers serialized customer to collector
type CustomerSender interface {
	Send(context.Context, []byte) (*collector.Receipt, error)
}

// CustomerRelayService forwards customers to collector
type CustomerRelayService interface {
	Relay(context.Context, *model.Customer) error
}

type customerRelayService struct {
	sender CustomerSender
	logger logrus.FieldLogger
}

// NewCustomerRelayService builds new CustomerRelayService
func NewCustomerRelayService(sender CustomerSender, logger logrus.FieldLogger) CustomerRelayService {
	return &customerRelayService{
		sender: sender,
		logger: logger,
	}
}

// Relay sends customer to collector once. Returns *errors.CollectorRejectedErr if collector
// responded with non-2xx status and *errors.CollectorUnavailableErr if no response was received.
func (s *customerRelayService) Relay(ctx context.Context, c *model.Customer) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to serialize customer - %w", err)
	}

	logger := s.logger.WithFields(logrus.Fields{
		"customer_id": c.ID,
		"request_id":  requestid.FromContext(ctx),
	})

	receipt, err := s.sender.Send(ctx, payload)
	if err != nil {
		logger.Errorf("failed to deliver customer to collector - %v", err)
		return err
	}

	if !receipt.Success() {
		logger.Warnf("collector responded with failure status code %d", receipt.StatusCode)
		return apperrors.NewCollectorRejectedErr(receipt.StatusCode)
	}

	logger.Infof("response received from collector - %s", receipt)
	return nil
}
