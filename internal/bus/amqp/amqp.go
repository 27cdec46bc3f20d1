// Package amqp implements publication of run reports over AMQP.

package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	buserrors "voice-api-smoke/internal/bus/errors"
	"voice-api-smoke/internal/bus/modelbus"
	"voice-api-smoke/internal/checker/v1/models"
	"voice-api-smoke/internal/config"
	"voice-api-smoke/internal/syncutils"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

// AMQP defines a report publisher object and sets its attributes.
// The connection is opened on first publish.
type AMQP struct {
	config    *config.Config
	log       *zerolog.Logger
	syncUtils *syncutils.SyncUtils

	mu      sync.Mutex
	channel *amqp.Channel
}

// NewAMQP initializes a new AMQP service.
func NewAMQP(config *config.Config, logger *zerolog.Logger, syncUtils *syncutils.SyncUtils) *AMQP {
	logger.Debug().Msg("calling initializer of AMQP service")
	return &AMQP{
		config:    config,
		log:       logger,
		syncUtils: syncUtils,
	}
}

// init dials the broker and declares the report exchange.
func (a *AMQP) init() error {
	a.log.Debug().Msg("calling `init` method")
	if a.config.AMQP.Addr == "" {
		return errors.New(buserrors.AMQPNotConfiguredError)
	}

	conn, err := amqp.Dial(a.config.AMQP.Addr)
	if err != nil {
		a.log.Error().Err(err).Msg(buserrors.AMQPConnectionError)
		return err
	}

	channel, err := conn.Channel()
	if err != nil {
		a.log.Error().Err(err).Msg(buserrors.AMQPChannelOpeningError)
		_ = conn.Close()
		return err
	}

	if err = channel.ExchangeDeclare(a.config.AMQP.ReportExchangeName,
		"fanout", true, false, false, false, nil); err != nil {
		a.log.Error().Err(err).Msg(buserrors.AMQPExchangeDeclarationError)
		_ = conn.Close()
		return err
	}
	a.channel = channel

	a.syncUtils.Wg.Add(1)
	go func() {
		defer a.syncUtils.Wg.Done()
		<-a.syncUtils.Ctx.Done()
		if err := conn.Close(); err != nil {
			a.log.Error().Err(err).Msg("could not close AMQP connection")
			return
		}
		a.log.Debug().Msg("AMQP connection was closed")
	}()
	return nil
}

// PublishToExchange publishes a message to the specified exchange.
func (a *AMQP) PublishToExchange(ctx context.Context, exchange string, msg amqp.Publishing) error {
	a.log.Debug().Msg("calling `PublishToExchange` method")

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.channel == nil {
		if err := a.init(); err != nil {
			return err
		}
	}

	if err := a.channel.PublishWithContext(ctx, exchange, "", false, false, msg); err != nil {
		a.log.Error().Err(err).Msg(buserrors.AMQPPublishingError)
		return err
	}

	a.log.Info().Str("exchange", exchange).Msg("message was successfully published to AMQP")
	return nil
}

// PublishReport publishes a run report to the configured report exchange.
func (a *AMQP) PublishReport(ctx context.Context, report *models.Report) error {
	publishing, err := NewReportPublishing(a.config.API.BaseURL, report)
	if err != nil {
		a.log.Error().Err(err).Msg(buserrors.AMQPMarshallingError)
		return err
	}
	return a.PublishToExchange(ctx, a.config.AMQP.ReportExchangeName, publishing)
}

// NewReportPublishing serializes a run report into an AMQP message.
func NewReportPublishing(baseURL string, report *models.Report) (amqp.Publishing, error) {
	msg := modelbus.RunReport{
		RunID:      report.RunID,
		BaseURL:    baseURL,
		StartedAt:  report.StartedAt,
		FinishedAt: report.FinishedAt,
		Passed:     report.Passed(),
		Results:    make([]modelbus.CheckResult, 0, len(report.Results)),
	}
	for _, res := range report.Results {
		msg.Results = append(msg.Results, modelbus.CheckResult{
			Check:      res.Check,
			Outcome:    res.Outcome,
			State:      res.State,
			Kind:       res.Kind,
			Message:    res.Message,
			SessionID:  res.SessionID,
			StatusCode: res.StatusCode,
			DurationMS: res.Duration.Milliseconds(),
		})
	}

	serialized, err := json.Marshal(msg)
	if err != nil {
		return amqp.Publishing{}, err
	}
	return amqp.Publishing{
		ContentType: "application/json",
		MessageId:   report.RunID,
		Timestamp:   report.FinishedAt,
		Headers:     amqp.Table{"passed": msg.Passed},
		Body:        serialized,
	}, nil
}
