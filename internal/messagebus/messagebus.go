package messagebus

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/daireto/phishing-url-detector/internal/models"
	"github.com/daireto/phishing-url-detector/internal/tracing"
)

//go:generate mockgen -destination=../mocks/mock_messagebus.go -package=mocks . MessageBusInterface

type MessageBusInterface interface {
	PublishScanRequested(ctx context.Context, m ScanRequestedMessage) error
	PublishScanUpdate(ctx context.Context, m ScanUpdateMessage) error
	PublishStageUpdate(ctx context.Context, m StageUpdateMessage) error
	SubscribeToScanRequested(handler func(ctx context.Context, m *nats.Msg)) (*nats.Subscription, error)
	SubscribeToScanUpdate(handler func(ctx context.Context, m *nats.Msg)) (*nats.Subscription, error)
	SubscribeToStageUpdate(handler func(ctx context.Context, m *nats.Msg)) (*nats.Subscription, error)
}

type MessageType string

const (
	ScanRequestedMessageType MessageType = "scan.requested"
	ScanUpdateMessageType    MessageType = "scan.update"
	StageUpdateMessageType   MessageType = "scan.stage_update"
)

type ScanRequestedMessage struct {
	Type   MessageType `json:"type"`
	ScanID string      `json:"scan_id"`
}

type ScanUpdateMessage struct {
	Type   MessageType        `json:"type"`
	ScanID string             `json:"scan_id"`
	Status string             `json:"status"`
	Error  string             `json:"error,omitempty"`
	Result *models.Prediction `json:"result,omitempty"`
}

type StageUpdateMessage struct {
	Type      MessageType `json:"type"`
	ScanID    string      `json:"scan_id"`
	StageType string      `json:"stage_type"`
	Status    string      `json:"status"`
}

// MessageBus provides a NATS message bus for publishing and subscribing to messages
type MessageBus struct {
	nc      *nats.Conn
	metrics MetricsCollector
}

// New creates a new message bus
func New(nc *nats.Conn, metrics MetricsCollector) *MessageBus {
	if metrics == nil {
		metrics = NoOpMetricsCollector{}
	}
	return &MessageBus{
		nc:      nc,
		metrics: metrics,
	}
}

// PublishScanRequested publishes a scan request message to NATS
func (b *MessageBus) PublishScanRequested(ctx context.Context, m ScanRequestedMessage) (err error) {
	defer func() {
		b.metrics.RecordNATSPublish(string(ScanRequestedMessageType), err == nil)
	}()

	m.Type = ScanRequestedMessageType
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("Failed to marshal scan request: %v", err)
		return err
	}

	err = b.publishMsg(ctx, data, ScanRequestedMessageType)
	if err != nil {
		log.Printf("Failed to publish scan request: %v", err)
	}
	return err
}

// PublishScanUpdate publishes a scan update message to NATS
func (b *MessageBus) PublishScanUpdate(ctx context.Context, m ScanUpdateMessage) (err error) {
	defer func() {
		b.metrics.RecordNATSPublish(string(ScanUpdateMessageType), err == nil)
	}()

	m.Type = ScanUpdateMessageType
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("Failed to marshal scan update: %v", err)
		return err
	}

	err = b.publishMsg(ctx, data, ScanUpdateMessageType)
	if err != nil {
		log.Printf("Failed to publish scan update: %v", err)
	}
	return err
}

// PublishStageUpdate publishes a stage update message to NATS
func (b *MessageBus) PublishStageUpdate(ctx context.Context, m StageUpdateMessage) (err error) {
	defer func() {
		b.metrics.RecordNATSPublish(string(StageUpdateMessageType), err == nil)
	}()

	m.Type = StageUpdateMessageType
	data, err := json.Marshal(m)
	if err != nil {
		log.Printf("Failed to marshal stage update: %v", err)
		return err
	}

	err = b.publishMsg(ctx, data, StageUpdateMessageType)
	if err != nil {
		log.Printf("Failed to publish stage update: %v", err)
	}
	return err
}

// publishMsg publishes a message to NATS with trace context in headers
func (b *MessageBus) publishMsg(ctx context.Context, data []byte, messageType MessageType) (err error) {
	ctx, span := tracing.CreateNATSPublishSpan(ctx, string(messageType))
	defer span.End()

	msg := &nats.Msg{
		Subject: string(messageType),
		Data:    data,
		Header:  make(nats.Header),
	}

	tracing.InjectNATSHeaders(ctx, msg)

	err = b.nc.PublishMsg(msg)
	if err != nil {
		tracing.SetError(ctx, err)
	}
	return err
}

// SubscribeToScanRequested subscribes to the scan request message
func (b *MessageBus) SubscribeToScanRequested(handler func(ctx context.Context, m *nats.Msg)) (*nats.Subscription, error) {
	h := b.wrapHandler(ScanRequestedMessageType, handler)
	return b.nc.Subscribe(string(ScanRequestedMessageType), h)
}

// SubscribeToScanUpdate subscribes to the scan update message
func (b *MessageBus) SubscribeToScanUpdate(handler func(ctx context.Context, m *nats.Msg)) (*nats.Subscription, error) {
	h := b.wrapHandler(ScanUpdateMessageType, handler)
	return b.nc.Subscribe(string(ScanUpdateMessageType), h)
}

// SubscribeToStageUpdate subscribes to the stage update message
func (b *MessageBus) SubscribeToStageUpdate(handler func(ctx context.Context, m *nats.Msg)) (*nats.Subscription, error) {
	h := b.wrapHandler(StageUpdateMessageType, handler)
	return b.nc.Subscribe(string(StageUpdateMessageType), h)
}

// wrapHandler wraps the original handler to automatically inject trace context and record receive metrics
func (b *MessageBus) wrapHandler(messageType MessageType, handler func(ctx context.Context, m *nats.Msg)) nats.MsgHandler {
	return func(m *nats.Msg) {
		ctx := tracing.ExtractNATSHeaders(context.Background(), m)
		ctx, span := tracing.CreateNATSConsumeSpan(ctx, m.Subject)
		defer span.End()

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				b.metrics.RecordNATSReceive(string(messageType), time.Since(start), false)
				panic(r)
			} else {
				b.metrics.RecordNATSReceive(string(messageType), time.Since(start), true)
			}
		}()

		handler(ctx, m)
	}
}
