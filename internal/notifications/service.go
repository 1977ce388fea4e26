package notifications

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/daireto/phishing-url-detector/internal/messagebus"
)

// NotificationService handles WebSocket notifications and NATS message subscriptions
type NotificationService struct {
	hub  *Hub
	mb   messagebus.MessageBusInterface
	log  *slog.Logger
	subs []*nats.Subscription
}

// Option configures the NotificationService
type Option func(*NotificationService)

// NewNotificationService creates a new notification service with WebSocket hub and message bus
func NewNotificationService(
	hub *Hub,
	mb messagebus.MessageBusInterface,
	opts ...Option,
) *NotificationService {
	s := &NotificationService{
		hub:  hub,
		mb:   mb,
		log:  slog.Default(),
		subs: make([]*nats.Subscription, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithLogger sets the logger
func WithLogger(log *slog.Logger) Option {
	return func(s *NotificationService) { s.log = log }
}

// Start initializes all NATS subscriptions for the notification service
func (s *NotificationService) Start(ctx context.Context) error {
	s.log.Info("Starting notification service subscriptions")

	if err := s.setupScanUpdateSubscription(); err != nil {
		return err
	}

	if err := s.setupStageUpdateSubscription(); err != nil {
		return err
	}

	s.log.Info("All NATS subscriptions established", slog.Int("count", len(s.subs)))
	return nil
}

// Stop unsubscribes from all NATS subscriptions
func (s *NotificationService) Stop() {
	s.log.Info("Stopping notification service", slog.Int("subscriptions", len(s.subs)))

	for _, sub := range s.subs {
		if err := sub.Unsubscribe(); err != nil {
			s.log.Error("Failed to unsubscribe", slog.Any("error", err))
		}
	}

	s.subs = s.subs[:0]
}

// GetWebSocketHandler returns the WebSocket handler for HTTP routing
func (s *NotificationService) GetWebSocketHandler() *Handler {
	return NewHandler(s.hub, s.log)
}

// setupScanUpdateSubscription subscribes to scan update messages and
// broadcasts them to every connected client.
func (s *NotificationService) setupScanUpdateSubscription() error {
	sub, err := s.mb.SubscribeToScanUpdate(func(ctx context.Context, msg *nats.Msg) {
		var m messagebus.ScanUpdateMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			s.log.Error("Failed to unmarshal scan update", slog.Any("error", err))
			return
		}

		s.log.Info("Broadcasting scan update",
			slog.String("scanId", m.ScanID),
			slog.String("status", m.Status))
		s.hub.Broadcast(m)
	})

	if err != nil {
		s.log.Error("Failed to subscribe to scan updates", slog.Any("error", err))
		return err
	}

	s.subs = append(s.subs, sub)
	return nil
}

// setupStageUpdateSubscription subscribes to stage update messages and
// broadcasts them to the subscribers of the affected scan.
func (s *NotificationService) setupStageUpdateSubscription() error {
	sub, err := s.mb.SubscribeToStageUpdate(func(ctx context.Context, msg *nats.Msg) {
		var m messagebus.StageUpdateMessage
		if err := json.Unmarshal(msg.Data, &m); err != nil {
			s.log.Error("Failed to unmarshal stage update", slog.Any("error", err))
			return
		}

		s.log.Info("Broadcasting stage update",
			slog.String("scanId", m.ScanID),
			slog.String("stageType", m.StageType),
			slog.String("status", m.Status))
		s.hub.BroadcastToScan(m, m.ScanID)
	})

	if err != nil {
		s.log.Error("Failed to subscribe to stage updates", slog.Any("error", err))
		return err
	}

	s.subs = append(s.subs, sub)
	return nil
}
