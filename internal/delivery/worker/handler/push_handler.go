package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"fretex/config"
	deliverycontext "fretex/internal/delivery/context"
	"fretex/internal/domain/constants"
	"fretex/internal/domain/repository"
	"fretex/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler handles Pub/Sub push messages carrying match request events and
// notifies the counterparty over FCM user topics.
type PushHandler struct {
	verifyPushAuth  bool
	logger          *slog.Logger
	notificationSvc service.NotificationService
	freightRepo     repository.FreightRepository
	tripRepo        repository.TripRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config          *config.Config
	Logger          *slog.Logger
	NotificationSvc service.NotificationService
	FreightRepo     repository.FreightRepository
	TripRepo        repository.TripRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Push auth only applies to Google Pub/Sub outside development.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:  verifyPushAuth,
		logger:          params.Logger,
		notificationSvc: params.NotificationSvc,
		freightRepo:     params.FreightRepo,
		tripRepo:        params.TripRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse match request event
	var event service.MatchRequestEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse match request event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing match request event",
		slog.String("event_type", string(event.Type)),
		slog.String("match_request_id", event.RequestID.String()),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process match request event",
			slog.String("match_request_id", event.RequestID.String()),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Match request event processed successfully",
		slog.String("match_request_id", event.RequestID.String()),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes or context
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// processEvent builds and sends the counterparty push for an event
func (h *PushHandler) processEvent(ctx context.Context, event *service.MatchRequestEvent) error {
	if h.notificationSvc == nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("[Worker] Notification service disabled, dropping event",
			slog.String("event_type", string(event.Type)),
		)

		return nil
	}

	recipientID, title, body, err := h.notificationContent(ctx, event)
	if err != nil {
		return err
	}

	push := &service.PushNotification{
		Topic: userTopic(recipientID),
		Title: title,
		Body:  body,
		Data: map[string]string{
			"event_type":       string(event.Type),
			"match_request_id": event.RequestID.String(),
			"freight_id":       event.FreightID.String(),
			"trip_id":          event.TripID.String(),
		},
	}

	if err := h.notificationSvc.SendPush(ctx, push); err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	return nil
}

// notificationContent resolves the recipient and the pt-BR push copy for an
// event. Proposals and cancellations go to the shipper, decisions to the
// driver.
func (h *PushHandler) notificationContent(ctx context.Context, event *service.MatchRequestEvent) (uuid.UUID, string, string, error) {
	switch event.Type {
	case service.EventMatchRequestProposed:
		label := h.freightLabel(ctx, event.FreightID)

		return event.ShipperID,
			"Nova proposta de frete",
			fmt.Sprintf("Um motorista se ofereceu para transportar %s", label),
			nil

	case service.EventMatchRequestAccepted:
		label := h.freightLabel(ctx, event.FreightID)

		return event.DriverID,
			"Proposta aceita",
			fmt.Sprintf("Sua proposta para %s foi aceita. Os contatos já estão disponíveis", label),
			nil

	case service.EventMatchRequestRejected:
		label := h.freightLabel(ctx, event.FreightID)

		return event.DriverID,
			"Proposta recusada",
			fmt.Sprintf("Sua proposta para %s foi recusada", label),
			nil

	case service.EventMatchRequestCancelled:
		return event.ShipperID,
			"Proposta retirada",
			"O motorista retirou a proposta de frete",
			nil

	default:
		return uuid.Nil, "", "", errors.Errorf("unknown event type: %s", event.Type)
	}
}

// freightLabel fetches a human label for the freight, falling back to a
// generic one so a missing read never blocks the notification.
func (h *PushHandler) freightLabel(ctx context.Context, freightID uuid.UUID) string {
	freight, err := h.freightRepo.FindByID(ctx, freightID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Failed to load freight for notification",
			slog.String("freight_id", freightID.String()),
			slog.Any("error", err),
		)

		return "um frete"
	}

	return fmt.Sprintf("%s → %s", freight.PickupLabel, freight.DropoffLabel)
}

// userTopic is the FCM topic a user's devices subscribe to.
func userTopic(userID uuid.UUID) string {
	return "user-" + userID.String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
