package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/akorchagin/feature-analytics/internal/logger"
	"github.com/akorchagin/feature-analytics/internal/models"
	"github.com/segmentio/kafka-go"
)

// ClickWriter defines the append operation for feature clicks.
type ClickWriter interface {
	Save(ctx context.Context, userID int64, featureName string) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TrackService records feature interactions.
type TrackService struct {
	clicks      ClickWriter
	kafkaWriter KafkaWriter
}

// NewTrackService creates a new TrackService.
func NewTrackService(clicks ClickWriter, kafkaWriter KafkaWriter) *TrackService {
	return &TrackService{
		clicks:      clicks,
		kafkaWriter: kafkaWriter,
	}
}

// Track appends one click for the authenticated user. Any feature name is
// accepted; there is no allow-list. The click is also published to Kafka
// best-effort: publish failures never fail the request.
func (s *TrackService) Track(ctx context.Context, user *models.UserDB, featureName string) error {
	if err := s.clicks.Save(ctx, user.UserID, featureName); err != nil {
		logger.Log.Errorw("failed to save click", "user_id", user.UserID, "feature", featureName, "error", err)
		return err
	}

	s.publishClick(ctx, models.ClickEvent{
		EventID:     uuid.NewString(),
		UserID:      user.UserID,
		FeatureName: featureName,
		Timestamp:   time.Now().Unix(),
	})

	return nil
}

// publishClick publishes a click event to Kafka.
func (s *TrackService) publishClick(ctx context.Context, evt models.ClickEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal click event", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish click event", "event_id", evt.EventID, "error", err)
	} else {
		logger.Log.Infow("click event published", "event_id", evt.EventID, "feature", evt.FeatureName)
	}
}
