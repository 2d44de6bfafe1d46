// Package events publishes attendance pipeline outcomes to Kafka so
// downstream consumers (dashboards, audit) can follow runs as they happen.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"veriface/internal/attendance/models"
)

const (
	eventTypeOutcome      = "attendance.participant_outcome"
	eventTypeRunCompleted = "attendance.run_completed"
)

type envelope struct {
	Type         string    `json:"type"`
	RunID        string    `json:"run_id"`
	ConferenceID string    `json:"conference_id"`
	OccurredAt   time.Time `json:"occurred_at"`
	Payload      any       `json:"payload"`
}

// Publisher writes attendance events to a single Kafka topic, keyed by
// conference id so per-conference ordering is preserved.
type Publisher struct {
	client *kgo.Client
	topic  string
	logger *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithLogger sets the logger used by the publisher.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// New connects to the brokers and ensures the topic exists.
func New(brokers []string, topic string, opts ...Option) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("at least one broker is required")
	}
	if topic == "" {
		return nil, fmt.Errorf("topic is required")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}

	p := &Publisher{
		client: client,
		topic:  topic,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}

	if err := p.ensureTopic(); err != nil {
		client.Close()
		return nil, err
	}
	return p, nil
}

func (p *Publisher) ensureTopic() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopic(ctx, 1, 1, nil, p.topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", p.topic, err)
	}
	if resp.Err != nil && !errors.Is(resp.Err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", p.topic, resp.Err)
	}
	return nil
}

// PublishOutcome emits one event per participant verdict.
func (p *Publisher) PublishOutcome(ctx context.Context, runID string, conferenceID models.ConferenceID, outcome models.ParticipantOutcome) error {
	return p.publish(ctx, envelope{
		Type:         eventTypeOutcome,
		RunID:        runID,
		ConferenceID: conferenceID.String(),
		OccurredAt:   time.Now().UTC(),
		Payload:      outcome,
	})
}

// PublishRunCompleted emits the run summary once all participants settle.
func (p *Publisher) PublishRunCompleted(ctx context.Context, result *models.PipelineResult) error {
	return p.publish(ctx, envelope{
		Type:         eventTypeRunCompleted,
		RunID:        result.RunID,
		ConferenceID: result.ConferenceID.String(),
		OccurredAt:   time.Now().UTC(),
		Payload:      result,
	})
}

func (p *Publisher) publish(ctx context.Context, ev envelope) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(ev.ConferenceID),
		Value: value,
	}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce %s event: %w", ev.Type, err)
	}

	p.logger.DebugContext(ctx, "published attendance event",
		slog.String("type", ev.Type),
		slog.String("run_id", ev.RunID))
	return nil
}

// Close flushes pending records and releases the client.
func (p *Publisher) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = p.client.Flush(ctx)
	p.client.Close()
}
