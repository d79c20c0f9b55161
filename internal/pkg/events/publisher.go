package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const (
	TopicBookings  = "booking-events"
	TopicCampaigns = "campaign-events"
)

const (
	BookingCreated    = "booking.created"
	BookingConfirmed  = "booking.confirmed"
	BookingCancelled  = "booking.cancelled"
	CampaignPublished = "campaign.published"
)

type Event struct {
	Type     string    `json:"type"`
	TenantID uuid.UUID `json:"tenant_id"`
	EntityID uuid.UUID `json:"entity_id"`
	At       time.Time `json:"at"`
}

// Publisher writes domain events to kafka. Publishing is best-effort: a
// broker outage must never fail the request that produced the event.
type Publisher struct {
	writer *kafka.Writer
	log    *logrus.Logger
}

func NewPublisher(broker string, log *logrus.Logger) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(broker),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		log: log,
	}
}

func (p *Publisher) Publish(topic, eventType string, tenantID, entityID uuid.UUID) {
	if p == nil {
		return
	}

	ev := Event{Type: eventType, TenantID: tenantID, EntityID: entityID, At: time.Now().UTC()}
	value, err := json.Marshal(ev)
	if err != nil {
		p.log.WithError(err).Error("marshal event")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(tenantID.String()),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventType)},
			{Key: "tenant_id", Value: []byte(tenantID.String())},
		},
	})
	if err != nil {
		p.log.WithError(err).WithField("event_type", eventType).Error("publish event")
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
