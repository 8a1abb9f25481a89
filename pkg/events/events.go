package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/veritas25/fundbooth/pkg/logger"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data interface{}) error
	Close() error
}

type Subscriber interface {
	Subscribe(subject string, handler func(msg *Message)) error
	Close() error
}

type EventBus interface {
	Publisher
	Subscriber
}

type Message struct {
	Subject   string
	Data      []byte
	Timestamp time.Time
}

type NATSEventBus struct {
	conn *nats.Conn
}

func NewNATSEventBus(url string) (*NATSEventBus, error) {
	conn, err := nats.Connect(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return &NATSEventBus{conn: conn}, nil
}

func (n *NATSEventBus) Publish(ctx context.Context, subject string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	logger.DebugContext(ctx, "Publishing event", "subject", subject, "data", string(payload))

	return n.conn.Publish(subject, payload)
}

func (n *NATSEventBus) Subscribe(subject string, handler func(msg *Message)) error {
	_, err := n.conn.Subscribe(subject, func(msg *nats.Msg) {
		handler(&Message{
			Subject:   msg.Subject,
			Data:      msg.Data,
			Timestamp: time.Now(),
		})
	})
	return err
}

func (n *NATSEventBus) Close() error {
	n.conn.Close()
	return nil
}

// Event subjects
const (
	ContributionOrderCreated = "contribution.order.created"
	ContributionRecorded     = "contribution.recorded"
)

// Event payloads
type ContributionOrderCreatedEvent struct {
	OrderID   string    `json:"order_id"`
	Amount    int64     `json:"amount"` // minor units
	Currency  string    `json:"currency"`
	Receipt   string    `json:"receipt"`
	CreatedAt time.Time `json:"created_at"`
}

type ContributionRecordedEvent struct {
	ProjectID  string    `json:"project_id"`
	OrderID    string    `json:"order_id"`
	PaymentID  string    `json:"payment_id"`
	DonorName  string    `json:"donor_name"`
	Amount     float64   `json:"amount"` // major units
	RecordedAt time.Time `json:"recorded_at"`
}
