package services

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const streamName = "vault-events"

// EventBus publishes vault lifecycle events through NATS JetStream.
type EventBus struct {
	conn *nats.Conn
	js   nats.JetStreamContext
}

// ConnectNATS connects and makes sure the vault-events stream exists.
func ConnectNATS(url string) (*EventBus, error) {
	opts := []nats.Option{
		nats.Name("vault-service"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			log.Printf("[NATS] disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("[NATS] reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(_ *nats.Conn) {
			log.Println("[NATS] connection closed")
		}),
	}

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, err
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, err
	}

	b := &EventBus{conn: conn, js: js}
	if err := b.ensureStream(); err != nil {
		log.Printf("[NATS] warning: failed to ensure stream: %v", err)
		// Not fatal, the service can run without durable events.
	}

	log.Println("[NATS] connected and JetStream initialized")
	return b, nil
}

func (b *EventBus) ensureStream() error {
	if _, err := b.js.StreamInfo(streamName); err == nil {
		return nil
	}

	_, err := b.js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{"vault.>"},
		Storage:  nats.FileStorage,
		MaxAge:   30 * 24 * time.Hour,
	})
	return err
}

// Publish sends a durable event, e.g. subject "vault.backup.created".
func (b *EventBus) Publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	// Message ID for idempotency
	_, err = b.js.Publish(subject, data, nats.MsgId(uuid.New().String()))
	if err != nil {
		log.Printf("[NATS] publish failed subject=%s err=%v", subject, err)
	}
	return err
}

// Subscribe creates a durable, manual-ack consumer for one subject.
func (b *EventBus) Subscribe(subject, durableName string, handler nats.MsgHandler) (*nats.Subscription, error) {
	sub, err := b.js.Subscribe(subject, handler, nats.Durable(durableName), nats.ManualAck())
	if err != nil {
		return nil, err
	}
	log.Printf("[NATS] subscribed subject=%s durable=%s", subject, durableName)
	return sub, nil
}

// SubscribeAll wires a routing table of subject -> handler during startup.
func (b *EventBus) SubscribeAll(routes map[string]nats.MsgHandler) error {
	for subject, handler := range routes {
		if _, err := b.Subscribe(subject, "vault-service-"+sanitizeDurable(subject), handler); err != nil {
			return err
		}
	}
	return nil
}

// Durable names must not contain dots.
func sanitizeDurable(subject string) string {
	out := []byte(subject)
	for i, c := range out {
		if c == '.' || c == '>' || c == '*' {
			out[i] = '-'
		}
	}
	return string(out)
}

func (b *EventBus) Close() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}
