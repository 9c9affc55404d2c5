// Package notify publishes daily push notifications to NATS JetStream. A
// downstream delivery worker fans the message out to device push providers.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/dailydoses/humor-backend/internal/config"
)

// PushMessage is the wire payload published for the daily notification.
type PushMessage struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Date  string `json:"date"`
}

// NATS publishes push messages over a JetStream connection.
type NATS struct {
	conn      *nats.Conn
	jetstream nats.JetStreamContext
	subject   string
}

// New connects to the configured NATS server and initializes JetStream.
func New(cfg config.PushConfig) (*NATS, error) {
	conn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("get JetStream: %w", err)
	}

	return &NATS{conn: conn, jetstream: js, subject: cfg.Subject}, nil
}

// Close drains the underlying connection.
func (n *NATS) Close() {
	if n.conn != nil {
		n.conn.Close()
	}
}

// PublishPush publishes a push message to the configured subject.
func (n *NATS) PublishPush(ctx context.Context, msg *PushMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal push message: %w", err)
	}

	if _, err := n.jetstream.Publish(n.subject, data, nats.Context(ctx)); err != nil {
		return fmt.Errorf("publish push message: %w", err)
	}

	return nil
}
