// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/l3montree-dev/jiralink/database"
	"github.com/l3montree-dev/jiralink/shared"
)

type envelope struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"topic"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"senderId,omitempty"`
}

// PostgreSQLBroker distributes messages between all instances through postgres LISTEN/NOTIFY.
// Messages are fire and forget. A message published while no instance listens is lost.
type PostgreSQLBroker struct {
	db          *sql.DB
	listener    *pq.Listener
	subscribers map[shared.PubSubChannel][]chan map[string]any
	mu          sync.RWMutex
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	listening   bool
	id          string

	receiveOwnMessages bool
}

func NewPostgreSQLBroker(cfg database.PoolConfig, receiveOwnMessages bool) (*PostgreSQLBroker, error) {
	dsn := cfg.DSN()

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("postgres listener error", "err", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	return &PostgreSQLBroker{
		db:                 db,
		listener:           listener,
		subscribers:        make(map[shared.PubSubChannel][]chan map[string]any),
		ctx:                ctx,
		cancel:             cancel,
		id:                 uuid.New().String(),
		receiveOwnMessages: receiveOwnMessages,
	}, nil
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	msg := envelope{
		ID:        uuid.New().String(),
		Channel:   message.GetChannel(),
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.id,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	if _, err := b.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", string(msg.Channel), string(body)); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "topic", msg.Channel, "messageID", msg.ID)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(topic shared.PubSubChannel) (<-chan map[string]any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan map[string]any, 100)

	if _, exists := b.subscribers[topic]; !exists {
		if err := b.listener.Listen(string(topic)); err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to listen on topic %s: %w", topic, err)
		}
		slog.Info("started listening on topic", "topic", topic)
	}
	b.subscribers[topic] = append(b.subscribers[topic], ch)

	if !b.listening {
		b.listening = true
		b.wg.Add(1)
		go b.processMessages()
	}

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages() {
	defer b.wg.Done()

	ticker := time.NewTicker(90 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-b.ctx.Done():
			return
		case notification := <-b.listener.Notify:
			// nil after a reconnect
			if notification != nil {
				b.handleNotification(notification)
			}
		case <-ticker.C:
			if err := b.listener.Ping(); err != nil {
				slog.Error("failed to ping listener", "err", err)
			}
		}
	}
}

func (b *PostgreSQLBroker) handleNotification(notification *pq.Notification) {
	var msg envelope
	if err := json.Unmarshal([]byte(notification.Extra), &msg); err != nil {
		slog.Error("failed to unmarshal message", "err", err, "payload", notification.Extra)
		return
	}

	if msg.SenderID == b.id && !b.receiveOwnMessages {
		return
	}

	b.distribute(shared.PubSubChannel(notification.Channel), msg.ID, msg.Payload)
}

func (b *PostgreSQLBroker) distribute(topic shared.PubSubChannel, messageID string, payload map[string]any) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, subscriber := range b.subscribers[topic] {
		select {
		case subscriber <- payload:
		default:
			slog.Warn("subscriber channel full, dropping message", "topic", topic, "messageID", messageID)
		}
	}
}

func (b *PostgreSQLBroker) Close() error {
	b.cancel()
	b.wg.Wait()

	b.mu.Lock()
	for topic, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, topic)
	}
	b.mu.Unlock()

	if err := b.listener.Close(); err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}
	return b.db.Close()
}
