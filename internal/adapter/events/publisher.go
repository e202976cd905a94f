// Package events announces committed matches to the rest of the system.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/heartmarshall/reuse-backend/internal/config"
	"github.com/heartmarshall/reuse-backend/internal/domain"
	"github.com/heartmarshall/reuse-backend/pkg/ctxutil"
)

// RoutingKeyMatchCreated is the topic routing key of match.created events.
const RoutingKeyMatchCreated = "match.created"

const defaultReconnectDelay = 5 * time.Second

// ErrNotConnected is returned by MatchCreated while the publisher is
// re-establishing its broker connection.
var ErrNotConnected = errors.New("events: not connected to broker")

type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// session is one broker connection and its publishing channel. closed
// delivers (or is closed) when either of them goes away.
type session struct {
	ch     channel
	closed <-chan *amqp.Error
	close  func() error
}

type dialFunc func() (*session, error)

// MatchCreatedEvent is the JSON body of a match.created message.
type MatchCreatedEvent struct {
	MatchID   string    `json:"matchId"`
	PairKey   string    `json:"pairKey"`
	UserAID   string    `json:"userAId"`
	ItemAID   string    `json:"itemAId"`
	UserBID   string    `json:"userBId"`
	ItemBID   string    `json:"itemBId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Publisher publishes match events to a durable topic exchange. It watches
// its session and re-dials after a broker restart or a channel error.
type Publisher struct {
	dial     dialFunc
	exchange string
	timeout  time.Duration
	retry    time.Duration
	log      *slog.Logger

	mu      sync.RWMutex
	sess    *session
	stopped bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// Dial connects to the broker and declares the exchange.
func Dial(cfg config.EventsConfig, log *slog.Logger) (*Publisher, error) {
	return newPublisher(amqpDialer(cfg.AMQPURL), cfg, log)
}

func amqpDialer(url string) dialFunc {
	return func() (*session, error) {
		conn, err := amqp.Dial(url)
		if err != nil {
			return nil, fmt.Errorf("dial amqp: %w", err)
		}

		ch, err := conn.Channel()
		if err != nil {
			_ = conn.Close()
			return nil, fmt.Errorf("open amqp channel: %w", err)
		}

		return &session{
			ch:     ch,
			closed: ch.NotifyClose(make(chan *amqp.Error, 1)),
			close: func() error {
				err := ch.Close()
				if cerr := conn.Close(); err == nil {
					err = cerr
				}
				if errors.Is(err, amqp.ErrClosed) {
					return nil
				}
				return err
			},
		}, nil
	}
}

func newPublisher(dial dialFunc, cfg config.EventsConfig, log *slog.Logger) (*Publisher, error) {
	p := &Publisher{
		dial:     dial,
		exchange: cfg.Exchange,
		timeout:  cfg.PublishTimeout,
		retry:    cfg.ReconnectDelay,
		log:      log.With("component", "events"),
		done:     make(chan struct{}),
	}
	if p.retry <= 0 {
		p.retry = defaultReconnectDelay
	}

	closed, err := p.connect()
	if err != nil {
		return nil, err
	}

	p.wg.Add(1)
	go p.watch(closed)
	return p, nil
}

// connect dials a new session, declares the exchange on it and installs it.
func (p *Publisher) connect() (<-chan *amqp.Error, error) {
	s, err := p.dial()
	if err != nil {
		return nil, err
	}
	if err := s.ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = s.close()
		return nil, fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stopped {
		_ = s.close()
		return nil, ErrNotConnected
	}
	p.sess = s
	return s.closed, nil
}

func (p *Publisher) watch(closed <-chan *amqp.Error) {
	defer p.wg.Done()

	for {
		select {
		case <-p.done:
			return
		case amqpErr := <-closed:
			p.mu.Lock()
			if p.stopped {
				p.mu.Unlock()
				return
			}
			lost := p.sess
			p.sess = nil
			p.mu.Unlock()
			if lost != nil {
				_ = lost.close()
			}

			attrs := []any{}
			if amqpErr != nil {
				attrs = append(attrs, slog.String("error", amqpErr.Error()))
			}
			p.log.Warn("amqp session closed, reconnecting", attrs...)

			next, ok := p.reconnect()
			if !ok {
				return
			}
			closed = next
		}
	}
}

// reconnect retries connect every p.retry until it succeeds or the
// publisher is closed.
func (p *Publisher) reconnect() (<-chan *amqp.Error, bool) {
	for attempt := 1; ; attempt++ {
		closed, err := p.connect()
		if err == nil {
			p.log.Info("amqp session re-established", slog.Int("attempt", attempt))
			return closed, true
		}
		p.log.Warn("amqp reconnect failed",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()),
		)

		select {
		case <-p.done:
			return nil, false
		case <-time.After(p.retry):
		}
	}
}

// MatchCreated publishes a match.created event for m.
func (p *Publisher) MatchCreated(ctx context.Context, m *domain.Match) error {
	body, err := json.Marshal(MatchCreatedEvent{
		MatchID:   m.ID,
		PairKey:   m.PairKey,
		UserAID:   m.UserAID,
		ItemAID:   m.ItemAID,
		UserBID:   m.UserBID,
		ItemBID:   m.ItemBID,
		CreatedAt: m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal match event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    m.ID,
		Timestamp:    time.Now().UTC(),
		Type:         RoutingKeyMatchCreated,
		Body:         body,
		Headers:      amqp.Table{},
	}
	if rid := ctxutil.RequestIDFromCtx(ctx); rid != "" {
		msg.Headers["x-request-id"] = rid
	}

	p.mu.RLock()
	s := p.sess
	p.mu.RUnlock()
	if s == nil {
		return fmt.Errorf("publish match %s: %w", m.ID, ErrNotConnected)
	}

	publishCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		publishCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := s.ch.PublishWithContext(publishCtx, p.exchange, RoutingKeyMatchCreated, false, false, msg); err != nil {
		return fmt.Errorf("publish match %s: %w", m.ID, err)
	}

	p.log.DebugContext(ctx, "match event published",
		slog.String("match_id", m.ID),
		slog.String("exchange", p.exchange),
	)
	return nil
}

// Close stops reconnecting and closes the current session.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	close(p.done)
	s := p.sess
	p.sess = nil
	p.mu.Unlock()

	p.wg.Wait()
	if s == nil {
		return nil
	}
	return s.close()
}
