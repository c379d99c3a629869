// Package ordex is an embeddable client for the order store: the same read
// model the HTTP API serves, plus document writes and index lifecycle for
// offline tooling, without going through HTTP.
package ordex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/ordex/internal/db"
	dbRedis "github.com/kailas-cloud/ordex/internal/db/redis"
	"github.com/kailas-cloud/ordex/internal/domain/order"
	"github.com/kailas-cloud/ordex/internal/domain/search"
	orderrepo "github.com/kailas-cloud/ordex/internal/repository/order"
	"github.com/kailas-cloud/ordex/internal/schema"
	healthuc "github.com/kailas-cloud/ordex/internal/usecase/health"
	orderuc "github.com/kailas-cloud/ordex/internal/usecase/order"
)

const defaultReadinessTimeout = 10 * time.Second

// Option configures the Client.
type Option interface {
	apply(*clientConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*clientConfig)

func (f optionFunc) apply(c *clientConfig) { f(c) }

type clientConfig struct {
	addrs    []string
	username string
	password string

	alias            string
	codec            order.Codec
	logger           *zap.Logger
	readinessTimeout time.Duration
}

// WithRedis configures the client to connect to a Redis instance.
func WithRedis(addr, username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = []string{addr}
		c.username = username
		c.password = password
	})
}

// WithAddrs sets the database addresses directly, e.g. for cluster setups.
func WithAddrs(addrs ...string) Option {
	return optionFunc(func(c *clientConfig) {
		c.addrs = addrs
	})
}

// WithRedisAuth sets the database credentials. Empty values mean no auth.
func WithRedisAuth(username, password string) Option {
	return optionFunc(func(c *clientConfig) {
		c.username = username
		c.password = password
	})
}

// WithAlias overrides the search alias reads go through.
// Defaults to the standard read alias.
func WithAlias(alias string) Option {
	return optionFunc(func(c *clientConfig) {
		c.alias = alias
	})
}

// WithCodec overrides the field redaction codec.
func WithCodec(codec order.Codec) Option {
	return optionFunc(func(c *clientConfig) {
		c.codec = codec
	})
}

// WithLogger enables structured logging for client operations.
// Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *clientConfig) {
		c.logger = l
	})
}

// WithReadinessTimeout bounds how long New waits for the database.
func WithReadinessTimeout(d time.Duration) Option {
	return optionFunc(func(c *clientConfig) {
		c.readinessTimeout = d
	})
}

// Client is the ordex client entry point.
type Client struct {
	store  db.Store
	orders *orderuc.Service
	health *healthuc.Service
	alias  string
	logger *zap.Logger
}

// New creates a Client and connects to the database.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{
		alias:            schema.SearchAlias,
		codec:            order.Base64Codec{},
		logger:           zap.NewNop(),
		readinessTimeout: defaultReadinessTimeout,
	}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("ordex: database address required (use WithRedis or WithAddrs)")
	}

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.addrs,
		Username: cfg.username,
		Password: cfg.password,
	})
	if err != nil {
		return nil, fmt.Errorf("ordex: create store: %w", err)
	}

	if err := store.WaitForReady(context.Background(), cfg.readinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("ordex: database not ready: %w", err)
	}

	return wireClient(store, cfg), nil
}

func wireClient(store db.Store, cfg *clientConfig) *Client {
	repo := orderrepo.New(store, cfg.alias, cfg.logger)
	return &Client{
		store:  store,
		orders: orderuc.New(repo, cfg.codec, cfg.logger),
		health: healthuc.New(store),
		alias:  cfg.alias,
		logger: cfg.logger,
	}
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Health runs the component health checks.
func (c *Client) Health(ctx context.Context) healthuc.Report {
	return c.health.Check(ctx)
}

// GetOrder fetches one order by id. Sensitive fields come back redacted.
func (c *Client) GetOrder(ctx context.Context, orderID string) (order.Order, error) {
	return c.orders.GetByID(ctx, orderID)
}

// SearchOrders runs a filtered search over the read alias.
func (c *Client) SearchOrders(ctx context.Context, params search.Params) (orderuc.Page, error) {
	f, err := search.NewFilters(params)
	if err != nil {
		return orderuc.Page{}, err
	}
	return c.orders.Search(ctx, f)
}

// PutOrder validates and writes one order document under its canonical key.
func (c *Client) PutOrder(ctx context.Context, o order.Order) error {
	if err := o.Validate(); err != nil {
		return fmt.Errorf("put order %s: %w", o.OrderID, err)
	}

	payload, err := json.Marshal(map[string]order.Order{schema.DocumentRoot: o})
	if err != nil {
		return fmt.Errorf("marshal order %s: %w", o.OrderID, err)
	}

	key := schema.DocKey(o.OrderID)
	if err := c.store.JSONSet(ctx, key, "$", payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Indexes returns the index lifecycle service.
func (c *Client) Indexes() *IndexService {
	return &IndexService{store: c.store, alias: c.alias, logger: c.logger}
}
