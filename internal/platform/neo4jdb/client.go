package neo4jdb

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/yungbote/storefront-graph/internal/platform/envutil"
	"github.com/yungbote/storefront-graph/internal/platform/logger"
)

// Config carries everything needed to reach one Neo4j database. It is
// passed explicitly; nothing in this package holds process-wide state.
type Config struct {
	URI            string
	User           string
	Password       string
	Database       string
	TimeoutSeconds int
	MaxPoolSize    int
}

func FromEnv() Config {
	return Config{
		URI:            envutil.String("NEO4J_URI", ""),
		User:           envutil.String("NEO4J_USER", "neo4j"),
		Password:       envutil.String("NEO4J_PASSWORD", ""),
		Database:       envutil.String("NEO4J_DATABASE", "knowledge-graph"),
		TimeoutSeconds: envutil.Int("NEO4J_TIMEOUT_SECONDS", 10),
		MaxPoolSize:    envutil.Int("NEO4J_MAX_POOL_SIZE", 50),
	}
}

type Client struct {
	Driver   neo4j.DriverWithContext
	Database string
	log      *logger.Logger
}

func Connect(ctx context.Context, cfg Config, log *logger.Logger) (*Client, error) {
	if log == nil {
		return nil, fmt.Errorf("neo4jdb: logger required")
	}
	if strings.TrimSpace(cfg.URI) == "" {
		return nil, fmt.Errorf("neo4jdb: uri required")
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	auth := neo4j.BasicAuth(cfg.User, cfg.Password, "")
	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxPoolSize > 0 {
			c.MaxConnectionPoolSize = cfg.MaxPoolSize
		}
		c.SocketConnectTimeout = timeout
	})
	if err != nil {
		return nil, fmt.Errorf("neo4jdb: init driver: %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4jdb: verify connectivity: %w", err)
	}

	return &Client{
		Driver:   driver,
		Database: cfg.Database,
		log:      log.With("client", "Neo4jDB"),
	}, nil
}

// ConnectWithRetry re-dials a freshly created database that may not be
// ready to accept sessions yet.
func ConnectWithRetry(ctx context.Context, cfg Config, log *logger.Logger, attempts int, wait time.Duration) (*Client, error) {
	if attempts <= 0 {
		attempts = 1
	}
	if wait <= 0 {
		wait = 5 * time.Second
	}
	var lastErr error
	for i := 1; i <= attempts; i++ {
		client, err := Connect(ctx, cfg, log)
		if err == nil {
			return client, nil
		}
		lastErr = err
		log.Warn("neo4j connect failed", "attempt", i, "max_attempts", attempts, "error", err)
		if i == attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("neo4jdb: connect after %d attempts: %w", attempts, lastErr)
}

// EnsureDatabase creates the named database through the system database.
// The caller's client must be bound to "system".
func (c *Client) EnsureDatabase(ctx context.Context, name string) error {
	if c == nil || c.Driver == nil {
		return fmt.Errorf("neo4jdb: nil client")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("neo4jdb: database name required")
	}
	session := c.Driver.NewSession(ctx, neo4j.SessionConfig{
		AccessMode:   neo4j.AccessModeWrite,
		DatabaseName: c.Database,
	})
	defer session.Close(ctx)

	// Backticks tolerate names with dashes.
	query := fmt.Sprintf("CREATE DATABASE `%s` IF NOT EXISTS", strings.ReplaceAll(name, "`", ""))
	res, err := session.Run(ctx, query, nil)
	if err != nil {
		return fmt.Errorf("neo4jdb: create database %q: %w", name, err)
	}
	if _, err := res.Consume(ctx); err != nil {
		return fmt.Errorf("neo4jdb: create database %q: %w", name, err)
	}
	c.log.Info("database ensured", "database", name)
	return nil
}

func (c *Client) Close(ctx context.Context) error {
	if c == nil || c.Driver == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := c.Driver.Close(ctx)
	c.Driver = nil
	return err
}
