package health

import (
	"context"
	"time"

	"github.com/gebeta-delivery/gebeta/internal/pkg/database"
	"github.com/gebeta-delivery/gebeta/internal/pkg/logger"
	natspkg "github.com/gebeta-delivery/gebeta/internal/pkg/nats"
)

// Status of a single dependency check
type Status string

const (
	StatusUp   Status = "up"
	StatusDown Status = "down"
)

// CheckResult is the outcome of one dependency check
type CheckResult struct {
	Status    Status    `json:"status"`
	Error     string    `json:"error,omitempty"`
	LatencyMs int64     `json:"latency_ms"`
	CheckedAt time.Time `json:"checked_at"`
}

// Checker verifies one dependency
type Checker interface {
	Check(ctx context.Context) error
}

// Service runs registered checkers and aggregates their results
type Service struct {
	logger   *logger.ZapLogger
	checkers map[string]Checker
}

// NewHealthService creates a health service
func NewHealthService(zl *logger.ZapLogger) *Service {
	return &Service{
		logger:   zl,
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a named dependency checker
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// CheckAll runs every checker with a per-check timeout
func (s *Service) CheckAll(ctx context.Context) (map[string]CheckResult, bool) {
	results := make(map[string]CheckResult, len(s.checkers))
	healthy := true

	for name, checker := range s.checkers {
		checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		start := time.Now()
		err := checker.Check(checkCtx)
		cancel()

		result := CheckResult{
			Status:    StatusUp,
			LatencyMs: time.Since(start).Milliseconds(),
			CheckedAt: time.Now(),
		}
		if err != nil {
			result.Status = StatusDown
			result.Error = err.Error()
			healthy = false
			s.logger.Warn("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
		}
		results[name] = result
	}

	return results, healthy
}

// PostgresHealthChecker checks the Postgres connection
type PostgresHealthChecker struct {
	client *database.PostgresClient
}

// NewPostgresHealthChecker creates a Postgres checker
func NewPostgresHealthChecker(client *database.PostgresClient) *PostgresHealthChecker {
	return &PostgresHealthChecker{client: client}
}

func (c *PostgresHealthChecker) Check(ctx context.Context) error {
	return c.client.Ping(ctx)
}

// RedisHealthChecker checks the Redis connection
type RedisHealthChecker struct {
	client *database.RedisClient
}

// NewRedisHealthChecker creates a Redis checker
func NewRedisHealthChecker(client *database.RedisClient) *RedisHealthChecker {
	return &RedisHealthChecker{client: client}
}

func (c *RedisHealthChecker) Check(ctx context.Context) error {
	return c.client.Ping(ctx)
}

// NATSHealthChecker checks the NATS connection
type NATSHealthChecker struct {
	client *natspkg.Client
}

// NewNATSHealthChecker creates a NATS checker
func NewNATSHealthChecker(client *natspkg.Client) *NATSHealthChecker {
	return &NATSHealthChecker{client: client}
}

func (c *NATSHealthChecker) Check(ctx context.Context) error {
	if !c.client.IsConnected() {
		return ErrNATSDisconnected
	}
	return nil
}
