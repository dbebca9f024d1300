package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Checker defines the interface for checking store connectivity.
type Checker interface {
	Ping(ctx context.Context) error
}

// RedisChecker adapts redis.Client to Checker.
type RedisChecker struct {
	client *redis.Client
}

// NewRedisChecker creates a new Redis health checker.
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client}
}

// Ping checks Redis connectivity.
func (r *RedisChecker) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// PostgresChecker adapts a pgx pool to Checker.
type PostgresChecker struct {
	pool *pgxpool.Pool
}

// NewPostgresChecker creates a new Postgres health checker.
func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

// Ping checks Postgres connectivity.
func (p *PostgresChecker) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Handler handles health check operations.
type Handler struct {
	store Checker
}

// NewHandler creates a new health handler.
func NewHandler(store Checker) *Handler {
	return &Handler{store: store}
}

// Response is the response for the health check endpoint.
type Response struct {
	Body struct {
		Status string `json:"status"`
		Store  string `json:"store"`
	}
}

// Check reports the health of the process and its record store.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"

	if err := h.store.Ping(ctx); err != nil {
		resp.Body.Store = "unhealthy"
		resp.Body.Status = "degraded"
	} else {
		resp.Body.Store = "healthy"
	}

	return resp, nil
}

// RegisterRoutes registers health check routes.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
