// Package health exposes a liveness probe with dependency status.
package health

import (
	"context"
	"runtime"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var startedAt = time.Now()

type DepStatus struct {
	Status string      `json:"status"`
	PingMs interface{} `json:"pingMs"`
}

type Result struct {
	Status       string               `json:"status"`
	UptimeSec    int64                `json:"uptimeSeconds"`
	GoVersion    string               `json:"goVersion"`
	Dependencies map[string]DepStatus `json:"dependencies"`
}

type Handlers struct {
	DB  *gorm.DB
	Rdb *redis.Client
}

// GET /health/json
func (h *Handlers) JSON(c *fiber.Ctx) error {
	deps := map[string]DepStatus{
		"database": h.pingDB(),
		"redis":    h.pingRedis(c.Context()),
	}

	status := "ok"
	for _, d := range deps {
		if d.Status != "connected" {
			status = "degraded"
		}
	}

	return c.JSON(Result{
		Status:       status,
		UptimeSec:    int64(time.Since(startedAt).Seconds()),
		GoVersion:    runtime.Version(),
		Dependencies: deps,
	})
}

func (h *Handlers) pingDB() DepStatus {
	if h.DB == nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	sqlDB, err := h.DB.DB()
	if err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	start := time.Now()
	if err := sqlDB.Ping(); err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}

func (h *Handlers) pingRedis(ctx context.Context) DepStatus {
	if h.Rdb == nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	start := time.Now()
	if err := h.Rdb.Ping(ctx).Err(); err != nil {
		return DepStatus{Status: "disconnected", PingMs: nil}
	}
	return DepStatus{Status: "connected", PingMs: time.Since(start).Milliseconds()}
}
