package data

import (
	"context"
	"time"
)

// Ping checks every database and returns the failures by name.
func (d *Data) Ping(ctx context.Context) map[string]error {
	failures := make(map[string]error)
	for _, name := range []string{MainDB, AnalyticsDB, LogsDB} {
		if err := d.ping(ctx, name); err != nil {
			failures[name] = err
		}
	}
	return failures
}

func (d *Data) ping(ctx context.Context, name string) error {
	sqlDB, err := sqlHandle(d.DB(name))
	if err != nil {
		return err
	}
	if sqlDB == nil {
		return errNotConnected
	}
	return sqlDB.PingContext(ctx)
}

// Health reports the state of every database and of redis.
func (d *Data) Health(ctx context.Context) map[string]any {
	health := map[string]any{
		"timestamp": time.Now(),
	}

	databases := make(map[string]any)
	overallHealthy := true

	for _, name := range []string{MainDB, AnalyticsDB, LogsDB} {
		start := time.Now()
		err := d.ping(ctx, name)
		healthy := err == nil
		if !healthy {
			overallHealthy = false
		}
		databases[name] = map[string]any{
			"healthy":     healthy,
			"response_ms": time.Since(start).Milliseconds(),
			"error":       getErrorString(err),
		}
	}
	health["databases"] = databases

	// Redis is optional and does not degrade the service.
	if d.Redis != nil {
		err := d.Redis.Ping(ctx).Err()
		health["redis"] = map[string]any{
			"healthy": err == nil,
			"error":   getErrorString(err),
		}
	}

	if overallHealthy {
		health["status"] = "healthy"
	} else {
		health["status"] = "degraded"
	}
	return health
}

func getErrorString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
