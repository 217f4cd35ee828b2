package config

import (
	"encoding/json"
	"strings"

	"github.com/spf13/viper"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string][]string{
	"app_name":            {"PROJECT_NAME"},
	"environment":         {"ENVIRONMENT", "GIN_MODE"},
	"server.host":         {"HOST"},
	"server.port":         {"PORT"},
	"server.api_prefix":   {"API_V1_STR"},
	"server.cors_origins": {"BACKEND_CORS_ORIGINS"},

	"logger.level":       {"LOG_LEVEL"},
	"logger.format":      {"LOG_FORMAT"},
	"logger.output":      {"LOG_OUTPUT"},
	"logger.output_file": {"LOG_FILE"},

	"data.database.main.driver":   {"DB_DRIVER"},
	"data.database.main.source":   {"DATABASE_URL"},
	"data.database.main.host":     {"MYSQL_HOST"},
	"data.database.main.port":     {"MYSQL_PORT"},
	"data.database.main.user":     {"MYSQL_USER"},
	"data.database.main.password": {"MYSQL_PASSWORD"},
	"data.database.main.database": {"MYSQL_DATABASE"},

	"data.database.analytics.driver":   {"DB_ANALYTICS_DRIVER"},
	"data.database.analytics.source":   {"ANALYTICS_DATABASE_URL"},
	"data.database.analytics.host":     {"MYSQL_ANALYTICS_HOST"},
	"data.database.analytics.port":     {"MYSQL_ANALYTICS_PORT"},
	"data.database.analytics.user":     {"MYSQL_ANALYTICS_USER"},
	"data.database.analytics.password": {"MYSQL_ANALYTICS_PASSWORD"},
	"data.database.analytics.database": {"MYSQL_ANALYTICS_DATABASE"},

	"data.database.logs.driver":   {"DB_LOGS_DRIVER"},
	"data.database.logs.source":   {"LOGS_DATABASE_URL"},
	"data.database.logs.host":     {"MYSQL_LOGS_HOST"},
	"data.database.logs.port":     {"MYSQL_LOGS_PORT"},
	"data.database.logs.user":     {"MYSQL_LOGS_USER"},
	"data.database.logs.password": {"MYSQL_LOGS_PASSWORD"},
	"data.database.logs.database": {"MYSQL_LOGS_DATABASE"},

	"data.database.pool_size":    {"DB_POOL_SIZE"},
	"data.database.max_overflow": {"DB_MAX_OVERFLOW"},
	"data.database.pool_timeout": {"DB_POOL_TIMEOUT"},
	"data.database.pool_recycle": {"DB_POOL_RECYCLE"},

	"data.redis.addr":     {"REDIS_ADDR"},
	"data.redis.password": {"REDIS_PASSWORD"},
	"data.redis.db":       {"REDIS_DB"},

	"observes.sentry.dsn":      {"SENTRY_DSN"},
	"observes.tracer.endpoint": {"OTEL_EXPORTER_OTLP_ENDPOINT"},
}

func bindEnv(v *viper.Viper) {
	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_name", "monoapi")
	v.SetDefault("environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.api_prefix", "/api/v1")
	v.SetDefault("server.cors_origins", "http://localhost:3000,http://localhost:8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("logger.level", "INFO")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.db_level", "WARNING")

	for name, db := range map[string]string{"main": "mono_api_main", "analytics": "mono_api_analytics", "logs": "mono_api_logs"} {
		prefix := "data.database." + name
		v.SetDefault(prefix+".driver", "mysql")
		v.SetDefault(prefix+".host", "localhost")
		v.SetDefault(prefix+".port", 3306)
		v.SetDefault(prefix+".user", "root")
		v.SetDefault(prefix+".database", db)
	}
	v.SetDefault("data.database.pool_size", 10)
	v.SetDefault("data.database.max_overflow", 20)
	v.SetDefault("data.database.pool_timeout", 30)
	v.SetDefault("data.database.pool_recycle", 3600)
	v.SetDefault("data.database.migrate", true)

	v.SetDefault("data.redis.item_ttl", "5m")

	v.SetDefault("observes.tracer.sampling_rate", 1.0)
	v.SetDefault("observes.tracer.batch_timeout", "5s")
	v.SetDefault("observes.tracer.export_timeout", "30s")
	v.SetDefault("observes.tracer.max_export_batch_size", 512)
	v.SetDefault("observes.sentry.sample_rate", 1.0)
}

// getStringList reads a list given either as a yaml list, a JSON array string
// or a comma separated string.
func getStringList(v *viper.Viper, key string) []string {
	raw, ok := v.Get(key).(string)
	if !ok {
		return v.GetStringSlice(key)
	}

	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			return list
		}
	}

	var list []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			list = append(list, part)
		}
	}
	return list
}
