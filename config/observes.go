package config

import (
	"time"

	"github.com/spf13/viper"
)

// Observes observability config struct
type Observes struct {
	Sentry *Sentry
	Tracer *Tracer
}

// Sentry config struct
type Sentry struct {
	Dsn         string
	Environment string
	Release     string
	SampleRate  float64
}

// Tracer config struct for OpenTelemetry
type Tracer struct {
	Endpoint           string // OTLP gRPC endpoint, empty disables tracing
	SamplingRate       float64
	MaxExportBatchSize int
	BatchTimeout       time.Duration
	ExportTimeout      time.Duration
}

func getObservesConfig(v *viper.Viper) *Observes {
	return &Observes{
		Sentry: &Sentry{
			Dsn:         v.GetString("observes.sentry.dsn"),
			Environment: v.GetString("environment"),
			Release:     v.GetString("observes.sentry.release"),
			SampleRate:  v.GetFloat64("observes.sentry.sample_rate"),
		},
		Tracer: &Tracer{
			Endpoint:           v.GetString("observes.tracer.endpoint"),
			SamplingRate:       v.GetFloat64("observes.tracer.sampling_rate"),
			MaxExportBatchSize: v.GetInt("observes.tracer.max_export_batch_size"),
			BatchTimeout:       v.GetDuration("observes.tracer.batch_timeout"),
			ExportTimeout:      v.GetDuration("observes.tracer.export_timeout"),
		},
	}
}
