//go:build wireinject

package server

import (
	"github.com/google/wire"
	"github.com/ncobase/monoapi/config"
	"github.com/ncobase/monoapi/data"
	"github.com/ncobase/monoapi/data/cache"
	"github.com/ncobase/monoapi/internal/handler"
	"github.com/ncobase/monoapi/internal/service"
	"github.com/ncobase/monoapi/logging/logger"
	"github.com/ncobase/monoapi/metrics"
)

// InitializeServer wires the server with its config, logger, databases,
// metrics, services and handlers. The cleanup function releases them in
// reverse order.
func InitializeServer() (*Server, func(), error) {
	panic(wire.Build(
		config.ProviderSet,
		logger.ProviderSet,
		data.ProviderSet,
		metrics.ProviderSet,
		wire.Bind(new(cache.Collector), new(*metrics.Metrics)),
		service.NewService,
		handler.NewHandler,
		NewServer,
	))
}
