package metrics

import "github.com/google/wire"

// ProviderSet is the wire provider set for the metrics package.
var ProviderSet = wire.NewSet(New)
