// Package middleware holds the gin middleware of the API server.
//
// The server installs them in this order:
//
//	Recovery, RequestID, ProcessingTime, Tracing, Metrics, Logger, APILogger, CORS
package middleware
