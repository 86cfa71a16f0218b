// Package tracing wraps OpenTelemetry so batch generation and HTTP requests
// can be traced without the rest of the code importing the SDK directly.
package tracing
