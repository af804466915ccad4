package otel

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "feedengine"

// Tracer returns the tracer used for spans around store and search calls.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
