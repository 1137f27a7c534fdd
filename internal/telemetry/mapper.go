// Package telemetry instruments mapping calls with OpenTelemetry spans.
package telemetry

import (
	"context"
	"errors"

	"github.com/dklassen/mapreg"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/dklassen/mapreg"

// Span attribute keys.
const (
	AttrSourceType = attribute.Key("mapreg.source_type")
	AttrTargetType = attribute.Key("mapreg.target_type")
	AttrErrorKind  = attribute.Key("mapreg.error_kind")
)

// Error kinds recorded on failed spans.
const (
	ErrorKindNotFound  = "not_found"
	ErrorKindExecution = "execution"
	ErrorKindOther     = "other"
)

// TracedMapper wraps a mapreg.Mapper and records one span per Map call.
type TracedMapper struct {
	next   mapreg.Mapper
	tracer trace.Tracer
}

var _ mapreg.Mapper = (*TracedMapper)(nil)

// NewTracedMapper wraps next. A nil provider falls back to the global one.
func NewTracedMapper(next mapreg.Mapper, provider trace.TracerProvider) *TracedMapper {
	if provider == nil {
		provider = otel.GetTracerProvider()
	}
	return &TracedMapper{
		next:   next,
		tracer: provider.Tracer(instrumentationName),
	}
}

// Map satisfies mapreg.Mapper using a background context.
func (m *TracedMapper) Map(data any, source, target mapreg.TypeID) (any, error) {
	return m.MapContext(context.Background(), data, source, target)
}

// MapContext maps data under a "mapreg.Map" span parented to ctx.
func (m *TracedMapper) MapContext(ctx context.Context, data any, source, target mapreg.TypeID) (any, error) {
	if m == nil || m.next == nil {
		return nil, mapreg.ErrRegistryNil
	}
	_, span := m.tracer.Start(ctx, "mapreg.Map", trace.WithAttributes(
		AttrSourceType.String(string(source)),
		AttrTargetType.String(string(target)),
	))
	defer span.End()

	result, err := m.next.Map(data, source, target)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(AttrErrorKind.String(errorKind(err)))
		return nil, err
	}
	return result, nil
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, mapreg.ErrMappingNotFound):
		return ErrorKindNotFound
	case errors.Is(err, mapreg.ErrMappingExecution):
		return ErrorKindExecution
	default:
		return ErrorKindOther
	}
}
