package telemetry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/esb/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

const timeResolution = time.Millisecond

// LogBridge reports finished spans to the logger at debug level.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a new LogBridge.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, its duration and its attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.logger == nil || !s.SpanContext().IsValid() {
		return
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "%s finished in %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(timeResolution))

	for _, attr := range s.Attributes() {
		fmt.Fprintf(&msg, " %s=%s", attr.Key, attr.Value.Emit())
	}

	if s.Status().Code == codes.Error {
		desc := s.Status().Description
		if desc == "" {
			desc = "unknown error"
		}
		fmt.Fprintf(&msg, " (failed: %s)", desc)
	}

	b.logger.Debug(msg.String())
}

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(_ context.Context) error {
	return nil
}
