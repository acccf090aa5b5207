package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOtelEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on "} {
		t.Setenv("OTEL_ENABLED", v)
		assert.True(t, otelEnabled(), v)
	}
	for _, v := range []string{"", "0", "false", "maybe"} {
		t.Setenv("OTEL_ENABLED", v)
		assert.False(t, otelEnabled(), v)
	}
}

func TestOtelSampleRatio(t *testing.T) {
	tests := map[string]float64{"": 1, "0.25": 0.25, "-3": 0, "7": 1, "junk": 1}
	for in, want := range tests {
		t.Setenv("OTEL_SAMPLER_RATIO", in)
		assert.Equal(t, want, otelSampleRatio(), in)
	}
}

func TestOtelHeaders(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-api=abc, bad, =nokey, x-team = study ")
	assert.Equal(t, map[string]string{"x-api": "abc", "x-team": "study"}, otelHeaders())

	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")
	assert.Nil(t, otelHeaders())
}

func TestInitOTel_DisabledIsNoop(t *testing.T) {
	t.Setenv("OTEL_ENABLED", "")
	shutdown := InitOTel(context.Background(), nil, OtelConfig{})
	if assert.NotNil(t, shutdown) {
		assert.NoError(t, shutdown(context.Background()))
	}
}
