package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	original := logrus.StandardLogger().Out
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(original) })

	SetupTestLogger()
	return buf
}

func TestForContext_RunAndCorrelationIDs(t *testing.T) {
	buf := captureOutput(t)

	ctx, correlationID := WithCorrelationID(context.Background())
	ctx = WithRunID(ctx, "abc123")

	ForContext(ctx).Info("mensagem")

	assert.Equal(t, correlationID, GetCorrelationID(ctx))
	assert.Equal(t, "abc123", GetRunID(ctx))
	assert.Contains(t, buf.String(), "run_id=abc123")
	assert.Contains(t, buf.String(), "correlation_id="+correlationID)
}

func TestWithFields_DevelopmentFiltersNoise(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{"step": "extract_data", "query": "SELECT 1"}).Info("filtrado")

	assert.Contains(t, buf.String(), "step=extract_data")
	assert.NotContains(t, buf.String(), "query=")
}

func TestWithFields_ProductionKeepsAll(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithFields(Fields{"step": "send_report", "chat_id": 42}).Info("completo")

	assert.Contains(t, buf.String(), "chat_id=42")
	assert.Contains(t, buf.String(), "step=send_report")
}

func TestWithStep(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ForContext(WithRunID(context.Background(), "run42")).WithStep("transform_and_plot").Warn("etapa lenta")

	assert.Contains(t, buf.String(), "step=transform_and_plot")
	assert.Contains(t, buf.String(), "run_id=run42")
}
