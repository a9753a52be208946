package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestShouldSkipUptraceLog(t *testing.T) {
	assert.True(t, shouldSkipUptraceLog("http request", map[string]any{"path": "/healthz"}))
	assert.False(t, shouldSkipUptraceLog("http request", map[string]any{"path": "/v1/matches/live"}))
	assert.False(t, shouldSkipUptraceLog("upstream request failed", map[string]any{"path": "/healthz"}))
}

func TestBuildOTelLogAttributes_SortedByKey(t *testing.T) {
	attrs := buildOTelLogAttributes(map[string]any{
		"api":     "Live Matches",
		"attempt": int64(2),
		"payload": nil,
	})
	require.Len(t, attrs, 3)
	assert.Equal(t, "api", attrs[0].Key)
	assert.Equal(t, "Live Matches", attrs[0].Value.AsString())
	assert.Equal(t, "attempt", attrs[1].Key)
	assert.Equal(t, int64(2), attrs[1].Value.AsInt64())
	assert.Equal(t, otellog.KindEmpty, attrs[2].Value.Kind())
}

func TestToOTelLogValue_Map(t *testing.T) {
	v := toOTelLogValue(map[string]any{
		"goals": 3,
		"home":  true,
	}, 0)
	require.Equal(t, otellog.KindMap, v.Kind())
	assert.Len(t, v.AsMap(), 2)
}

func TestUptraceLogCore_RespectsLevelAndKeepsFields(t *testing.T) {
	core := newUptraceLogCore("test", zapcore.WarnLevel)
	assert.False(t, core.Enabled(zapcore.InfoLevel))
	assert.True(t, core.Enabled(zapcore.ErrorLevel))

	child := core.With([]zapcore.Field{zap.String("service", "football-hub-api")})
	require.IsType(t, &uptraceLogCore{}, child)
	assert.Len(t, child.(*uptraceLogCore).fields, 1)
	assert.Empty(t, core.(*uptraceLogCore).fields)

	entry := zapcore.Entry{Level: zapcore.ErrorLevel, Message: "upstream request failed", Time: time.Now()}
	assert.NoError(t, child.Write(entry, []zapcore.Field{zap.String("api", "Live Matches")}))
}
