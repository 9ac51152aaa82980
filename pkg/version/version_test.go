package version

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/Dynatrace/pizzeria/pkg/logd"
	"github.com/stretchr/testify/assert"
)

func TestLogVersionToLogger(t *testing.T) {
	logBuffer := bytes.Buffer{}
	log := logd.NewToWriter(&logBuffer, logd.InfoLevel)

	LogVersionToLogger(log)

	assert.Contains(t, logBuffer.String(), AppName)
	assert.Contains(t, logBuffer.String(), `"version":"snapshot"`)
	assert.Contains(t, logBuffer.String(), runtime.Version())
}

func TestInfoString(t *testing.T) {
	t.Run("with commit", func(t *testing.T) {
		info := Info{Version: "1.2.0", Commit: "abc123", GoVersion: "go1.24.2", Platform: "linux/amd64"}

		assert.Equal(t, "1.2.0 (commit abc123, go1.24.2, linux/amd64)", info.String())
	})
	t.Run("without commit", func(t *testing.T) {
		info := Info{Version: "snapshot", GoVersion: "go1.24.2", Platform: "linux/arm64"}

		assert.Equal(t, "snapshot (commit unknown, go1.24.2, linux/arm64)", info.String())
	})
	t.Run("defaults", func(t *testing.T) {
		info := Get()

		assert.Equal(t, Version, info.Version)
		assert.Equal(t, runtime.Version(), info.GoVersion)
		assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	})
}
