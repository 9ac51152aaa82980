package logd

import (
	"encoding/json"
	"io"
	"os"
	"strings"
)

const (
	stacktraceKey   = "stacktrace"
	errorVerboseKey = "errorVerbose"
)

type prettyLogWriter struct {
	writer io.Writer
}

type Option func(*prettyLogWriter)

func WithWriter(writer io.Writer) Option {
	return func(w *prettyLogWriter) {
		w.writer = writer
	}
}

// NewPrettyLogWriter writes log lines to stderr unless another writer is given.
// pkg/errors stack traces end up under the stacktrace key with real line breaks.
func NewPrettyLogWriter(opts ...Option) io.Writer {
	w := &prettyLogWriter{writer: os.Stderr}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *prettyLogWriter) Write(payload []byte) (int, error) {
	pretty, err := replaceDuplicatedStacktrace(payload)
	if err != nil {
		// not json, write without modification
		return w.writer.Write(payload)
	}

	_, err = io.WriteString(w.writer, prettify(pretty))

	// zap treats short writes as errors, so report the original length
	return len(payload), err
}

func prettify(payload []byte) string {
	message := string(payload)
	message = strings.ReplaceAll(message, "\\n", "\n")
	message = strings.ReplaceAll(message, "\\t", "\t")

	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}

	return message
}

func replaceDuplicatedStacktrace(payload []byte) ([]byte, error) {
	var document map[string]any

	err := json.Unmarshal(payload, &document)
	if err != nil {
		return nil, err
	}

	if errorVerbose, ok := document[errorVerboseKey]; ok {
		document[stacktraceKey] = errorVerbose
		delete(document, errorVerboseKey)
	}

	return json.Marshal(document)
}
