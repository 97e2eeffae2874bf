package border

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestLogger(t *testing.T) {
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))

	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	_, err := Analyze("M0 0C10 10 20 -10 30 0L30 20L0 20Z", testEdges, DefaultOptions)
	test.Error(t, err)
	test.That(t, strings.Contains(buf.String(), "split curve at inflections"), buf.String())
	test.That(t, strings.Contains(buf.String(), "analyzed path"), buf.String())

	SetLogger(nil)
	test.That(t, !Logger().Enabled(context.Background(), slog.LevelError))
}
