package badger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerLogger_DemotesInfo(t *testing.T) {
	var buf bytes.Buffer
	l := &badgerLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))}

	l.Infof("All %d tables opened in %s\n", 0, "0s")
	l.Debugf("replaying WAL")
	assert.Empty(t, buf.String())

	l.Warningf("value log %s truncated", "000001.vlog")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "000001.vlog truncated")
}

func TestOpen_QuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig(t.TempDir())
	cfg.Logger = slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	db, err := Open(cfg)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	assert.NotContains(t, buf.String(), "level=INFO")
}
