package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/semla/internal/app"
)

func TestNewGSheetExporterIsUsable(t *testing.T) {
	// no schedules configured, the constructor still hands back a live exporter
	e, err := NewGSheetExporter(&app.Config{}, nil)
	require.NoError(t, err)
	require.NotNil(t, e)
	e.Stop()
}

func TestTimestampCell(t *testing.T) {
	now := time.Date(2026, 3, 9, 14, 30, 0, 0, time.UTC)

	t.Run("default format", func(t *testing.T) {
		e := &GSheetExporter{config: &app.Config{}}
		assert.Equal(t, "UPD: 9 March 14:30", e.timestampCell(now))
	})

	t.Run("configured format", func(t *testing.T) {
		cfg := &app.Config{}
		cfg.Display.TimestampFormat = "2006-01-02 15:04"
		e := &GSheetExporter{config: cfg}
		assert.Equal(t, "UPD: 2026-03-09 14:30", e.timestampCell(now))
	})

	t.Run("emoji variant is appended", func(t *testing.T) {
		cfg := &app.Config{EmojiVariants: []string{"🔥"}}
		e := &GSheetExporter{config: cfg}
		cell := e.timestampCell(now)
		assert.True(t, strings.HasSuffix(cell, " 🔥"), "got %q", cell)
	})
}
