package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Component etiqueta todas las líneas del sublogger con el componente.
func TestComponent_EtiquetaElSublogger(t *testing.T) {
	var buf bytes.Buffer
	zl := New(Config{Env: "production", Level: "info"}).
		Component("numbering").
		Zerolog().
		Output(&buf)

	zl.Info().Str("strategy", "sequence").Msg("numeración configurada")

	line := buf.String()
	require.NotEmpty(t, line)
	assert.Contains(t, line, `"component":"numbering"`)
	assert.Contains(t, line, `"strategy":"sequence"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warn"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("cualquier otra cosa"))
}
