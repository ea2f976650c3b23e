package logger_test

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-store/pkg/logger"
)

func TestNew_ArchivoTextoConNiveles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.log")

	log, err := logger.New(logger.Config{Env: "production", Level: "info", File: path})
	require.NoError(t, err)
	log.Info().Str("item", "apple").Msg("add_item: added")
	log.Warn().Msg("remove_item: item inexistente")
	log.Error().Msg("save_data: fallo")
	log.Debug().Msg("no debe aparecer")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	stamp := `^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3} `
	assert.Regexp(t, regexp.MustCompile(stamp+`INFO add_item: added item=apple$`), lines[0])
	assert.Regexp(t, regexp.MustCompile(stamp+`WARNING remove_item: item inexistente$`), lines[1])
	assert.Regexp(t, regexp.MustCompile(stamp+`ERROR save_data: fallo$`), lines[2])
}

func TestNew_ArchivoAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.log")

	for i := 0; i < 2; i++ {
		log, err := logger.New(logger.Config{Level: "info", File: path})
		require.NoError(t, err)
		log.Info().Msg("run")
		require.NoError(t, log.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "INFO run"))
}

func TestNew_ArchivoInvalido(t *testing.T) {
	_, err := logger.New(logger.Config{File: filepath.Join(t.TempDir(), "no-existe", "x.log")})
	assert.Error(t, err)
}

func TestWithSession_AgregaCampo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "info").WithSession("abc-123")

	log.Info().Msg("hola")

	assert.Contains(t, buf.String(), `"session":"abc-123"`)
	assert.Contains(t, buf.String(), `"level":"info"`)
}

func TestNewWithWriter_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "verbose")

	log.Debug().Msg("oculto")
	log.Info().Msg("visible")

	assert.NotContains(t, buf.String(), "oculto")
	assert.Contains(t, buf.String(), "visible")
}
