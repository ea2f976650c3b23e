package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// TimeFormat formato de fecha de las líneas del archivo de log.
const TimeFormat = "2006-01-02 15:04:05.000"

// Config opciones para el logger.
type Config struct {
	Env   string // development -> además copia legible en stderr
	Level string // trace, debug, info, warn, error
	File  string // archivo de log en texto (append); vacío = solo stderr
}

// Logger wrapper sobre zerolog para inyección y consistencia.
type Logger struct {
	zl   zerolog.Logger
	file io.Closer
}

// New crea un logger con líneas de texto fechadas y con nivel (INFO, WARNING, ERROR)
// en cfg.File. En development también escribe en stderr con color.
func New(cfg Config) (*Logger, error) {
	var writers []io.Writer
	var file *os.File
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("abrir archivo de log %s: %w", cfg.File, err)
		}
		file = f
		writers = append(writers, fileWriter(f))
	}
	if cfg.Env == "development" || len(writers) == 0 {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: TimeFormat})
	}

	level := parseLevel(cfg.Level)
	zl := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()

	// Redirigir el logger global de zerolog para librerías que lo usen
	log.Logger = zl

	l := &Logger{zl: zl}
	if file != nil {
		l.file = file
	}
	return l, nil
}

// NewWithWriter crea un logger JSON sobre w (tests, integraciones).
func NewWithWriter(w io.Writer, level string) *Logger {
	return &Logger{zl: zerolog.New(w).Level(parseLevel(level)).With().Timestamp().Logger()}
}

// fileWriter salida de texto plano para el archivo de log:
// "2026-10-14 10:00:00.000 INFO load_data: ... file=inventory.json"
func fileWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:         w,
		NoColor:     true,
		TimeFormat:  TimeFormat,
		FormatLevel: formatLevel,
	}
}

func formatLevel(i interface{}) string {
	s, _ := i.(string)
	switch s {
	case zerolog.LevelWarnValue:
		return "WARNING"
	case "":
		return "-"
	default:
		return strings.ToUpper(s)
	}
}

func parseLevel(s string) zerolog.Level {
	switch s {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// Debug, Info, Warn, Error delegados a zerolog.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// WithSession devuelve un logger que marca cada línea con el id de sesión.
// Comparte el archivo con l; solo l debe cerrarse.
func (l *Logger) WithSession(id string) *Logger {
	return &Logger{zl: l.zl.With().Str("session", id).Logger()}
}

// Close cierra el archivo de log si existe.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
