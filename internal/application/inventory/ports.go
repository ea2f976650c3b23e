package inventory

import "github.com/rs/zerolog"

// Logger puerto de logging del caso de uso. *logger.Logger lo implementa;
// en tests puede usarse cualquier sink de zerolog.
type Logger interface {
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}
