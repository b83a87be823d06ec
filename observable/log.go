package observable

import "github.com/rs/zerolog"

const (
	SOURCE_LOG_FIELD_NAME = "src"
	SEQUENCE_LOG_SRC      = "observable-sequence"
)

func childLoggerForSource(logger zerolog.Logger, src string) zerolog.Logger {
	return logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}
