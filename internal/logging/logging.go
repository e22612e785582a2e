package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger initializes the zerolog logger with the specified level and
// output format.
func InitLogger(level string, human bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano                 // always initialize base logger with timestamp.
	base := zerolog.New(os.Stderr).With().Timestamp().Logger() // initialize base logger.
	if human {
		log.Logger = base.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		}) // select output format.
	} else {
		log.Logger = base // use JSON logger.
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// LogDerivation logs a completed key derivation with structured fields.
func LogDerivation(ksv string, ksvValid bool, format string) {
	log.Debug().
		Str("event", "keys_derived").
		Str("ksv", ksv).
		Bool("ksv_valid", ksvValid).
		Str("format", format).
		Msg("derived source and sink keys")
}

// LogInvalidKSV warns about a structurally invalid KSV that is being
// processed anyway; derivation is defined for any 40-bit value.
func LogInvalidKSV(ksv string, weight int) {
	log.Warn().
		Str("event", "invalid_ksv").
		Str("ksv", ksv).
		Int("hamming_weight", weight).
		Msg("ksv does not have exactly 20 bits set; deriving anyway")
}
