package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration reads a config duration such as "30s". Values that do not
// parse, or are not positive, fall back to def.
func ParseDuration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Err(err).Str("value", raw).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
