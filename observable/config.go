package observable

import "github.com/rs/zerolog"

type Config struct {
	Logger zerolog.Logger //ok if not set

	// capacity of the backing storage at creation, ignored if <= 0.
	// Removals may release capacity below this value.
	InitialCapacity int
}
