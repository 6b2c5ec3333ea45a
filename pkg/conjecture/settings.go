package conjecture

// Settings configures a Runner.
type Settings struct {
	// BufferSize is the size of every buffer the runner generates.
	BufferSize int
	// Mutations is how many fresh random candidates are tried per
	// generation before a single mutated candidate is tried.
	Mutations int
	// Generations is how many generations the generation phase runs for
	// before giving up, if no interesting buffer is found.
	Generations int
	// MaxShrinks bounds the number of accepted transitions during the
	// shrink phase, guaranteeing termination even if the shrink passes
	// keep finding marginally smaller candidates.
	MaxShrinks int
}

// DefaultSettings returns the engine's default configuration.
func DefaultSettings() Settings {
	return Settings{
		BufferSize:  8 * 1024,
		Mutations:   50,
		Generations: 100,
		MaxShrinks:  2000,
	}
}
