package conjecturecli

import "errors"

// Error variables for config and replay operations.
var (
	ErrConfigFileNotFound     = errors.New("config file not found")
	ErrConfigFileRead         = errors.New("cannot read config file")
	ErrConfigInvalid          = errors.New("invalid config file")
	ErrBufferSizeNonPositive  = errors.New("buffer-size must be > 0")
	ErrMutationsNegative      = errors.New("mutations must be >= 0")
	ErrGenerationsNonPositive = errors.New("generations must be > 0")
	ErrMaxShrinksNegative     = errors.New("max-shrinks must be >= 0")
	ErrNoBufferLoaded         = errors.New("no buffer loaded")
	ErrUnknownTest            = errors.New("no test registered under that name")
)
