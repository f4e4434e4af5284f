package config

import (
	"runtime"
)

// ConfigDefaults contains all default configuration values for go-casc.
type ConfigDefaults struct {
	Decrypt DecryptDefaults
	Output  OutputDefaults
	Log     LogDefaults
}

// DecryptDefaults contains default values for frame decryption
type DecryptDefaults struct {
	// Workers is the number of frames decrypted in parallel
	// Default: runtime.NumCPU()
	Workers int

	// StartIndex is the frame index given to the first input frame
	// Default: 0
	StartIndex uint32
}

// OutputDefaults contains default values for writing results
type OutputDefaults struct {
	// Dir receives the output files; empty writes next to each input
	// Default: ""
	Dir string

	// Suffix is appended to the input file name
	// Default: ".dec"
	Suffix string

	// Force allows overwriting existing output files
	// Default: false
	Force bool
}

// LogDefaults contains default values for logging
type LogDefaults struct {
	// Level overrides DEBUG_CASC when set (debug, info, warn, error)
	// Default: ""
	Level string
}

// Defaults returns the default configuration.
func Defaults() ConfigDefaults {
	return ConfigDefaults{
		Decrypt: DecryptDefaults{
			Workers:    runtime.NumCPU(),
			StartIndex: 0,
		},
		Output: OutputDefaults{
			Dir:    "",
			Suffix: ".dec",
			Force:  false,
		},
		Log: LogDefaults{
			Level: "",
		},
	}
}
