package bpe

import (
	"io"
	"os"
)

// Verbosity levels accepted by WithVerbosity.
const (
	// VerboseSilent suppresses all training diagnostics.
	VerboseSilent = 0
	// VerboseProgress reports progress every 100 merges.
	VerboseProgress = 1
	// VerboseTrace reports every executed merge.
	VerboseTrace = 2
)

// defaultCacheSize is the encoder's per-word segmentation cache capacity.
const defaultCacheSize = 4096

// trainConfig holds configuration during trainer creation.
type trainConfig struct {
	verbosity int
	diag      io.Writer
}

func defaultTrainConfig() trainConfig {
	return trainConfig{verbosity: VerboseSilent, diag: os.Stderr}
}

// TrainOption is a functional option for configuring training.
type TrainOption func(*trainConfig) error

// WithVerbosity sets the training diagnostic level: VerboseSilent,
// VerboseProgress, or VerboseTrace. Diagnostic output is informational only;
// its format is not part of the package contract.
func WithVerbosity(v int) TrainOption {
	return func(cfg *trainConfig) error {
		if v < VerboseSilent || v > VerboseTrace {
			return NewConfigError("verbosity", v, ErrInvalidOption)
		}
		cfg.verbosity = v
		return nil
	}
}

// WithDiagnostics redirects training diagnostics to w. The default sink is
// standard error.
func WithDiagnostics(w io.Writer) TrainOption {
	return func(cfg *trainConfig) error {
		if w == nil {
			return NewConfigError("diagnostics", nil, ErrInvalidOption)
		}
		cfg.diag = w
		return nil
	}
}

// encoderConfig holds configuration during encoder creation.
type encoderConfig struct {
	cacheSize int
}

// EncoderOption is a functional option for configuring an Encoder.
type EncoderOption func(*encoderConfig) error

// WithCacheSize sets the maximum number of word segmentations the encoder
// memoizes. Set to 0 to disable caching. Default is 4096.
func WithCacheSize(size int) EncoderOption {
	return func(cfg *encoderConfig) error {
		if size < 0 {
			return NewConfigError("cache_size", size, ErrInvalidOption)
		}
		cfg.cacheSize = size
		return nil
	}
}
