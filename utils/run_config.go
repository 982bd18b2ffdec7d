package utils

import (
	"github.com/pkg/errors"
)

const (
	// MaxDimension bounds both grid width and height
	MaxDimension = 100
)

// ErrInvalidConfiguration is the cause of every rejected run configuration.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// RunConfig holds the parameters of a single run. It does not change once cells are being placed.
type RunConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	StartAlive int `json:"start_alive"`
	MaxCycles  int `json:"max_cycles"` // 0 runs until extinction
}

// ValidateWidth checks a grid width
func ValidateWidth(width int) error {
	if width < 1 || width > MaxDimension {
		return errors.Wrapf(ErrInvalidConfiguration, "width %d not in [1, %d]", width, MaxDimension)
	}
	return nil
}

// ValidateHeight checks a grid height
func ValidateHeight(height int) error {
	if height < 1 || height > MaxDimension {
		return errors.Wrapf(ErrInvalidConfiguration, "height %d not in [1, %d]", height, MaxDimension)
	}
	return nil
}

// ValidateStartAlive checks the starting population against the grid area
func ValidateStartAlive(startAlive, width, height int) error {
	if startAlive < 1 || startAlive > width*height {
		return errors.Wrapf(ErrInvalidConfiguration, "starting alive cells %d not in [1, %d]", startAlive, width*height)
	}
	return nil
}

// ValidateMaxCycles checks the cycle limit
func ValidateMaxCycles(maxCycles int) error {
	if maxCycles < 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "max cycles %d is negative", maxCycles)
	}
	return nil
}

// Validate reports the first invalid field of the configuration
func (c RunConfig) Validate() error {
	if err := ValidateWidth(c.Width); err != nil {
		return errors.WithMessage(err, "[Validate]")
	}
	if err := ValidateHeight(c.Height); err != nil {
		return errors.WithMessage(err, "[Validate]")
	}
	if err := ValidateStartAlive(c.StartAlive, c.Width, c.Height); err != nil {
		return errors.WithMessage(err, "[Validate]")
	}
	if err := ValidateMaxCycles(c.MaxCycles); err != nil {
		return errors.WithMessage(err, "[Validate]")
	}
	return nil
}

// IsInvalidConfiguration reports whether err was caused by a rejected configuration
func IsInvalidConfiguration(err error) bool {
	return errors.Cause(err) == ErrInvalidConfiguration
}
