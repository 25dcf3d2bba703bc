package contracts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequirements matches any InvalidRequirementsError
	ErrInvalidRequirements = errors.New("invalid requirements")
	// ErrUnknownPreset matches any UnknownPresetError
	ErrUnknownPreset = errors.New("unknown SBC type")
)

// InvalidRequirementsError reports malformed or missing requirement fields
type InvalidRequirementsError struct {
	Field   string
	Message string
}

func (e *InvalidRequirementsError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("Invalid requirements: %s", e.Message)
	}
	return fmt.Sprintf("Invalid requirements: %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrInvalidRequirements) work
func (e *InvalidRequirementsError) Is(target error) bool {
	return target == ErrInvalidRequirements
}

// UnknownPresetError reports a quick-solve preset name that is not in the catalog
type UnknownPresetError struct {
	Name string
}

func (e *UnknownPresetError) Error() string {
	return fmt.Sprintf("Unknown SBC type: %s", e.Name)
}

// Is makes errors.Is(err, ErrUnknownPreset) work
func (e *UnknownPresetError) Is(target error) bool {
	return target == ErrUnknownPreset
}
