package errors

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotFound   = errors.New("config not found")
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrComponentUnknown = errors.New("unknown toolchain component")
	ErrCommandFailed    = errors.New("command failed")
	ErrPatchMissing     = errors.New("patch file missing")
	ErrLockHeld         = errors.New("toolchain directory is locked by another build")
)

func NewConfigError(field string, value interface{}) error {
	return fmt.Errorf("%w: field=%s value=%v", ErrConfigInvalid, field, value)
}

func NewComponentError(name string) error {
	return fmt.Errorf("%w: %s", ErrComponentUnknown, name)
}

func NewCommandError(command, dir string, err error) error {
	return fmt.Errorf("%w: %q in %s: %v", ErrCommandFailed, command, dir, err)
}

func NewPatchError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPatchMissing, path, err)
}
