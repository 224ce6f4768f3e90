package emulator

import (
	"errors"

	"github.com/jorbush/lc3vm/translate"
)

var f = translate.From

var (
	// Image errors
	ErrImageFormat    = errors.New(f("image format"))
	ErrImageOdd       = errors.New(f("image has an odd byte length"))
	ErrImageTruncated = errors.New(f("image missing origin word"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	PC  uint16
	Err error
}

func (err *ErrRuntime) Error() string {
	return f("pc 0x%04x %v", err.PC, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
