package io

import (
	"errors"

	"github.com/jorbush/lc3vm/translate"
)

var f = translate.From

var (
	// Console errors
	ErrKeyEOF = errors.New(f("console input closed"))
)
