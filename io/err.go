package io

import (
	"errors"

	"github.com/ezrec/aheui/translate"
)

var f = translate.From

var (
	// Console errors
	ErrNoInput = errors.New(f("no input attached"))
)
