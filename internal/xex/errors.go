package xex

import "errors"

var errInvalidBlockSize = errors.New("xex: in/out must each be exactly BlockSize bytes")
