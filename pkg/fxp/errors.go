package fxp

import "errors"

var (
	// Parse errors 🎛️
	ErrMalformedPreset       = errors.New("❌ malformed preset")
	ErrUnrecognizedContainer = errors.New("❌ unrecognized container magic")

	// Caller input errors ⌨️
	ErrInvalidCodeLength = errors.New("❌ plugin code must be exactly 4 bytes")
	ErrInvalidArgument   = errors.New("❌ invalid argument")
)
