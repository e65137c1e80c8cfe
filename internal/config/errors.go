package config

import "errors"

// ErrInvalidConfig is returned when the merged configuration violates a
// validation rule. The wrapping error lists every offending field.
var ErrInvalidConfig = errors.New("invalid configuration")
