package geo

import "github.com/pkg/errors"

// The two error kinds surfaced by this module. Parse functions wrap
// ErrFormat, mathematically undefined operations wrap ErrDomain; classify
// with errors.Is.
var (
	ErrFormat = errors.New("malformed input")
	ErrDomain = errors.New("domain error")
)
