// Package boundary implements the operation bodies behind the imgsl_functions
// table. Everything here works on plain Go types so the whole contract is
// testable without cgo; the package main trampolines only translate C values
// in and out.
package boundary

// Outcome mirrors the imgsl_error codes declared in imagesl.h. The numeric
// values are part of the ABI: 0 is the only success value, failure kinds are
// never renumbered and new kinds are only appended.
type Outcome uint32

const (
	// OutcomeOK reports success.
	OutcomeOK Outcome = iota
	// OutcomeIO reports that the underlying storage access failed.
	OutcomeIO
	// OutcomeDecoding reports that the input bytes do not form a valid or
	// supported image.
	OutcomeDecoding
	// OutcomeEncoding reports that the target format cannot represent the
	// in-memory image.
	OutcomeEncoding
	// OutcomeParameter reports an invalid caller-supplied argument, such as
	// a non-UTF-8 path or a dead handle, where detectable.
	OutcomeParameter
	// OutcomeUnsupported reports a recognized but intentionally
	// unimplemented operation or format.
	OutcomeUnsupported
)

// String returns a short human-readable name, primarily for test output.
func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "no error"
	case OutcomeIO:
		return "i/o error"
	case OutcomeDecoding:
		return "decoding error"
	case OutcomeEncoding:
		return "encoding error"
	case OutcomeParameter:
		return "parameter error"
	case OutcomeUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}
