package qrng

import "fmt"

// Code is a wire-stable error code, mirroring the integer codes a C caller
// of this design would check. It implements error so idiomatic Go callers
// can just check the returned error, while callers that need the numeric
// code can still recover it.
type Code int

const (
	CodeSuccess             Code = 0
	CodeNullContext         Code = -1
	CodeNullBuffer          Code = -2
	CodeInvalidLength       Code = -3
	CodeInsufficientEntropy Code = -4 // reserved; never emitted
	CodeInvalidRange        Code = -5 // reserved; range APIs fall back to max instead
)

// Error implements the error interface, returning the same text ErrorString
// would for this code.
func (c Code) Error() string {
	return ErrorString(c)
}

// ErrorString translates a Code into a human-readable description.
func ErrorString(code Code) string {
	switch code {
	case CodeSuccess:
		return "success"
	case CodeNullContext:
		return "null context: state handle not provided"
	case CodeNullBuffer:
		return "null buffer: required caller-owned buffer absent"
	case CodeInvalidLength:
		return "invalid length: zero-length argument where non-zero is required"
	case CodeInsufficientEntropy:
		return "insufficient entropy"
	case CodeInvalidRange:
		return "invalid range parameters"
	default:
		return fmt.Sprintf("unknown error code %d", int(code))
	}
}
