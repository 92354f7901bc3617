package errors

// Error codes for the ECSL front end.
// These codes are printed in diagnostics and published by the language
// server so that every failure class has a stable identifier.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: The input did not match what the grammar expected here
	ErrorUnexpectedToken = "E0100"

	// E0101: The input ended in the middle of a statement
	ErrorUnexpectedEOF = "E0101"
)

// Process exit codes.
const (
	ExitSuccess = 0
	ExitFailure = 1
)
