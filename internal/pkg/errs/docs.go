// Package errs provides standardized error types for the kitchen application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package distinguishes two classes of failure:
//   - Invalid-argument: ValueIsRequiredError and ValueIsInvalidError, for
//     malformed or structurally incomplete caller input
//   - Invalid-state: InvalidStateError and ObjectNotFoundError, for input that
//     is structurally valid but hits an unmet domain precondition
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Callers classify failures with errors.Is against the sentinels, which lets
// transport layers map the two classes to distinct outward responses without
// depending on concrete error types.
package errs
