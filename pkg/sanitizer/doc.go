// Package sanitizer provides input normalization for booking data.
//
// All normalization functions are idempotent - applying them multiple times
// produces the same result. Functions handle invalid input gracefully,
// typically by returning empty strings or empty slices rather than errors.
//
// The package is shared across services so every request body is normalized
// the same way before validation and storage.
//
// Normalization includes:
//   - Phone numbers: Convert to E.164 format (+[country][number])
//   - Names and addresses: Collapse whitespace, trim leading/trailing spaces
//   - Table and drink identifiers: Trim, uppercase, deduplicate
//   - Clocks: Zero-pad to HH:MM so string comparison orders correctly
package sanitizer
