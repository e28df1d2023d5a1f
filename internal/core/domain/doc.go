// Package domain defines the core value types for linesift.
//
// This package is the innermost layer of the hexagon. It has NO
// external dependencies and defines:
//
//   - SearchConfig: the pattern and the two output flags
//   - LineRecord: a numbered input line
//   - ScanResult: what a completed scan reports back
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
