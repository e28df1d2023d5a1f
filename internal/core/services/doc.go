// Package services implements the driving port interfaces.
// Services contain the core matching logic and orchestrate
// calls to driven ports (adapters).
//
// The Scanner is pure: it performs no I/O and can be driven by any
// in-memory sequence of lines.
package services
