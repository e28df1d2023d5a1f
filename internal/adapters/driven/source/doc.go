// Package source provides driven.LineSource implementations: a streaming
// reader-backed source for files and an in-memory source over a slice.
package source
