// Package pagesize reports the host's native memory page size. Only
// cmd/heapdemo's info subcommand uses it; the core heap package
// manages a caller-supplied byte slice and has no page-size dependency
// of its own.
package pagesize
