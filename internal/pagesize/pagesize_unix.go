//go:build darwin || dragonfly || freebsd || linux || openbsd || solaris || netbsd

package pagesize

import "golang.org/x/sys/unix"

// Get returns the host's memory page size.
func Get() int {
	return unix.Getpagesize()
}
