//go:build !windows

package cli

// ANSI sequences work out of the box outside Windows.
func EnableANSI() {}
