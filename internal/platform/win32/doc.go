//go:build windows

// Package win32 provides Windows platform support using user32 and kernel32
// through golang.org/x/sys/windows. No CGo is required.
package win32
