//go:build linux

// Package x11 provides Linux platform support for EWMH-compliant X11 window
// managers using the pure-Go X protocol bindings in github.com/jezek/xgb.
// Wayland sessions are only reachable through XWayland.
package x11
