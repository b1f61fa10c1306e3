//go:build !nowindow

package main

// The desktop frontend pulls in Ebitengine, which needs cgo and a display
// stack. Build with -tags nowindow to drop it.
import _ "github.com/vovakirdan/lane-racer/internal/platform/window"
