//go:build picofb_debug

package core

const debugBounds = true
