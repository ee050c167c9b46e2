// Package sdl is the SDL2 collaborator: one OS window per surface, each with
// an accelerated renderer and an ARGB8888 streaming texture.
//
// The real implementation needs the SDL2 development libraries and is built
// with the sdl2 tag (go build -tags sdl2). Without it, New reports
// ErrUnavailable.
package sdl

import "errors"

// ErrUnavailable is returned by New in builds without SDL2 support.
var ErrUnavailable = errors.New("sdl: built without the sdl2 tag")
