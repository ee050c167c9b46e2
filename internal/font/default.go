package font

import (
	_ "embed"
	"sync"
)

//go:embed picofb8x16.psf
var defaultPSF []byte

var loadDefault = sync.OnceValue(func() *Face {
	f, err := Parse(defaultPSF)
	if err != nil {
		panic("font: embedded asset is corrupt: " + err.Error())
	}
	return f
})

// Default returns the embedded 8x16 ASCII font, decoding it on first use.
// A corrupt embedded asset is a build defect and panics.
func Default() *Face {
	return loadDefault()
}

// DefaultData returns the raw embedded PSF2 container.
func DefaultData() []byte {
	return defaultPSF
}
