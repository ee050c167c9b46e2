package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picofb/internal/core"
	"github.com/vovakirdan/picofb/internal/font"
)

var flagFontFile string

var fontCmd = &cobra.Command{
	Use:   "font [text]",
	Short: "Show font metrics and preview text",
	Long: `Print the header of a PSF2 font and render text with it as ASCII art.
Without --file the built-in font is used. Characters outside printable
ASCII are drawn as '?'.

Examples:
  picofb font
  picofb font "Hello, world!"
  picofb font --file ./terminus.psf "abc"`,
	Args: cobra.MaximumNArgs(1),
	Run:  runFont,
}

func init() {
	fontCmd.Flags().StringVar(&flagFontFile, "file", "", "Path to a PSF2 font file")
}

func runFont(cmd *cobra.Command, args []string) {
	face := font.Default()
	if flagFontFile != "" {
		data, err := os.ReadFile(flagFontFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		face, err = font.Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	text := "picofb"
	if len(args) == 1 {
		text = args[0]
	}

	h := face.Header()
	fmt.Printf("Glyphs:          %d\n", face.GlyphCount())
	fmt.Printf("Glyph size:      %dx%d\n", face.Width(), face.Height())
	fmt.Printf("Bytes per glyph: %d\n", h.BytesPerGlyph)
	fmt.Printf("Header size:     %d\n", h.HeaderSize)
	fmt.Printf("Flags:           %#x\n", h.Flags)
	fmt.Println()
	fmt.Print(preview(face, text))
}

// preview renders text into a scratch surface and returns it as rows of
// '#' and '.'.
func preview(face *font.Face, text string) string {
	w := face.Measure(text)
	if w == 0 {
		return ""
	}
	s := core.NewSurface(w, face.Height())
	face.Render(s, 0, 0, core.White, text)

	var b strings.Builder
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
