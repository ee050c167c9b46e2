package tui

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// HalfBlock draws the top pixel in the foreground and the bottom pixel in
// the background of one cell.
const HalfBlock = "▀"

// Fit returns the largest size with the aspect ratio of w x h that fits in
// maxW x maxH, never larger than maxW x maxH and never smaller than 1x1.
func Fit(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 || maxW <= 0 || maxH <= 0 {
		return 1, 1
	}
	dw, dh := maxW, h*maxW/w
	if dh > maxH {
		dw, dh = w*maxH/h, maxH
	}
	return max(dw, 1), max(dh, 1)
}

// Scale resizes src to dw x dh with nearest-neighbour sampling.
func Scale(src *image.RGBA, dw, dh int) *image.RGBA {
	if src.Bounds().Dx() == dw && src.Bounds().Dy() == dh {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func hexAt(img *image.RGBA, x, y int) string {
	if y >= img.Bounds().Dy() {
		return "#000000"
	}
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+3 : i+3]
	return fmt.Sprintf("#%02x%02x%02x", p[0], p[1], p[2])
}

// RenderHalfBlocks converts an image into rows of half-block cells, one
// cell per column and per two pixel rows. Adjacent cells with the same
// colors share one style run to keep escape sequences short.
func RenderHalfBlocks(img *image.RGBA) string {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	var sb strings.Builder
	sb.Grow(w*(h/2+1)*4 + h)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < w {
			fg, bg := hexAt(img, x, y), hexAt(img, x, y+1)
			n := 0
			for x < w && hexAt(img, x, y) == fg && hexAt(img, x, y+1) == bg {
				n++
				x++
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(fg)).
				Background(lipgloss.Color(bg))
			sb.WriteString(style.Render(strings.Repeat(HalfBlock, n)))
		}
	}
	return sb.String()
}
