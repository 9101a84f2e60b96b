// Package assets provides the static bitmap assets used by the custom
// widgets, in the X BitMap (XBM) format desktop toolkits consume for
// monochrome indicator glyphs.
package assets

import (
	"fmt"
	"image"
	"image/color"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"github.com/jason-kane/ttkwidgets/pkg/errors"
)

// Bitmap is a monochrome bitmap decoded from XBM source text. Pixels are
// stored row-major, least-significant bit first within each byte, the XBM
// convention.
type Bitmap struct {
	// Name is the identifier from the XBM #define lines, e.g. "button_collapse".
	Name string
	// Width and Height are the pixel dimensions.
	Width, Height int

	bits []byte
}

var (
	defineRe = regexp.MustCompile(`#define\s+(\w+)_(width|height)\s+(\d+)`)
	hexRe    = regexp.MustCompile(`0[xX][0-9a-fA-F]+`)
)

// ParseXBM decodes XBM source text. The text must carry the usual
// #define <name>_width / #define <name>_height lines and a brace-enclosed
// list of hex byte values.
func ParseXBM(src string) (*Bitmap, error) {
	var name string
	width, height := -1, -1
	for _, m := range defineRe.FindAllStringSubmatch(src, -1) {
		n, err := strconv.Atoi(m[3])
		if err != nil || n < 0 {
			return nil, parseError(fmt.Errorf("bad %s value %q", m[2], m[3]))
		}
		switch m[2] {
		case "width":
			name = m[1]
			width = n
		case "height":
			height = n
		}
	}
	if width < 0 || height < 0 {
		return nil, parseError(fmt.Errorf("missing width/height defines"))
	}

	open := strings.Index(src, "{")
	end := strings.LastIndex(src, "}")
	if open < 0 || end < open {
		return nil, parseError(fmt.Errorf("missing bit data block"))
	}

	tokens := hexRe.FindAllString(src[open:end], -1)
	stride := (width + 7) / 8
	if want := stride * height; len(tokens) != want {
		return nil, parseError(fmt.Errorf("got %d data bytes, want %d for %dx%d", len(tokens), want, width, height))
	}

	bits := make([]byte, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok[2:], 16, 8)
		if err != nil {
			return nil, parseError(fmt.Errorf("bad data byte %q", tok))
		}
		bits[i] = byte(v)
	}

	return &Bitmap{Name: name, Width: width, Height: height, bits: bits}, nil
}

// MustParseXBM is like ParseXBM but panics on error. It is intended for the
// package-level asset declarations, where the source text is a constant.
func MustParseXBM(src string) *Bitmap {
	b, err := ParseXBM(src)
	if err != nil {
		panic(err)
	}
	return b
}

func parseError(err error) error {
	return &errors.WidgetError{Op: "assets.ParseXBM", Kind: errors.KindAsset, Err: err}
}

// At reports whether the pixel at (x, y) is set. Out-of-range coordinates
// are unset.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return false
	}
	stride := (b.Width + 7) / 8
	return b.bits[y*stride+x/8]&(1<<(x%8)) != 0
}

// setAt sets the pixel at (x, y). Coordinates must be in range.
func (b *Bitmap) setAt(x, y int) {
	stride := (b.Width + 7) / 8
	b.bits[y*stride+x/8] |= 1 << (x % 8)
}

// Rotate90 returns a copy rotated 90 degrees clockwise. The toggle widgets
// derive their collapsed-state indicator this way instead of shipping a
// second bit pattern.
func (b *Bitmap) Rotate90() *Bitmap {
	dst := &Bitmap{
		Name:   b.Name + "_r90",
		Width:  b.Height,
		Height: b.Width,
		bits:   make([]byte, ((b.Height+7)/8)*b.Width),
	}
	for y := 0; y < dst.Height; y++ {
		for x := 0; x < dst.Width; x++ {
			if b.At(y, b.Height-1-x) {
				dst.setAt(x, y)
			}
		}
	}
	return dst
}

// Image renders the bitmap as an alpha mask: set pixels are opaque.
func (b *Bitmap) Image() *image.Alpha {
	img := image.NewAlpha(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				img.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return img
}

// Scale renders the bitmap as an alpha mask scaled to width x height pixels,
// using nearest-neighbor so the glyph keeps its hard edges on high-DPI
// displays.
func (b *Bitmap) Scale(width, height int) *image.Alpha {
	src := b.Image()
	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
