package assets

import "testing"

const tinyXBM = `
#define tiny_width 3
#define tiny_height 2
static unsigned char tiny_bits[] = {
   0x01, 0x04 };
`

func TestParseXBM(t *testing.T) {
	b, err := ParseXBM(tinyXBM)
	if err != nil {
		t.Fatalf("ParseXBM failed: %v", err)
	}
	if b.Name != "tiny" || b.Width != 3 || b.Height != 2 {
		t.Fatalf("got %q %dx%d, want tiny 3x2", b.Name, b.Width, b.Height)
	}
	set := [][2]int{{0, 0}, {2, 1}}
	for _, p := range set {
		if !b.At(p[0], p[1]) {
			t.Errorf("pixel (%d,%d) unset, want set", p[0], p[1])
		}
	}
	if b.At(1, 0) || b.At(0, 1) {
		t.Error("unexpected set pixel")
	}
	if b.At(-1, 0) || b.At(3, 0) || b.At(0, 2) {
		t.Error("out-of-range At reported set")
	}
}

func TestParseXBMErrors(t *testing.T) {
	cases := map[string]string{
		"missing defines":  `static unsigned char x_bits[] = { 0x00 };`,
		"missing block":    "#define x_width 8\n#define x_height 1\n",
		"wrong byte count": "#define x_width 8\n#define x_height 2\nstatic unsigned char x_bits[] = { 0x00 };",
	}
	for name, src := range cases {
		if _, err := ParseXBM(src); err == nil {
			t.Errorf("%s: ParseXBM succeeded, want error", name)
		}
	}
}

func TestRotate90(t *testing.T) {
	b, err := ParseXBM(tinyXBM)
	if err != nil {
		t.Fatalf("ParseXBM failed: %v", err)
	}
	r := b.Rotate90()
	if r.Width != 2 || r.Height != 3 {
		t.Fatalf("rotated size %dx%d, want 2x3", r.Width, r.Height)
	}
	// Clockwise rotation: the source's first column, bottom to top, becomes
	// the first row. src(0,0) is set, src(0,1) is not.
	if r.At(0, 0) {
		t.Error("rotated (0,0) set, want unset")
	}
	if !r.At(1, 0) {
		t.Error("rotated (1,0) unset, want set")
	}
	// src(2,1) set -> dst(x,y) with y=2, x=0: dst.At(0,2) = src.At(2, 1).
	if !r.At(0, 2) {
		t.Error("rotated (0,2) unset, want set")
	}
}

func TestButtonCollapseAsset(t *testing.T) {
	if ButtonCollapse.Width != 16 || ButtonCollapse.Height != 16 {
		t.Fatalf("ButtonCollapse is %dx%d, want 16x16", ButtonCollapse.Width, ButtonCollapse.Height)
	}
	// Row 1 is 0xfe, 0x7f: the box outline spans x=1..14.
	if ButtonCollapse.At(0, 1) || ButtonCollapse.At(15, 1) {
		t.Error("outline corners set outside the box")
	}
	for x := 1; x <= 14; x++ {
		if !ButtonCollapse.At(x, 1) {
			t.Errorf("outline pixel (%d,1) unset", x)
		}
	}
	if ButtonCollapseMask.Width != 16 || ButtonCollapseMask.Height != 16 {
		t.Error("mask dimensions differ from glyph")
	}
	if ButtonExpand.Width != 16 || ButtonExpand.Height != 16 {
		t.Error("expand glyph dimensions differ from collapse glyph")
	}
}

func TestImageAndScale(t *testing.T) {
	b, err := ParseXBM(tinyXBM)
	if err != nil {
		t.Fatalf("ParseXBM failed: %v", err)
	}
	img := b.Image()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("image bounds %v, want 3x2", img.Bounds())
	}
	if img.AlphaAt(0, 0).A != 0xff {
		t.Error("set pixel not opaque")
	}
	if img.AlphaAt(1, 0).A != 0 {
		t.Error("unset pixel not transparent")
	}

	scaled := b.Scale(6, 4)
	if scaled.Bounds().Dx() != 6 || scaled.Bounds().Dy() != 4 {
		t.Fatalf("scaled bounds %v, want 6x4", scaled.Bounds())
	}
	if scaled.AlphaAt(0, 0).A != 0xff {
		t.Error("scaled set pixel not opaque")
	}
}
