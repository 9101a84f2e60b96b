package assets

// XBM source for the ToggledFrame collapse indicator and its mask: a 16x16
// boxed minus sign. The expand indicator is derived at load time by rotating
// the collapse glyph, turning the horizontal bar vertical.

const buttonCollapseXBM = `
#define button_collapse_width 16
#define button_collapse_height 16
static unsigned char button_collapse_bits[] = {
   0x00, 0x00, 0xfe, 0x7f, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
   0x02, 0x40, 0xfa, 0x5f, 0xfa, 0x5f, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
   0x02, 0x40, 0x02, 0x40, 0xfe, 0x7f, 0x00, 0x00 };
`

const buttonCollapseMaskXBM = `
#define button_collapse_mask_width 16
#define button_collapse_mask_height 16
static unsigned char button_collapse_mask_bits[] = {
   0x00, 0x00, 0xfe, 0x7f, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
   0x02, 0x40, 0xfa, 0x5f, 0xfa, 0x5f, 0x02, 0x40, 0x02, 0x40, 0x02, 0x40,
   0x02, 0x40, 0x02, 0x40, 0xfe, 0x7f, 0x00, 0x00 };
`

// Decoded bitmap assets.
var (
	// ButtonCollapse is the indicator shown while a ToggledFrame is open.
	ButtonCollapse = MustParseXBM(buttonCollapseXBM)
	// ButtonCollapseMask is the transparency mask for ButtonCollapse.
	ButtonCollapseMask = MustParseXBM(buttonCollapseMaskXBM)
	// ButtonExpand is the indicator shown while a ToggledFrame is closed.
	ButtonExpand = ButtonCollapse.Rotate90()
)
