// Package snapshot turns the loosely typed arguments a host sends for one
// render cycle into a normalized, immutable Snapshot.
package snapshot

// Argument keys understood in a host payload.
const (
	KeyLabel            = "label"
	KeyImages           = "images"
	KeyImagesRows       = "images_rows"
	KeyIndex            = "index"
	KeySelectedRowIndex = "selected_row_index"
	KeyDisabled         = "disabled"
	KeyCustomCSS        = "custom_css"
	KeyTheme            = "theme"

	keyRowImages   = "images"
	keyRowCaptions = "captions"
	keyRowTooltips = "tooltip"
	keyRowLabel    = "vertical_label"
)

// Form records which of the mutually exclusive row inputs produced the rows.
type Form int

const (
	FormNone Form = iota
	FormFlat
	FormLabeled
)

func (f Form) String() string {
	switch f {
	case FormFlat:
		return KeyImages
	case FormLabeled:
		return KeyImagesRows
	default:
		return "none"
	}
}

// Base is the host's light/dark mode.
type Base string

const (
	BaseLight Base = "light"
	BaseDark  Base = "dark"
)

// Theme is the host theme. TextColor is kept verbatim; an unknown base
// reads as light.
type Theme struct {
	Font      string `json:"font"`
	TextColor string `json:"textColor"`
	Base      Base   `json:"base" validate:"omitempty,oneof=light dark"`
}

// Dark reports whether the theme selects dark mode.
func (t Theme) Dark() bool {
	return t.Base == BaseDark
}

// Pointer addresses one image by its original row and column.
type Pointer struct {
	Row   int `json:"rowIndex" validate:"min=0"`
	Image int `json:"index" validate:"min=0"`
}

// Image is one valid image reference. Column is its position in the host's
// row, which stays stable when invalid siblings are skipped.
type Image struct {
	Column  int
	Src     string
	Caption string
	Tooltip string
}

// Row is one host row after invalid images have been dropped.
type Row struct {
	Index         int
	Images        []Image
	VerticalLabel string
}

// Diagnostic records a skipped entry.
type Diagnostic struct {
	Row    int
	Column int
	Value  interface{}
	Err    error
}

// Snapshot is the normalized host state for one render cycle. Optional
// fields are nil when the host did not supply them (or supplied them in an
// unusable shape).
type Snapshot struct {
	Label       string
	Form        Form
	Rows        []Row
	Selection   *Pointer
	Disabled    bool
	CustomCSS   *string
	Theme       *Theme
	Diagnostics []Diagnostic
}

// Lookup returns the image addressed by p, if it was rendered.
func (s Snapshot) Lookup(p Pointer) (Image, bool) {
	for _, row := range s.Rows {
		if row.Index != p.Row {
			continue
		}
		for _, img := range row.Images {
			if img.Column == p.Image {
				return img, true
			}
		}
		return Image{}, false
	}
	return Image{}, false
}

// ImageCount returns the number of valid images across all rows.
func (s Snapshot) ImageCount() int {
	total := 0
	for _, row := range s.Rows {
		total += len(row.Images)
	}
	return total
}
