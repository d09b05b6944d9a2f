package camera

import "testing"

func TestParseFlip(t *testing.T) {
	cases := []struct {
		value      string
		flip       Flip
		horizontal bool
		vertical   bool
		ok         bool
	}{
		{"none", FlipNone, false, false, true},
		{"h", FlipH, true, false, true},
		{"v", FlipV, false, true, true},
		{"hv", FlipHV, true, true, true},
		{"diagonal", FlipNone, false, false, false},
		{"", FlipNone, false, false, false},
	}
	for _, c := range cases {
		flip, err := ParseFlip(c.value)
		if c.ok != (err == nil) {
			t.Errorf("ParseFlip(%q) error = %v, want ok=%v", c.value, err, c.ok)
			continue
		}
		if !c.ok {
			continue
		}
		if flip != c.flip {
			t.Errorf("ParseFlip(%q) = %q, want %q", c.value, flip, c.flip)
		}
		if flip.Horizontal() != c.horizontal || flip.Vertical() != c.vertical {
			t.Errorf("%q: Horizontal()=%v Vertical()=%v, want %v %v",
				c.value, flip.Horizontal(), flip.Vertical(), c.horizontal, c.vertical)
		}
	}
}

func TestRenderPatternFlip(t *testing.T) {
	const width, height = 8, 6
	plain := make([]byte, width*height*3)
	mirrored := make([]byte, width*height*3)
	renderPattern(plain, width, height, 0, FlipNone)
	renderPattern(mirrored, width, height, 0, FlipH)

	// a horizontally mirrored pattern samples column width-1-x
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			j := (y*width + (width - 1 - x)) * 3
			if plain[i] != mirrored[j] {
				t.Fatalf("mirror mismatch at (%d,%d): %d != %d", x, y, plain[i], mirrored[j])
			}
		}
	}
}
