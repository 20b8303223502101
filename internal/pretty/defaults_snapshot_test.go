package pretty

import "testing"

func TestDefaultOptions_Stable(t *testing.T) {
	d := DefaultOptions
	if d.HelixGlyph == "" || d.SheetGlyph == "" || d.CoilGlyph == "" {
		t.Fatalf("glyphs must be non-empty")
	}
	// Spot checks of current defaults (don’t lock everything, just the external look)
	if d.HelixGlyph != "h" || d.SheetGlyph != "s" || d.CoilGlyph != "c" || d.MaxCols != 40 {
		t.Fatalf("DefaultOptions visual defaults changed")
	}
}
