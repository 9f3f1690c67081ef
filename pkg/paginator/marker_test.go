package paginator

import (
	"encoding/json"
	"testing"
)

func TestMarker(t *testing.T) {
	t.Run("numeric marker", func(t *testing.T) {
		m := Page(7)
		if m.IsEllipsis() {
			t.Error("Page(7) should not be an ellipsis")
		}
		if m.Number() != 7 {
			t.Errorf("Number mismatch: got %d, want 7", m.Number())
		}
		if m.String() != "7" {
			t.Errorf("String mismatch: got %q, want %q", m.String(), "7")
		}
	})

	t.Run("ellipsis marker", func(t *testing.T) {
		m := Ellipsis()
		if !m.IsEllipsis() {
			t.Error("Ellipsis() should be an ellipsis")
		}
		if m.Number() != 0 {
			t.Errorf("ellipsis Number should be 0, got %d", m.Number())
		}
		if m.String() != EllipsisText {
			t.Errorf("String mismatch: got %q, want %q", m.String(), EllipsisText)
		}
	})

	t.Run("json encoding", func(t *testing.T) {
		b, err := json.Marshal([]Marker{Page(1), Ellipsis(), Page(3)})
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		want := `[1,"...",3]`
		if string(b) != want {
			t.Errorf("json mismatch: got %s, want %s", b, want)
		}
	})
}
