package paginator

import (
	"encoding/json"
	"strconv"
)

// EllipsisText is how an ellipsis marker is rendered in strings and JSON.
const EllipsisText = "..."

// Marker is one rendered unit of a page-selector control: either a concrete
// page number or an ellipsis standing in for collapsed pages. An ellipsis
// carries no page number and must never be passed to a navigation callback.
type Marker struct {
	page     int
	ellipsis bool
}

// Page returns a numeric marker for page n.
func Page(n int) Marker {
	return Marker{page: n}
}

// Ellipsis returns the non-navigable collapse marker.
func Ellipsis() Marker {
	return Marker{ellipsis: true}
}

// IsEllipsis reports whether the marker is the collapse marker.
func (m Marker) IsEllipsis() bool {
	return m.ellipsis
}

// Number returns the page number of a numeric marker, or 0 for an ellipsis.
func (m Marker) Number() int {
	if m.ellipsis {
		return 0
	}
	return m.page
}

// String renders the marker as it would appear in a pagination control.
func (m Marker) String() string {
	if m.ellipsis {
		return EllipsisText
	}
	return strconv.Itoa(m.page)
}

// MarshalJSON encodes a numeric marker as its number and an ellipsis as "...".
func (m Marker) MarshalJSON() ([]byte, error) {
	if m.ellipsis {
		return json.Marshal(EllipsisText)
	}
	return json.Marshal(m.page)
}
