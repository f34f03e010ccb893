package placement

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/evenlines/streamline"
)

// Document is the renderer-facing view of a Result: every curve as a list of
// steps, either in trace order or in drawing order.
type Document struct {
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Stats  Stats         `json:"stats"`
	Curves []CurveRecord `json:"curves"`
}

// CurveRecord is one exported curve.
type CurveRecord struct {
	ID    int               `json:"id"`
	Steps []streamline.Step `json:"steps"`
}

// Document builds the export view. With ordered set, steps are emitted in
// drawing order (see streamline.Curve.Ordered); otherwise in trace order.
func (r *Result) Document(ordered bool) Document {
	doc := Document{
		Width:  r.Width,
		Height: r.Height,
		Stats:  r.Stats,
		Curves: make([]CurveRecord, len(r.Curves)),
	}
	for i, c := range r.Curves {
		steps := c.Steps()
		if ordered {
			steps = c.Ordered()
		}
		doc.Curves[i] = CurveRecord{ID: c.ID, Steps: steps}
	}
	return doc
}

// WriteJSON encodes r.Document(ordered) to w as indented JSON.
func (r *Result) WriteJSON(w io.Writer, ordered bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r.Document(ordered)); err != nil {
		return fmt.Errorf("placement: encode result: %w", err)
	}
	return nil
}
