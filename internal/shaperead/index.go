package shaperead

import (
	"sort"

	"github.com/dhconnelly/rtreego"
)

// indexedRecord wraps a record for R-tree storage.
type indexedRecord struct {
	record *Record
}

// Bounds implements rtreego.Spatial.
func (ir *indexedRecord) Bounds() rtreego.Rect {
	b := ir.record.Geometry.Bounds
	point := rtreego.Point{b.MinX, b.MinY}

	// R-tree rectangles need non-zero extents; pad point records with a
	// small epsilon.
	const epsilon = 1e-9
	xLen := b.MaxX - b.MinX
	yLen := b.MaxY - b.MinY
	if xLen < epsilon {
		xLen = epsilon
	}
	if yLen < epsilon {
		yLen = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{xLen, yLen})
	return rect
}

// filterBounds keeps only the records whose shape bounds intersect box,
// preserving file order. Candidates go through an R-tree so large files do
// not pay for a full linear scan per query, with an exact Intersects check
// on the survivors since R-tree rectangles are padded.
func filterBounds(records []Record, box Bounds) []Record {
	if len(records) == 0 {
		return records
	}

	tree := rtreego.NewTree(2, 25, 50)
	for i := range records {
		tree.Insert(&indexedRecord{record: &records[i]})
	}

	xLen := box.MaxX - box.MinX
	yLen := box.MaxY - box.MinY
	const epsilon = 1e-9
	if xLen < epsilon {
		xLen = epsilon
	}
	if yLen < epsilon {
		yLen = epsilon
	}
	queryRect, err := rtreego.NewRect(rtreego.Point{box.MinX, box.MinY}, []float64{xLen, yLen})
	if err != nil {
		return nil
	}

	var kept []Record
	for _, spatial := range tree.SearchIntersect(queryRect) {
		rec := spatial.(*indexedRecord).record
		if box.Intersects(rec.Geometry.Bounds) {
			kept = append(kept, *rec)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Number < kept[j].Number })
	return kept
}
