package shape

// DepthRotation describes the axis rotation needed to align matching
// markers between two shapes before a combining operation.
type DepthRotation struct {
	Depth  int
	Amount int
}

// AlignmentRotation determines the depth and signed rotation amount needed
// to bring this shape's marked axes in line with otherMarkers. It returns
// false when this shape has fewer than two markers, otherMarkers is empty,
// or no non-trivial match exists. Repeated markers in otherMarkers are
// deduplicated (first occurrence wins) before matching, and a match whose
// index already equals the target depth is skipped as a no-op.
func (s *Shape) AlignmentRotation(otherMarkers []Marker) (DepthRotation, bool) {
	if len(s.markers) <= 1 || len(otherMarkers) == 0 {
		return DepthRotation{}, false
	}
	deduped := make([]Marker, 0, len(otherMarkers))
	for _, m := range otherMarkers {
		seen := false
		for _, prev := range deduped {
			if prev == m {
				seen = true
				break
			}
		}
		if !seen {
			deduped = append(deduped, m)
		}
	}
	for j, other := range deduped {
		i := -1
		for k, m := range s.markers {
			if m == other {
				i = k
				break
			}
		}
		if i < 0 || i == j {
			continue
		}
		return DepthRotation{Depth: j, Amount: i - j}, true
	}
	return DepthRotation{}, false
}
