package shape

import "encoding/json"

// markedRep is the wire form for shapes that carry markers. Unmarked
// shapes serialize as a bare size list.
type markedRep struct {
	Sizes   []int    `json:"sizes"`
	Markers []Marker `json:"markers"`
}

// MarshalJSON compacts to a bare size list when no dimension is marked.
func (s Shape) MarshalJSON() ([]byte, error) {
	if len(s.markers) == 0 {
		sizes := s.sizes
		if sizes == nil {
			sizes = []int{}
		}
		return json.Marshal(sizes)
	}
	return json.Marshal(markedRep{Sizes: s.sizes, Markers: s.markers})
}

// UnmarshalJSON accepts either a bare size list or the marked form.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var sizes []int
	if err := json.Unmarshal(data, &sizes); err == nil {
		s.sizes = sizes
		s.markers = nil
		return nil
	}
	var rep markedRep
	if err := json.Unmarshal(data, &rep); err != nil {
		return err
	}
	s.sizes = rep.Sizes
	s.markers = rep.Markers
	return nil
}
