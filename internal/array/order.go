package array

import (
	"github.com/lattice-lang/lattice/internal/cowslice"
	"github.com/lattice-lang/lattice/internal/parallel"
)

// rise returns the permutation of row indices that sorts the rows
// ascending under the lexicographic element-wise ordering. The sort is
// stable: fully-equal rows keep their original relative order.
func (a *Array[T]) rise(ctx Context) ([]int, error) {
	if a.Rank() == 0 {
		return nil, ctx.Error("cannot rise a scalar")
	}
	if a.ElementCount() == 0 {
		return []int{}, nil
	}
	indices := iotaInts(a.RowCount())
	parallel.SortStable(indices, func(x, y int) int {
		return cmpRows(a.RowSlice(x), a.RowSlice(y))
	}, parCfg)
	return indices, nil
}

// fall is rise with the comparison reversed. The relative order of
// exactly-equal rows is unspecified.
func (a *Array[T]) fall(ctx Context) ([]int, error) {
	if a.Rank() == 0 {
		return nil, ctx.Error("cannot fall a scalar")
	}
	if a.ElementCount() == 0 {
		return []int{}, nil
	}
	indices := iotaInts(a.RowCount())
	parallel.SortStable(indices, func(x, y int) int {
		return cmpRows(a.RowSlice(y), a.RowSlice(x))
	}, parCfg)
	return indices, nil
}

// sortUp physically reorders rows ascending. Rank-1 arrays sort their data
// directly; higher ranks go through rise and rebuild the buffer.
func (a *Array[T]) sortUp(ctx Context) error {
	if a.Rank() == 0 {
		return ctx.Error("cannot rise a scalar")
	}
	if a.ElementCount() == 0 {
		return nil
	}
	if a.Rank() == 1 {
		parallel.SortStable(a.MutData(), cmpElem[T], parCfg)
		return nil
	}
	perm, err := a.rise(ctx)
	if err != nil {
		return err
	}
	a.permuteRows(perm)
	return nil
}

// sortDown physically reorders rows descending.
func (a *Array[T]) sortDown(ctx Context) error {
	if a.Rank() == 0 {
		return ctx.Error("cannot fall a scalar")
	}
	if a.ElementCount() == 0 {
		return nil
	}
	if a.Rank() == 1 {
		parallel.SortStable(a.MutData(), func(x, y T) int { return cmpElem(y, x) }, parCfg)
		return nil
	}
	perm, err := a.fall(ctx)
	if err != nil {
		return err
	}
	a.permuteRows(perm)
	return nil
}

func (a *Array[T]) permuteRows(perm []int) {
	newData := make([]T, 0, a.ElementCount())
	for _, i := range perm {
		newData = append(newData, a.RowSlice(i)...)
	}
	a.data = cowslice.FromSlice(newData)
}

// classifyRows assigns each row the id of its distinct value in
// first-seen order.
func (a *Array[T]) classifyRows(ctx Context) ([]int, error) {
	if a.Rank() == 0 {
		return nil, ctx.Error("cannot classify a rank-0 array")
	}
	classes := make(map[string]int)
	classified := make([]int, 0, a.RowCount())
	for i := 0; i < a.RowCount(); i++ {
		key := rowKey(a.RowSlice(i))
		class, ok := classes[key]
		if !ok {
			class = len(classes)
			classes[key] = class
		}
		classified = append(classified, class)
	}
	return classified, nil
}

// dedupRows keeps only the first occurrence of each distinct row,
// shrinking the leading dimension. No-op on rank 0.
func (a *Array[T]) dedupRows() {
	if a.Rank() == 0 {
		return
	}
	seen := make(map[string]struct{})
	deduped := make([]T, 0, a.ElementCount())
	newLen := 0
	for i := 0; i < a.RowCount(); i++ {
		row := a.RowSlice(i)
		key := rowKey(row)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, row...)
		newLen++
	}
	a.data = cowslice.FromSlice(deduped)
	a.shape.SetSize(0, newLen)
}

type extremum int

const (
	firstMin extremum = iota
	firstMax
	lastMin
	lastMax
)

func (ex extremum) name() string {
	if ex == firstMin || ex == lastMin {
		return "min"
	}
	return "max"
}

// extremumIndex scans rows under the lexicographic ordering and reports
// the index of the extremal row, breaking ties first-seen or last-seen.
func (a *Array[T]) extremumIndex(ctx Context, ex extremum) (float64, error) {
	if a.Rank() == 0 {
		return 0, ctx.Error("cannot get %s index of a scalar", ex.name())
	}
	if a.RowCount() == 0 {
		fill, err := ctx.FillNum()
		if err != nil {
			return 0, ctx.MarkFill(ctx.Error("cannot get %s index of an empty array: %v", ex.name(), err))
		}
		return fill, nil
	}
	best := 0
	for i := 1; i < a.RowCount(); i++ {
		c := cmpRows(a.RowSlice(i), a.RowSlice(best))
		update := false
		switch ex {
		case firstMin:
			update = c < 0
		case firstMax:
			update = c > 0
		case lastMin:
			update = c <= 0
		case lastMax:
			update = c >= 0
		}
		if update {
			best = i
		}
	}
	return float64(best), nil
}

func iotaInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
