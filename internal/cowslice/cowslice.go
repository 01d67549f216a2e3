// Package cowslice provides the reference-counted copy-on-write buffer
// backing every lattice array.
package cowslice

import "sync/atomic"

// buffer is reference-counted shared storage. Cloning a Slice just
// increments the count; the contents are copied lazily on first write.
type buffer[T any] struct {
	data     []T
	refCount atomic.Int32
}

func newBuffer[T any](data []T) *buffer[T] {
	buf := &buffer[T]{data: data}
	buf.refCount.Store(1)
	return buf
}

func (b *buffer[T]) addRef() {
	b.refCount.Add(1)
}

func (b *buffer[T]) release() {
	b.refCount.Add(-1)
}

func (b *buffer[T]) isUnique() bool {
	return b.refCount.Load() == 1
}

// Slice is a window onto a shared buffer. Reslicing operations (Truncate,
// Tail) never copy; mutation goes through MakeMut, which clones the
// window into private storage if the buffer is shared.
type Slice[T any] struct {
	buf  *buffer[T]
	view []T
}

// New allocates a zeroed slice of length n.
func New[T any](n int) Slice[T] {
	data := make([]T, n)
	return Slice[T]{buf: newBuffer(data), view: data}
}

// FromSlice adopts data as the slice's storage. The caller must not
// retain the argument.
func FromSlice[T any](data []T) Slice[T] {
	return Slice[T]{buf: newBuffer(data), view: data}
}

// Repeat builds a slice of n copies of v.
func Repeat[T any](v T, n int) Slice[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = v
	}
	return FromSlice(data)
}

// Len returns the window length.
func (s *Slice[T]) Len() int {
	return len(s.view)
}

// Values returns a read-only view of the window. Callers must not write
// through it; use MakeMut for exclusive access.
func (s *Slice[T]) Values() []T {
	return s.view
}

// Clone returns a second handle onto the same buffer.
func (s *Slice[T]) Clone() Slice[T] {
	if s.buf == nil {
		return Slice[T]{}
	}
	s.buf.addRef()
	return Slice[T]{buf: s.buf, view: s.view}
}

// IsUnique reports whether this handle is the buffer's only reference.
func (s *Slice[T]) IsUnique() bool {
	return s.buf == nil || s.buf.isUnique()
}

// MakeMut returns the window for writing, cloning it into private storage
// first if the buffer is shared. Every mutating array algorithm calls this
// exactly once before touching memory, including before partitioning work
// across goroutines.
func (s *Slice[T]) MakeMut() []T {
	s.ensureOwned(len(s.view))
	return s.view
}

// MakeMutDeep is MakeMut with an element clone hook: if privatizing the
// window requires a copy, every element passes through clone. Used for
// element types that themselves hold shared state (boxed values).
func (s *Slice[T]) MakeMutDeep(clone func(T) T) []T {
	if s.buf != nil && s.buf.isUnique() {
		return s.view
	}
	data := make([]T, len(s.view))
	for i, v := range s.view {
		data[i] = clone(v)
	}
	if s.buf != nil {
		s.buf.release()
	}
	s.buf = newBuffer(data)
	s.view = data
	return s.view
}

// Truncate shrinks the window to its first n elements without copying.
func (s *Slice[T]) Truncate(n int) {
	s.view = s.view[:n]
}

// Tail shrinks the window to its last n elements without copying.
func (s *Slice[T]) Tail(n int) {
	s.view = s.view[len(s.view)-n:]
}

// ExtendSlice appends vs to the window.
func (s *Slice[T]) ExtendSlice(vs []T) {
	s.ensureOwned(len(s.view) + len(vs))
	s.view = append(s.view, vs...)
	s.buf.data = s.view
}

// ExtendRepeat appends n copies of v to the window.
func (s *Slice[T]) ExtendRepeat(v T, n int) {
	s.ensureOwned(len(s.view) + n)
	for i := 0; i < n; i++ {
		s.view = append(s.view, v)
	}
	s.buf.data = s.view
}

// ensureOwned guarantees the window is backed by a uniquely-owned buffer
// with at least the given capacity.
func (s *Slice[T]) ensureOwned(capacity int) {
	if s.buf == nil {
		data := make([]T, 0, capacity)
		s.buf = newBuffer(data)
		s.view = data
		return
	}
	// A shared buffer must never be written. A window that does not start
	// at the buffer's head must also be re-homed before appending.
	owned := s.buf.isUnique() && (len(s.buf.data) == 0 || len(s.view) == 0 || &s.buf.data[0] == &s.view[0])
	if owned && cap(s.view) >= capacity {
		return
	}
	data := make([]T, len(s.view), capacity)
	copy(data, s.view)
	s.buf.release()
	s.buf = newBuffer(data)
	s.view = data
}
