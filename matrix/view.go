package matrix

// Vector is a transient, read-only view of one matrix row or column.
// It walks elements of the shared buffer at a constant stride: stride 1 when
// the viewed axis is the layout's fast axis, the slice count otherwise.
// A Vector is created per call and must not outlive its matrix.
type Vector[T any] struct {
	buf    []T // backing buffer (whole matrix or one contiguous chunk)
	start  int // offset of element 0 within buf
	stride int // distance between successive elements
	n      int // number of elements in the view
}

// Len returns the number of elements in the view. Complexity: O(1).
func (v Vector[T]) Len() int {
	return v.n
}

// Contiguous reports whether the view's elements are adjacent in memory.
// Complexity: O(1).
func (v Vector[T]) Contiguous() bool {
	return v.stride == 1
}

// At returns the i-th element of the view, or ErrOutOfRange.
// Complexity: O(1).
func (v Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.n {
		var zero T
		return zero, axisErrorf("Vector.At", i, ErrOutOfRange)
	}

	return v.buf[v.start+i*v.stride], nil
}

// Slice exposes the view as a real subslice of the backing buffer.
// Only contiguous views have one; strided views return nil, since their
// elements are interleaved with other rows/columns.
func (v Vector[T]) Slice() []T {
	if v.stride != 1 {
		return nil
	}
	end := v.start + v.n

	return v.buf[v.start:end:end]
}

// Values returns a fresh copy of the view's elements in view order.
// Complexity: O(n) time and memory.
func (v Vector[T]) Values() []T {
	out := make([]T, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.buf[v.start+i*v.stride]
	}

	return out
}

// MutVector is the mutable form of Vector. Every MutVector handed out by a
// bulk split touches a set of buffer offsets disjoint from its siblings, so
// holding several of them live and mutating each is safe.
type MutVector[T any] struct {
	Vector[T]
}

// Set assigns val to the i-th element of the view, or returns ErrOutOfRange.
// Complexity: O(1).
func (v MutVector[T]) Set(i int, val T) error {
	if i < 0 || i >= v.n {
		return axisErrorf("MutVector.Set", i, ErrOutOfRange)
	}
	v.buf[v.start+i*v.stride] = val

	return nil
}

// Swap exchanges elements a and b of the view, even when the view is
// strided and the two elements are far apart in the buffer.
// Complexity: O(1).
func (v MutVector[T]) Swap(a, b int) error {
	if a < 0 || a >= v.n {
		return axisErrorf("MutVector.Swap", a, ErrOutOfRange)
	}
	if b < 0 || b >= v.n {
		return axisErrorf("MutVector.Swap", b, ErrOutOfRange)
	}
	ia, ib := v.start+a*v.stride, v.start+b*v.stride
	v.buf[ia], v.buf[ib] = v.buf[ib], v.buf[ia]

	return nil
}

// Fill overwrites the whole view with data, which must hold exactly Len()
// elements; otherwise ErrSizeMismatch is returned and nothing is written.
// Complexity: O(n).
func (v MutVector[T]) Fill(data []T) error {
	if len(data) != v.n {
		return axisErrorf("MutVector.Fill", len(data), ErrSizeMismatch)
	}
	for i := 0; i < v.n; i++ {
		v.buf[v.start+i*v.stride] = data[i]
	}

	return nil
}

// Apply replaces every element x of the view with fn(x), in view order.
// Complexity: O(n).
func (v MutVector[T]) Apply(fn func(T) T) {
	for i := 0; i < v.n; i++ {
		idx := v.start + i*v.stride
		v.buf[idx] = fn(v.buf[idx])
	}
}

// Ro downgrades the view to its read-only form.
func (v MutVector[T]) Ro() Vector[T] {
	return v.Vector
}
