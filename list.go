package runtime

// List is a growable sequence of int64. The zero value is an empty list
// ready for use; generated code allocates these directly with no create
// call. Not safe for concurrent use.
type List struct {
	data   []int64 // len(data) is the capacity
	length int
}

// Len returns the number of elements.
func (l *List) Len() int {
	return l.length
}

// Cap returns the allocated capacity.
func (l *List) Cap() int {
	return len(l.data)
}

// Push appends value, growing the backing store when it is full. Capacity
// goes 0, 4, 8, 16, ... and never shrinks.
func (l *List) Push(value int64) {
	if l.length == len(l.data) {
		newCap := 4
		if len(l.data) != 0 {
			newCap = len(l.data) * 2
		}
		data := make([]int64, newCap)
		copy(data, l.data)
		l.data = data
	}
	l.data[l.length] = value
	l.length++
}

// PopLast removes and returns the last element. ok is false on an empty
// list.
func (l *List) PopLast() (value int64, ok bool) {
	if l.length == 0 {
		return 0, false
	}
	l.length--
	return l.data[l.length], true
}

// Pop removes and returns the last element, or 0 on an empty list.
func (l *List) Pop() int64 {
	value, _ := l.PopLast()
	return value
}

// At returns the element at index, and whether index is in range.
func (l *List) At(index int64) (value int64, ok bool) {
	if index < 0 || index >= int64(l.length) {
		return 0, false
	}
	return l.data[index], true
}

// Get returns the element at index, or 0 when index is out of range. An
// out-of-range read is indistinguishable from a stored 0; callers that care
// should prefer At.
func (l *List) Get(index int64) int64 {
	value, _ := l.At(index)
	return value
}

// Set overwrites the element at index. Out-of-range indexes are ignored.
func (l *List) Set(index int64, value int64) {
	if index < 0 || index >= int64(l.length) {
		return
	}
	l.data[index] = value
}

// Close releases the backing store. The List must not be used afterwards.
func (l *List) Close() {
	l.data = nil
	l.length = 0
}
