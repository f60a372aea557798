package reducer

import "tableflip.dev/timetable/pkg/lecture"

func lectureID(l *lecture.Lecture) string { return l.ID }
func timeID(t *lecture.TimeSlot) string   { return t.ID }
func linkID(k *lecture.Link) string       { return k.ID }

func indexByID[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

// updateByID replaces the first item with id by fn(item). When no item
// matches, or fn returns the item unchanged, items itself is returned.
func updateByID[T comparable](items []T, id string, idOf func(T) string, fn func(T) T) []T {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items
	}
	updated := fn(items[i])
	if updated == items[i] {
		return items
	}
	next := make([]T, len(items))
	copy(next, items)
	next[i] = updated
	return next
}

// removeByID drops the first item with id, or returns items when missing.
func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	i := indexByID(items, id, idOf)
	if i < 0 {
		return items
	}
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:i]...)
	return append(next, items[i+1:]...)
}

// appendCopy never shares a backing array with items.
func appendCopy[T any](items []T, item T) []T {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, item)
}

func sameSlice[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return (a == nil) == (b == nil)
	}
	return &a[0] == &b[0]
}
