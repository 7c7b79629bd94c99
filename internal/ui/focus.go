package ui

// FocusManager tracks which stopwatch row has keyboard focus.
// Order mirrors the collection's instance IDs; Current is 0 when nothing is
// focused (an empty collection).
type FocusManager struct {
	Current  int
	Order    []int
	OnChange func(from, to int)
}

// Index returns the position of Current in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next moves focus to the following row, stopping at the last one.
func (f *FocusManager) Next() int {
	if len(f.Order) == 0 {
		return 0
	}
	idx := f.Index() + 1
	if idx >= len(f.Order) {
		idx = len(f.Order) - 1
	}
	f.set(f.Order[idx])
	return f.Current
}

// Prev moves focus to the preceding row, stopping at the first one.
func (f *FocusManager) Prev() int {
	if len(f.Order) == 0 {
		return 0
	}
	idx := f.Index() - 1
	if idx < 0 {
		idx = 0
	}
	f.set(f.Order[idx])
	return f.Current
}

// SetFocus focuses id. Returns false if id is not in Order.
func (f *FocusManager) SetFocus(id int) bool {
	for _, o := range f.Order {
		if o == id {
			f.set(id)
			return true
		}
	}
	return false
}

// Append adds id at the end of Order and focuses it.
func (f *FocusManager) Append(id int) {
	f.Order = append(f.Order, id)
	f.set(id)
}

// Remove drops id from Order. If it was focused, focus moves to the row
// that took its place, or the new last row.
func (f *FocusManager) Remove(id int) {
	idx := -1
	for i, o := range f.Order {
		if o == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	f.Order = append(f.Order[:idx], f.Order[idx+1:]...)
	if f.Current != id {
		return
	}
	switch {
	case len(f.Order) == 0:
		f.set(0)
	case idx < len(f.Order):
		f.set(f.Order[idx])
	default:
		f.set(f.Order[len(f.Order)-1])
	}
}

func (f *FocusManager) set(id int) {
	from := f.Current
	f.Current = id
	if f.OnChange != nil && from != id {
		f.OnChange(from, id)
	}
}
