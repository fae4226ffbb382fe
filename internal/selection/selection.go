// Package selection tracks row checkboxes and issues bulk deletes.
package selection

// Set is the checkbox state of the rows currently on screen.
type Set struct {
	order   []string
	checked map[string]bool
}

// NewSet creates a set for rows with the given ids, all unchecked.
func NewSet(ids []string) *Set {
	s := &Set{checked: make(map[string]bool, len(ids))}
	for _, id := range ids {
		if _, dup := s.checked[id]; dup {
			continue
		}
		s.order = append(s.order, id)
		s.checked[id] = false
	}
	return s
}

// Len is the number of rows.
func (s *Set) Len() int { return len(s.order) }

// ToggleAll sets every row to the header checkbox state.
func (s *Set) ToggleAll(checked bool) {
	for _, id := range s.order {
		s.checked[id] = checked
	}
}

// Set changes one row. Unknown ids are ignored.
func (s *Set) Set(id string, checked bool) {
	if _, ok := s.checked[id]; ok {
		s.checked[id] = checked
	}
}

// Toggle flips one row.
func (s *Set) Toggle(id string) {
	if v, ok := s.checked[id]; ok {
		s.checked[id] = !v
	}
}

// Checked reports the state of one row.
func (s *Set) Checked(id string) bool { return s.checked[id] }

// Selected returns the checked ids in row order.
func (s *Set) Selected() []string {
	var out []string
	for _, id := range s.order {
		if s.checked[id] {
			out = append(out, id)
		}
	}
	return out
}
