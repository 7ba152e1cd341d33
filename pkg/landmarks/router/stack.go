package router

// StackEntry represents a single entry in the navigation stack.
// It stores the route that was shown and any resume state the screen
// returned before navigating away from it.
type StackEntry struct {
	Route  Route
	Resume any
}

// Stack manages navigation history for back navigation.
type Stack struct {
	entries []StackEntry
}

// NewStack creates a new empty navigation stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0, MaxDepth),
	}
}

// Push adds a new entry to the stack.
func (s *Stack) Push(route Route, resume any) {
	s.entries = append(s.entries, StackEntry{
		Route:  route,
		Resume: resume,
	})
}

// Pop removes and returns the top entry from the stack.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	entry := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return &entry
}

// Peek returns the top entry without removing it.
// The returned pointer stays valid until the next Push or Pop.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}
