package router

// MaxDepth is the deepest the navigation stack gets: the list plus one detail.
const MaxDepth = 2

// Navigator is the two-state navigation machine:
//
//	list --NavigateToDetail(name)--> detail/{name}
//	detail/{name} --GoBack--> list
//
// It starts at the list route and never holds more than MaxDepth entries.
// The Navigator does not check names against the catalog; resolving a name
// is the detail screen's job.
type Navigator struct {
	stack *Stack
}

// NewNavigator returns a Navigator positioned at the list route.
func NewNavigator() *Navigator {
	n := &Navigator{stack: NewStack()}
	n.stack.Push(ListRoute(), nil)
	return n
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	return n.stack.Peek().Route
}

// Depth returns the number of routes on the stack (1 or 2).
func (n *Navigator) Depth() int {
	return n.stack.Len()
}

// Resume returns the resume state stored with the current route, if any.
func (n *Navigator) Resume() any {
	return n.stack.Peek().Resume
}

// SetResume stores resume state on the current route. It is handed back
// through Resume when navigation returns to this route.
func (n *Navigator) SetResume(resume any) {
	n.stack.Peek().Resume = resume
}

// NavigateToDetail shows the detail route for name. From a detail route
// the current entry is replaced rather than stacked.
func (n *Navigator) NavigateToDetail(name string) {
	if n.Current().Screen == ScreenDetail {
		n.stack.Pop()
	}
	n.stack.Push(DetailRoute(name), nil)
}

// GoBack returns to the list route. It reports false and changes nothing
// when the list is already showing.
func (n *Navigator) GoBack() bool {
	if n.stack.Len() <= 1 {
		return false
	}
	n.stack.Pop()
	return true
}
