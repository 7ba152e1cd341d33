package router

import "fmt"

// Action is what a screen asks the router to do once it returns.
type Action int

const (
	ActionNone   Action = iota // Show the same route again
	ActionSelect               // Open the detail route for Result.Name
	ActionBack                 // Go back; exits when already on the list
	ActionExit                 // Leave the router
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSelect:
		return "select"
	case ActionBack:
		return "back"
	case ActionExit:
		return "exit"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Result is returned by a screen when it finishes.
type Result struct {
	Action Action
	Name   string // Attraction name for ActionSelect
	Resume any    // Position state stored with the route when navigating forward
}

// ScreenFunc runs a screen for route. resume is the state the screen returned
// the last time it navigated forward from this route, or nil.
type ScreenFunc func(route Route, resume any) (Result, error)

// TransitionFunc observes every route change.
type TransitionFunc func(from, to Route)

// Router drives the screen loop on top of a Navigator.
// Screens are registered with their functions and every transition goes
// through the Navigator, so the stack rules live in one place.
type Router struct {
	screens    map[Screen]ScreenFunc
	navigator  *Navigator
	transition TransitionFunc
}

// New creates a new Router positioned at the list route.
func New() *Router {
	return &Router{
		screens:   make(map[Screen]ScreenFunc),
		navigator: NewNavigator(),
	}
}

// Register adds a screen to the router.
func (r *Router) Register(screen Screen, fn ScreenFunc) *Router {
	r.screens[screen] = fn
	return r
}

// OnTransition sets a hook called after every route change.
func (r *Router) OnTransition(fn TransitionFunc) *Router {
	r.transition = fn
	return r
}

// Navigator returns the navigator backing the router.
func (r *Router) Navigator() *Navigator {
	return r.navigator
}

// Run shows screens until one returns ActionExit, the list screen returns
// ActionBack, or a screen fails.
func (r *Router) Run() error {
	for {
		current := r.navigator.Current()

		fn, ok := r.screens[current.Screen]
		if !ok {
			return fmt.Errorf("router: screen %s not registered", current.Screen)
		}

		result, err := fn(current, r.navigator.Resume())
		if err != nil {
			return fmt.Errorf("router: %s: %w", current, err)
		}

		if !r.apply(result) {
			return nil
		}

		if next := r.navigator.Current(); next != current && r.transition != nil {
			r.transition(current, next)
		}
	}
}

// apply updates the navigator for result and reports whether to keep running.
func (r *Router) apply(result Result) bool {
	switch result.Action {
	case ActionSelect:
		r.navigator.SetResume(result.Resume)
		r.navigator.NavigateToDetail(result.Name)
	case ActionBack:
		return r.navigator.GoBack()
	case ActionExit:
		return false
	}
	return true
}
