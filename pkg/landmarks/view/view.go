// Package view describes what each screen shows and what it reports back,
// independent of how it is drawn. The SDL screens in package landmarks
// implement Views; tests substitute scripted implementations.
package view

import "github.com/tourguide/landmarks/pkg/landmarks/constants"

// Hint is a footer entry such as "B Back".
type Hint struct {
	Button constants.VirtualButton
	Label  string
}

// ListPosition is the list's selection and scroll offset, kept across a
// detail visit.
type ListPosition struct {
	SelectedIndex     int
	VisibleStartIndex int
}

// ListInput is everything the attraction list renders.
type ListInput struct {
	Title        string
	Items        []string
	EmptyMessage string
	Position     ListPosition
	Hints        []Hint
}

// ListAction is how the list screen ended.
type ListAction int

const (
	ListActionSelected ListAction = iota // Items[Index] was chosen
	ListActionBack                       // Back pressed on the list
	ListActionQuit                       // Window closed or power button
)

// ListOutput is returned by the list screen.
type ListOutput struct {
	Action   ListAction
	Index    int
	Position ListPosition
}

// Status is a transient line shown on the detail screen.
type Status struct {
	Message string
	Failed  bool
}

// DetailInput is everything the detail screen renders for one attraction.
type DetailInput struct {
	Name          string
	ImagePath     string // Empty or missing files show a placeholder
	Description   string
	LocationLabel string
	Location      string // Human readable coordinates
	MapTarget     string // The geo URI the map action launches
	OpenMapLabel  string
	Hints         []Hint

	// OpenMap launches MapTarget. The screen stays where it is and shows
	// the returned status.
	OpenMap func() Status
}

// NotFoundInput is shown when a detail route names no attraction.
type NotFoundInput struct {
	Title string
	Body  string
	Hints []Hint
}

// DetailAction is how a detail or not-found screen ended.
type DetailAction int

const (
	DetailActionBack DetailAction = iota
	DetailActionQuit
)

// DetailOutput is returned by the detail and not-found screens.
type DetailOutput struct {
	Action DetailAction
}

// Views draws the app's screens. Every call blocks until the user leaves
// the screen.
type Views interface {
	List(in ListInput) (ListOutput, error)
	Detail(in DetailInput) (DetailOutput, error)
	NotFound(in NotFoundInput) (DetailOutput, error)
}
