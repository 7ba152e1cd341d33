package router

import (
	"errors"
	"fmt"
	"strings"
)

// Screen identifies one of the app's screens.
type Screen int

const (
	ScreenList Screen = iota
	ScreenDetail
)

// ScreenExit is a special Screen value that signals the router to exit.
const ScreenExit Screen = -1

func (s Screen) String() string {
	switch s {
	case ScreenList:
		return "list"
	case ScreenDetail:
		return "detail"
	case ScreenExit:
		return "exit"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

const detailPrefix = "detail/"

// ErrUnknownRoute is returned by ParseRoute for strings outside the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Route is a navigation target. Name is only set for detail routes.
type Route struct {
	Screen Screen
	Name   string
}

// ListRoute is the app's start route.
func ListRoute() Route {
	return Route{Screen: ScreenList}
}

// DetailRoute targets the detail screen for the attraction called name.
func DetailRoute(name string) Route {
	return Route{Screen: ScreenDetail, Name: name}
}

// String returns "list" or "detail/{name}".
func (r Route) String() string {
	if r.Screen == ScreenDetail {
		return detailPrefix + r.Name
	}
	return r.Screen.String()
}

// ParseRoute is the inverse of Route.String.
// Everything after the first "detail/" is the name, slashes included.
func ParseRoute(s string) (Route, error) {
	switch {
	case s == "list":
		return ListRoute(), nil
	case strings.HasPrefix(s, detailPrefix) && len(s) > len(detailPrefix):
		return DetailRoute(s[len(detailPrefix):]), nil
	}
	return Route{}, fmt.Errorf("router: %w: %q", ErrUnknownRoute, s)
}
