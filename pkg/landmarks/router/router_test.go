package router

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigatorStartsAtList(t *testing.T) {
	n := NewNavigator()

	assert.Equal(t, ListRoute(), n.Current())
	assert.Equal(t, 1, n.Depth())
	assert.Nil(t, n.Resume())
}

func TestNavigatorRoundTrip(t *testing.T) {
	for _, name := range []string{"La Tour Eiffel", "Taipei 101", "Nonexistent", "a/b"} {
		n := NewNavigator()

		n.NavigateToDetail(name)
		assert.Equal(t, DetailRoute(name), n.Current())
		assert.Equal(t, name, n.Current().Name)
		assert.Equal(t, 2, n.Depth())

		assert.True(t, n.GoBack())
		assert.Equal(t, ListRoute(), n.Current())
		assert.Equal(t, 1, n.Depth())
	}
}

func TestNavigatorGoBackFromListIsNoop(t *testing.T) {
	n := NewNavigator()

	assert.False(t, n.GoBack())
	assert.False(t, n.GoBack())
	assert.Equal(t, ListRoute(), n.Current())
	assert.Equal(t, 1, n.Depth())
}

func TestNavigatorDepthCapped(t *testing.T) {
	n := NewNavigator()

	n.NavigateToDetail("Stonehenge")
	n.NavigateToDetail("Taipei 101")

	assert.Equal(t, MaxDepth, n.Depth())
	assert.Equal(t, DetailRoute("Taipei 101"), n.Current())

	assert.True(t, n.GoBack())
	assert.Equal(t, ListRoute(), n.Current())
}

func TestNavigatorResume(t *testing.T) {
	n := NewNavigator()
	n.SetResume(7)
	n.NavigateToDetail("Stonehenge")
	assert.Nil(t, n.Resume())

	n.GoBack()
	assert.Equal(t, 7, n.Resume())
}

func TestRouteString(t *testing.T) {
	assert.Equal(t, "list", ListRoute().String())
	assert.Equal(t, "detail/Taipei 101", DetailRoute("Taipei 101").String())
}

func TestParseRoute(t *testing.T) {
	r, err := ParseRoute("list")
	require.NoError(t, err)
	assert.Equal(t, ListRoute(), r)

	r, err = ParseRoute("detail/Taipei 101")
	require.NoError(t, err)
	assert.Equal(t, DetailRoute("Taipei 101"), r)

	r, err = ParseRoute("detail/AC/DC Hall")
	require.NoError(t, err)
	assert.Equal(t, "AC/DC Hall", r.Name)

	for _, s := range []string{"", "detail/", "detail", "settings", "List"} {
		_, err := ParseRoute(s)
		assert.ErrorIs(t, err, ErrUnknownRoute, s)
	}
}

func TestRouterSelectThenBack(t *testing.T) {
	r := New()
	var seen []Route

	listCalls := 0
	r.Register(ScreenList, func(route Route, resume any) (Result, error) {
		seen = append(seen, route)
		listCalls++
		if listCalls == 1 {
			assert.Nil(t, resume)
			return Result{Action: ActionSelect, Name: "Taipei 101", Resume: 3}, nil
		}
		assert.Equal(t, 3, resume)
		return Result{Action: ActionBack}, nil
	})
	r.Register(ScreenDetail, func(route Route, _ any) (Result, error) {
		seen = append(seen, route)
		return Result{Action: ActionBack}, nil
	})

	require.NoError(t, r.Run())
	assert.Equal(t, []Route{ListRoute(), DetailRoute("Taipei 101"), ListRoute()}, seen)
	assert.Equal(t, ListRoute(), r.Navigator().Current())
}

func TestRouterNoneRerunsScreen(t *testing.T) {
	r := New()
	calls := 0

	r.Register(ScreenList, func(Route, any) (Result, error) {
		calls++
		if calls < 3 {
			return Result{Action: ActionNone}, nil
		}
		return Result{Action: ActionExit}, nil
	})

	require.NoError(t, r.Run())
	assert.Equal(t, 3, calls)
}

func TestRouterScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New()

	r.Register(ScreenList, func(Route, any) (Result, error) {
		return Result{Action: ActionSelect, Name: "Stonehenge"}, nil
	})
	r.Register(ScreenDetail, func(Route, any) (Result, error) {
		return Result{}, boom
	})

	err := r.Run()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "detail/Stonehenge")
}

func TestRouterUnregisteredScreen(t *testing.T) {
	r := New()
	r.Register(ScreenList, func(Route, any) (Result, error) {
		return Result{Action: ActionSelect, Name: "Stonehenge"}, nil
	})

	err := r.Run()
	assert.ErrorContains(t, err, "detail not registered")
}
