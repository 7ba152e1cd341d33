package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourguide/landmarks/pkg/landmarks/catalog"
	"github.com/tourguide/landmarks/pkg/landmarks/launcher"
	"github.com/tourguide/landmarks/pkg/landmarks/locale"
	"github.com/tourguide/landmarks/pkg/landmarks/router"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
)

// scriptedViews replays list outputs in order and records every screen shown.
type scriptedViews struct {
	lists    []view.ListOutput
	onDetail func(in view.DetailInput) view.DetailOutput

	listInputs     []view.ListInput
	detailInputs   []view.DetailInput
	notFoundInputs []view.NotFoundInput
}

func (s *scriptedViews) List(in view.ListInput) (view.ListOutput, error) {
	s.listInputs = append(s.listInputs, in)
	if len(s.lists) == 0 {
		return view.ListOutput{Action: view.ListActionBack}, nil
	}
	out := s.lists[0]
	s.lists = s.lists[1:]
	return out, nil
}

func (s *scriptedViews) Detail(in view.DetailInput) (view.DetailOutput, error) {
	s.detailInputs = append(s.detailInputs, in)
	if s.onDetail != nil {
		return s.onDetail(in), nil
	}
	return view.DetailOutput{Action: view.DetailActionBack}, nil
}

func (s *scriptedViews) NotFound(in view.NotFoundInput) (view.DetailOutput, error) {
	s.notFoundInputs = append(s.notFoundInputs, in)
	return view.DetailOutput{Action: view.DetailActionBack}, nil
}

type recordingLauncher struct {
	uris []string
	err  error
}

func (r *recordingLauncher) Launch(_ context.Context, uri string) error {
	r.uris = append(r.uris, uri)
	return r.err
}

func newTestApp(t *testing.T, c *catalog.Catalog, views view.Views, l launcher.URILauncher) *App {
	t.Helper()

	loc, err := locale.New("en")
	require.NoError(t, err)

	a, err := New(Options{
		Catalog:   c,
		Localizer: loc,
		Launcher:  l,
		Views:     views,
		AssetsDir: t.TempDir(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return a
}

func TestSelectingEachAttractionShowsItsName(t *testing.T) {
	c := catalog.Default()

	for i, name := range c.Names() {
		t.Run(name, func(t *testing.T) {
			views := &scriptedViews{lists: []view.ListOutput{
				{Action: view.ListActionSelected, Index: i, Position: view.ListPosition{SelectedIndex: i}},
				{Action: view.ListActionBack},
			}}
			a := newTestApp(t, c, views, &recordingLauncher{})

			require.NoError(t, a.Run(context.Background()))

			require.Len(t, views.detailInputs, 1)
			assert.Equal(t, name, views.detailInputs[0].Name)

			// Back from the detail returns to the list at the same position.
			require.Len(t, views.listInputs, 2)
			assert.Equal(t, view.ListPosition{SelectedIndex: i}, views.listInputs[1].Position)
		})
	}
}

func TestListShowsCatalogInOrder(t *testing.T) {
	views := &scriptedViews{}
	a := newTestApp(t, catalog.Default(), views, &recordingLauncher{})

	require.NoError(t, a.Run(context.Background()))

	require.Len(t, views.listInputs, 1)
	assert.Equal(t, catalog.Default().Names(), views.listInputs[0].Items)
	assert.Equal(t, "Attractions", views.listInputs[0].Title)
	assert.Zero(t, views.listInputs[0].Position)
}

func TestTaipei101MapLaunch(t *testing.T) {
	c, err := catalog.New(catalog.Attraction{
		Name:        "Taipei 101",
		Description: "taipei_101_description",
		MapLocation: "geo:25.033963,121.564468",
	})
	require.NoError(t, err)

	var status view.Status
	views := &scriptedViews{
		lists: []view.ListOutput{{Action: view.ListActionSelected, Index: 0}},
		onDetail: func(in view.DetailInput) view.DetailOutput {
			status = in.OpenMap()
			return view.DetailOutput{Action: view.DetailActionBack}
		},
	}
	l := &recordingLauncher{}
	a := newTestApp(t, c, views, l)

	require.NoError(t, a.Run(context.Background()))

	require.Len(t, views.detailInputs, 1)
	detail := views.detailInputs[0]
	assert.Equal(t, "Taipei 101", detail.Name)
	assert.Equal(t, "geo:25.033963,121.564468", detail.MapTarget)
	assert.Equal(t, "25.033963, 121.564468", detail.Location)
	assert.Contains(t, detail.Description, "Taipei 101")

	assert.Equal(t, []string{"geo:25.033963,121.564468"}, l.uris)
	assert.False(t, status.Failed)
	assert.Equal(t, "Opening map...", status.Message)
}

func TestMapLaunchFailureIsReported(t *testing.T) {
	views := &scriptedViews{}
	l := &recordingLauncher{err: errors.New("no handler for geo:")}
	a := newTestApp(t, catalog.Default(), views, l)

	attraction, err := catalog.Default().Lookup("Stonehenge")
	require.NoError(t, err)

	status := a.DetailInput(attraction).OpenMap()
	assert.True(t, status.Failed)
	assert.Equal(t, "Could not open a map application", status.Message)
	assert.Equal(t, []string{"geo:51.178882,-1.826215"}, l.uris)
}

func TestMapLaunchWhileOpenerRunning(t *testing.T) {
	l := &recordingLauncher{err: launcher.ErrBusy}
	a := newTestApp(t, catalog.Default(), &scriptedViews{}, l)

	attraction, err := catalog.Default().Lookup("Taipei 101")
	require.NoError(t, err)

	status := a.OpenMap(attraction)
	assert.False(t, status.Failed)
	assert.Equal(t, "Opening map...", status.Message)
}

func TestUnknownDetailRouteShowsNotFound(t *testing.T) {
	views := &scriptedViews{}
	a := newTestApp(t, catalog.Default(), views, &recordingLauncher{})

	r := a.Router()
	r.Navigator().NavigateToDetail("Nonexistent")

	require.NoError(t, a.RunRouter(context.Background(), r))

	assert.Empty(t, views.detailInputs)
	require.Len(t, views.notFoundInputs, 1)
	assert.Equal(t, "Attraction not found", views.notFoundInputs[0].Title)
	assert.Contains(t, views.notFoundInputs[0].Body, "Nonexistent")

	// Back from the not-found screen lands on the list.
	assert.Len(t, views.listInputs, 1)
	assert.Equal(t, router.ListRoute(), r.Navigator().Current())
}

func TestQuitFromDetailExits(t *testing.T) {
	views := &scriptedViews{
		lists: []view.ListOutput{{Action: view.ListActionSelected, Index: 2}},
		onDetail: func(view.DetailInput) view.DetailOutput {
			return view.DetailOutput{Action: view.DetailActionQuit}
		},
	}
	a := newTestApp(t, catalog.Default(), views, &recordingLauncher{})

	require.NoError(t, a.Run(context.Background()))
	assert.Len(t, views.listInputs, 1)
	assert.Len(t, views.detailInputs, 1)
}

func TestOutOfRangeSelection(t *testing.T) {
	views := &scriptedViews{lists: []view.ListOutput{{Action: view.ListActionSelected, Index: 99}}}
	a := newTestApp(t, catalog.Default(), views, &recordingLauncher{})

	assert.ErrorContains(t, a.Run(context.Background()), "out of range")
}

func TestDetailImagePath(t *testing.T) {
	views := &scriptedViews{}
	a := newTestApp(t, catalog.Default(), views, &recordingLauncher{})

	attraction, err := catalog.Default().Lookup("Taipei 101")
	require.NoError(t, err)

	// Missing asset: the screen gets no path and shows a placeholder.
	assert.Empty(t, a.DetailInput(attraction).ImagePath)

	path := filepath.Join(a.assetsDir, "taipei_101.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg"), 0o644))
	assert.Equal(t, path, a.DetailInput(attraction).ImagePath)
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}
