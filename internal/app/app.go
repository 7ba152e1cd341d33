// Package app wires the catalog, navigation, localization and map launcher
// into the list/detail flow. Drawing is delegated to a view.Views.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/tourguide/landmarks/pkg/landmarks/catalog"
	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/launcher"
	"github.com/tourguide/landmarks/pkg/landmarks/locale"
	"github.com/tourguide/landmarks/pkg/landmarks/router"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
)

// Options holds the app's collaborators.
type Options struct {
	Catalog   *catalog.Catalog
	Localizer *locale.Localizer
	Launcher  launcher.URILauncher
	Views     view.Views
	AssetsDir string
	Logger    *slog.Logger
}

// App runs the attraction browser.
type App struct {
	catalog   *catalog.Catalog
	localizer *locale.Localizer
	launcher  launcher.URILauncher
	views     view.Views
	assetsDir string
	logger    *slog.Logger
	ctx       context.Context
}

// New creates an App. Every option except AssetsDir is required.
func New(opts Options) (*App, error) {
	switch {
	case opts.Catalog == nil:
		return nil, errors.New("app: catalog is required")
	case opts.Localizer == nil:
		return nil, errors.New("app: localizer is required")
	case opts.Launcher == nil:
		return nil, errors.New("app: launcher is required")
	case opts.Views == nil:
		return nil, errors.New("app: views are required")
	case opts.Logger == nil:
		return nil, errors.New("app: logger is required")
	}

	return &App{
		catalog:   opts.Catalog,
		localizer: opts.Localizer,
		launcher:  opts.Launcher,
		views:     opts.Views,
		assetsDir: opts.AssetsDir,
		logger:    opts.Logger,
		ctx:       context.Background(),
	}, nil
}

// Router builds the router with the list and detail screens registered.
func (a *App) Router() *router.Router {
	return router.New().
		Register(router.ScreenList, a.listScreen).
		Register(router.ScreenDetail, a.detailScreen).
		OnTransition(func(from, to router.Route) {
			a.logger.Debug("Navigated", "from", from.String(), "to", to.String())
		})
}

// Run shows the list and returns when the user leaves it. Map launches
// started from the detail screen use ctx.
func (a *App) Run(ctx context.Context) error {
	return a.RunRouter(ctx, a.Router())
}

// RunRouter is Run with a caller-built router.
func (a *App) RunRouter(ctx context.Context, r *router.Router) error {
	a.ctx = ctx
	a.logger.Info("Starting", "attractions", a.catalog.Len(), "language", a.localizer.Language().String())

	if err := r.Run(); err != nil {
		return err
	}

	a.logger.Info("Exiting")
	return nil
}

func (a *App) listScreen(_ router.Route, resume any) (router.Result, error) {
	in := view.ListInput{
		Title:        a.localizer.Text(locale.ListTitle),
		Items:        a.catalog.Names(),
		EmptyMessage: a.localizer.Text(locale.ListEmpty),
		Hints: []view.Hint{
			{Button: constants.VirtualButtonB, Label: a.localizer.Text(locale.ButtonExit)},
			{Button: constants.VirtualButtonA, Label: a.localizer.Text(locale.ButtonSelect)},
		},
	}
	if pos, ok := resume.(view.ListPosition); ok {
		in.Position = pos
	}

	out, err := a.views.List(in)
	if err != nil {
		return router.Result{}, err
	}

	switch out.Action {
	case view.ListActionSelected:
		if out.Index < 0 || out.Index >= a.catalog.Len() {
			return router.Result{}, fmt.Errorf("list selection %d out of range [0,%d)", out.Index, a.catalog.Len())
		}
		return router.Result{
			Action: router.ActionSelect,
			Name:   a.catalog.At(out.Index).Name,
			Resume: out.Position,
		}, nil
	case view.ListActionBack:
		return router.Result{Action: router.ActionBack}, nil
	default:
		return router.Result{Action: router.ActionExit}, nil
	}
}

func (a *App) detailScreen(route router.Route, _ any) (router.Result, error) {
	var (
		out view.DetailOutput
		err error
	)

	attraction, lookupErr := a.catalog.Lookup(route.Name)
	if lookupErr != nil {
		a.logger.Warn("Detail route names no attraction", "route", route.String(), "error", lookupErr)
		out, err = a.views.NotFound(a.NotFoundInput(route.Name))
	} else {
		out, err = a.views.Detail(a.DetailInput(attraction))
	}
	if err != nil {
		return router.Result{}, err
	}

	if out.Action == view.DetailActionQuit {
		return router.Result{Action: router.ActionExit}, nil
	}
	return router.Result{Action: router.ActionBack}, nil
}

// DetailInput builds the detail screen for attraction.
func (a *App) DetailInput(attraction catalog.Attraction) view.DetailInput {
	in := view.DetailInput{
		Name:          attraction.Name,
		ImagePath:     attraction.ImagePath(a.assetsDir),
		Description:   a.localizer.Text(attraction.Description),
		LocationLabel: a.localizer.Text(locale.LabelLocation),
		MapTarget:     attraction.MapLocation,
		OpenMapLabel:  a.localizer.Text(locale.ButtonOpenMap),
		Hints: []view.Hint{
			{Button: constants.VirtualButtonB, Label: a.localizer.Text(locale.ButtonBack)},
			{Button: constants.VirtualButtonA, Label: a.localizer.Text(locale.ButtonOpenMap)},
		},
		OpenMap: func() view.Status {
			return a.OpenMap(attraction)
		},
	}

	if coords, err := attraction.Coordinates(); err == nil {
		in.Location = coords.String()
	}

	if in.ImagePath != "" {
		if _, err := os.Stat(in.ImagePath); err != nil {
			a.logger.Warn("Attraction image unavailable", "name", attraction.Name, "path", in.ImagePath, "error", err)
			in.ImagePath = ""
		}
	}

	return in
}

// NotFoundInput builds the screen for a detail route with an unknown name.
func (a *App) NotFoundInput(name string) view.NotFoundInput {
	return view.NotFoundInput{
		Title: a.localizer.Text(locale.NotFoundTitle),
		Body:  a.localizer.Format(locale.NotFoundBody, map[string]any{"Name": name}),
		Hints: []view.Hint{
			{Button: constants.VirtualButtonB, Label: a.localizer.Text(locale.ButtonBack)},
		},
	}
}

// OpenMap hands the attraction's map location to the launcher unmodified.
func (a *App) OpenMap(attraction catalog.Attraction) view.Status {
	err := a.launcher.Launch(a.ctx, attraction.MapLocation)
	if errors.Is(err, launcher.ErrBusy) {
		a.logger.Info("Map opener still running", "name", attraction.Name, "uri", attraction.MapLocation)
		return view.Status{Message: a.localizer.Text(locale.MapOpening)}
	}
	if err != nil {
		a.logger.Error("Map launch failed", "name", attraction.Name, "uri", attraction.MapLocation, "error", err)
		return view.Status{Message: a.localizer.Text(locale.MapFailed), Failed: true}
	}

	a.logger.Info("Map launched", "name", attraction.Name, "uri", attraction.MapLocation)
	return view.Status{Message: a.localizer.Text(locale.MapOpening)}
}
