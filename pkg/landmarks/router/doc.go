// Package router provides the list/detail navigation for the app.
//
// There are two routes: "list" and "detail/{name}". A Navigator holds the
// route stack (never deeper than two) and a Router runs one registered
// screen function per route, feeding each screen's Result back into the
// Navigator.
//
// # Basic Usage
//
//	r := router.New()
//
//	r.Register(router.ScreenList, func(route router.Route, resume any) (router.Result, error) {
//	    res := listScreen(resume)
//	    return router.Result{Action: router.ActionSelect, Name: res.Name, Resume: res.Position}, nil
//	})
//
//	r.Register(router.ScreenDetail, func(route router.Route, _ any) (router.Result, error) {
//	    detailScreen(route.Name)
//	    return router.Result{Action: router.ActionBack}, nil
//	})
//
//	err := r.Run()
//
// # Resume State
//
// The list screen returns its scroll position as Resume when it selects an
// attraction. The router stores it with the list route, and when the detail
// screen goes back the list screen receives it again so the selection and
// scroll offset survive the round trip.
//
// # Back
//
// Navigator.GoBack is a no-op on the list route. The Router treats a back
// action from the list as the end of the session and returns from Run.
package router
