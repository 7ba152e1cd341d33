package landmarks

import "github.com/tourguide/landmarks/pkg/landmarks/view"

// Views draws the app's screens with SDL. Init must have succeeded.
type Views struct{}

var _ view.Views = Views{}

func (Views) List(in view.ListInput) (view.ListOutput, error) {
	return List(in)
}

func (Views) Detail(in view.DetailInput) (view.DetailOutput, error) {
	return Detail(in)
}

func (Views) NotFound(in view.NotFoundInput) (view.DetailOutput, error) {
	return NotFound(in)
}
