package landmarks

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tourguide/landmarks/pkg/landmarks/constants"
	"github.com/tourguide/landmarks/pkg/landmarks/view"
)

func TestInfrastructureError(t *testing.T) {
	cause := errors.New("font missing")
	err := fmt.Errorf("startup: %w", NewInfrastructureError("init", cause))

	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, cause)
	assert.EqualError(t, err, "startup: landmarks: init: font missing")

	assert.False(t, IsInfrastructureError(cause))
	assert.EqualError(t, NewInfrastructureError("render", nil), "landmarks: render")
}

func TestScreensRequireInit(t *testing.T) {
	_, err := Views{}.List(view.ListInput{})
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSplitHints(t *testing.T) {
	back := view.Hint{Button: constants.VirtualButtonB, Label: "Back"}
	open := view.Hint{Button: constants.VirtualButtonA, Label: "Open in Maps"}

	left, right := splitHints([]view.Hint{back, open})
	assert.Equal(t, []view.Hint{back}, left)
	assert.Equal(t, []view.Hint{open}, right)

	left, right = splitHints(nil)
	assert.Empty(t, left)
	assert.Empty(t, right)
}
