package geom

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	err := fail(NoTarget, "camera at %d sees nothing", 3)
	assert.EqualError(t, err, "no target: camera at 3 sees nothing")
	assert.ErrorIs(t, err, ErrNoTarget)
	assert.NotErrorIs(t, err, ErrNoAngleFound)
	assert.Equal(t, NoTarget, KindOf(err))

	// Kinds survive wrapping
	wrapped := errors.Wrap(err, "locate")
	assert.ErrorIs(t, wrapped, ErrNoTarget)
	assert.Equal(t, NoTarget, KindOf(wrapped))
	wrapped = fmt.Errorf("scene: %w", wrapped)
	assert.Equal(t, NoTarget, KindOf(wrapped))
}

func TestErrorStackTrace(t *testing.T) {
	err := fail(InvalidGrid, "grid has no rows")
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestErrorStackTrace")
}

func TestKindOfForeignError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "degenerate triangle", DegenerateTriangle.String())
	assert.Equal(t, "angle too obtuse", ErrAngleTooObtuse.Error())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
