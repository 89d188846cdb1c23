package supervisor

import (
	"testing"

	supervisorerrors "go-leaveflow/internal/supervisor/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	a := Supervisor{ID: uuid.New(), Department: "IT"}
	b := Supervisor{ID: uuid.New(), Department: "IT"}

	t.Run("none", func(t *testing.T) {
		_, err := Resolve(nil)
		assert.ErrorIs(t, err, supervisorerrors.ErrSupervisorNotFound)
	})

	t.Run("exactly one", func(t *testing.T) {
		got, err := Resolve([]Supervisor{a})
		assert.NoError(t, err)
		assert.Equal(t, a.ID, got.ID)
	})

	t.Run("ambiguous", func(t *testing.T) {
		_, err := Resolve([]Supervisor{a, b})
		assert.ErrorIs(t, err, supervisorerrors.ErrAmbiguousSupervisor)
	})
}

func TestFirst(t *testing.T) {
	a := Supervisor{ID: uuid.New()}
	b := Supervisor{ID: uuid.New()}

	assert.Nil(t, First(nil))
	assert.Equal(t, a.ID, First([]Supervisor{a, b}).ID)
}
