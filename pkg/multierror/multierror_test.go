package multierror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppend(t *testing.T) {
	a := errors.New("a")
	b := errors.New("b")

	t.Run("drops nils", func(t *testing.T) {
		r := require.New(t)

		r.NoError(Append(nil))
		r.NoError(Append(nil, nil, nil))
		r.Equal(a, Append(nil, nil, a))
	})

	t.Run("can combine errors", func(t *testing.T) {
		r := require.New(t)

		err := Append(a, b)
		r.ErrorIs(err, a)
		r.ErrorIs(err, b)
		r.Equal("a\nb", err.Error())
		r.Len(Errors(err), 2)
	})

	t.Run("extends an existing multierror", func(t *testing.T) {
		r := require.New(t)

		c := errors.New("c")

		err := Append(Append(a, b), c)
		r.Len(Errors(err), 3)
		r.ErrorIs(err, c)
	})
}
