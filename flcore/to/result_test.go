package to_test

import (
	"errors"
	"testing"

	"github.com/Azure/go-dfa/flcore/to"
	"github.com/stretchr/testify/assert"
)

func TestResultOf(t *testing.T) {
	t.Run("should keep the value", func(t *testing.T) {
		v, err := to.ResultOf(true, nil).Get()
		assert.NoError(t, err)
		assert.True(t, v)
	})
	t.Run("should keep the error", func(t *testing.T) {
		someErr := errors.New("some error")
		r := to.ResultOf(false, someErr)
		assert.ErrorIs(t, r.Err, someErr)
		_, err := r.Get()
		assert.ErrorIs(t, err, someErr)
	})
}
