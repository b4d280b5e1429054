package lookahead_test

import (
	"errors"
	"testing"

	"go.llib.dev/testcase/assert"

	"go.llib.dev/lookahead"
)

func TestError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("boom")
	i := lookahead.Error[int](expectedErr)

	assert.Must(t).False(i.Next())
	assert.Must(t).ErrorIs(expectedErr, i.Err())
	assert.Must(t).Nil(i.Close())

	lower, upper, known := lookahead.SizeHint(i)
	assert.Must(t).True(known)
	assert.Must(t).Equal(0, lower)
	assert.Must(t).Equal(0, upper)
}
