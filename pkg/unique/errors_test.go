// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package unique

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	var errs Errors
	assert.Nil(t, errs.Err())
	assert.False(t, errs.Add(nil))
	assert.True(t, errs.Add(errors.New("one")))
	assert.EqualError(t, errs.Err(), "one")
	assert.False(t, errs.Add(errors.New("one")))
	assert.True(t, errs.Add(errors.New("two")))
	assert.EqualError(t, errs.Err(), "one\ntwo")
}
