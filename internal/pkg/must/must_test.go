// Copyright: This file is part of boundcheck, released under https://github.com/korrel8r/boundcheck/blob/main/LICENSE

package must

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.PanicsWithError(t, "boom", func() { Must(errors.New("boom")) })
	assert.PanicsWithError(t, "loading x: 2", func() { Must(errors.New("boom"), "loading %v: %v", "x", 2) })
	assert.Equal(t, "ok", Must1("ok", nil))
}
