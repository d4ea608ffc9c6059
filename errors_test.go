package regscout_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/regscout"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := regscout.Errorf(regscout.ENOTFOUND, "search %q not found", "test")

	assert.Equal(t, regscout.ENOTFOUND, regscout.ErrorCode(err))
	assert.Equal(t, "search \"test\" not found", regscout.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, regscout.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch failed: %w", regscout.Errorf(regscout.EUNAVAILABLE, "HTTP 503"))

	assert.Equal(t, regscout.EUNAVAILABLE, regscout.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, regscout.EINTERNAL, regscout.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, regscout.ErrorMessage(nil))
}
