package nethys_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/nethys"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := nethys.Errorf(nethys.ENOTFOUND, "record %q not found", "spell-1")

	assert.Equal(t, nethys.ENOTFOUND, nethys.ErrorCode(err))
	assert.Equal(t, "record \"spell-1\" not found", nethys.ErrorMessage(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("list corpus: %w", nethys.Errorf(nethys.ECONFIG, "data directory missing"))

	assert.Equal(t, nethys.ECONFIG, nethys.ErrorCode(err))
	assert.Equal(t, "data directory missing", nethys.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("disk full")

	assert.Equal(t, nethys.EINTERNAL, nethys.ErrorCode(err))
	assert.Equal(t, "Internal error.", nethys.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nethys.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, nethys.ErrorMessage(nil))
}
