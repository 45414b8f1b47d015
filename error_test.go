package presrag_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/presrag"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := presrag.Errorf(presrag.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, presrag.ENOTFOUND, presrag.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", presrag.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, presrag.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("loading corpus: %w", presrag.Errorf(presrag.ENOTFOUND, "no documents"))

	assert.Equal(t, presrag.ENOTFOUND, presrag.ErrorCode(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, presrag.EINTERNAL, presrag.ErrorCode(fmt.Errorf("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, presrag.ErrorMessage(nil))
}
