package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stepmap/stepmap/pkg/errors"
)

func TestNotFoundError(t *testing.T) {
	err := errors.NewNotFoundError("framework", "svelte")

	assert.Equal(t, "framework with ID svelte not found", err.Error())
	assert.True(t, stderrors.Is(err, errors.ErrNotFound))
	assert.True(t, errors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	err := errors.NewValidationError("from", "abc", "must be numeric")

	assert.Contains(t, err.Error(), "from")
	assert.True(t, errors.IsValidationError(err))
}

func TestUnsupportedFrameworkError(t *testing.T) {
	err := errors.NewUnsupportedFrameworkError("svelte")

	assert.Equal(t, `framework "svelte" is not supported`, err.Error())
	assert.True(t, errors.IsUnsupportedFramework(err))
	assert.False(t, errors.IsNotFound(err))
}

func TestLoadErrorUnwraps(t *testing.T) {
	cause := errors.New("corrupt JSON")
	err := errors.NewLoadError("embedded", "data/nextjs.json", cause)

	assert.Contains(t, err.Error(), "embedded")
	assert.Contains(t, err.Error(), "data/nextjs.json")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestParseError(t *testing.T) {
	cause := errors.New("unexpected token")
	err := errors.NewParseError("json", "angular.json", cause.Error(), cause)

	assert.Contains(t, err.Error(), "angular.json")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestWrapHelpersNilSafe(t *testing.T) {
	assert.Nil(t, errors.WrapValidation("from", nil))
	assert.Nil(t, errors.WrapLoad("files", "/tmp", nil))
	assert.Nil(t, errors.WrapParse("yaml", "steps.yaml", nil))
}
