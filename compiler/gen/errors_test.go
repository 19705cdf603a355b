package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Target", "java", "unknown target")
		assert.Equal(t, `myragen: config error for "Target" (value: java): unknown target`, err.Error())
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Dialect", nil, "dialect cannot be nil")
		assert.Equal(t, `myragen: config error for "Dialect": dialect cannot be nil`, err.Error())
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Dialect", nil, "")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.False(t, errors.Is(err, ErrGenerationFailed))
	})

	t.Run("IsConfigError helper", func(t *testing.T) {
		assert.True(t, IsConfigError(fmt.Errorf("wrap: %w", NewConfigError("x", nil, ""))))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := NewGenerationError("synthesize", "TitleUI.g.cs", "execute template", cause)

		assert.Contains(t, err.Error(), "myragen: generation error")
		assert.Contains(t, err.Error(), "in phase synthesize")
		assert.Contains(t, err.Error(), "(file: TitleUI.g.cs)")
		assert.Contains(t, err.Error(), "execute template")
		assert.Contains(t, err.Error(), "underlying error")
	})

	t.Run("Error message with phase only", func(t *testing.T) {
		err := &GenerationError{Phase: "write"}
		assert.Equal(t, "myragen: generation error in phase write", err.Error())
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewGenerationError("write", "", "", cause)
		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("Is matches ErrGenerationFailed", func(t *testing.T) {
		err := NewGenerationError("emit", "", "", nil)
		assert.True(t, errors.Is(err, ErrGenerationFailed))
	})

	t.Run("IsGenerationError helper", func(t *testing.T) {
		assert.True(t, IsGenerationError(NewGenerationError("emit", "", "", nil)))
		assert.False(t, IsGenerationError(errors.New("other")))
	})
}

func TestDocumentError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewDocumentError("Content/UI/A.xml", errors.New("bad"))
		assert.Equal(t, "myragen: error processing Content/UI/A.xml: bad", err.Error())
		assert.Equal(t, "myragen: error processing Content/UI/A.xml", NewDocumentError("Content/UI/A.xml", nil).Error())
	})

	t.Run("Is and Unwrap", func(t *testing.T) {
		cause := NewGenerationError("synthesize", "AUI.g.cs", "", nil)
		err := NewDocumentError("A.xml", cause)
		assert.True(t, errors.Is(err, ErrDocumentFailed))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsDocumentError(err))
		assert.True(t, IsGenerationError(err))
		assert.False(t, IsDocumentError(cause))
	})
}
