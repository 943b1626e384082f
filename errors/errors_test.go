package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type declError struct {
	function string
}

func (e *declError) Error() string { return "missing reference [" + e.function + "]" }
func (e *declError) Unwrap() error { return ErrDeclaration }

func TestWrappingKeepsSentinel(t *testing.T) {
	err := Wrapf(&declError{function: "alGenSources"}, "generate %s", "org.lwjgl.openal.AL10")
	err = Wrap(err, "validate templates")

	assert.True(t, IsDeclarationError(err))
	assert.False(t, IsResolutionError(err))
	assert.Equal(t, "validate templates: generate org.lwjgl.openal.AL10: missing reference [alGenSources]", err.Error())

	var target *declError
	require.True(t, As(err, &target))
	assert.Equal(t, "alGenSources", target.function)
}

func TestHintsSurviveWrapping(t *testing.T) {
	err := WithHint(Wrapf(ErrStale, "%d stale and %d missing generated files", 2, 0), "run 'nativegen generate' to regenerate")
	err = WithDetail(err, "java/org/lwjgl/egl/EGL10.java")
	err = Wrap(err, "check")

	assert.True(t, Is(err, ErrStale))
	assert.Equal(t, []string{"run 'nativegen generate' to regenerate"}, GetAllHints(err))
	assert.Equal(t, "run 'nativegen generate' to regenerate", FlattenHints(err))
	assert.Equal(t, []string{"java/org/lwjgl/egl/EGL10.java"}, GetAllDetails(err))
}

func TestStackTrace(t *testing.T) {
	detailed := fmt.Sprintf("%+v", New("with stack"))
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
	assert.False(t, IsNotFoundError(nil))
}

func TestSentinels(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", Wrap(ErrNotFound, "native class EGL99"), IsNotFoundError},
		{"declaration", Wrapf(ErrDeclaration, "duplicate native class %s", "EGL10"), IsDeclarationError},
		{"resolution", WithHint(Wrap(ErrResolution, "phase"), "check the modifiers"), IsResolutionError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(New("other")))
			assert.False(t, tt.check(nil))
		})
	}
}

func TestNewInvalidConfigError(t *testing.T) {
	err := NewInvalidConfigError("generate.workers must be >= 0, got %d", -1)
	assert.True(t, Is(err, ErrInvalidConfig))
	assert.Equal(t, "generate.workers must be >= 0, got -1: invalid configuration", err.Error())
}

func ExampleWithHint() {
	err := WithHint(Wrap(ErrNotFound, "native class GL99"), "run 'nativegen list' to see the bundled classes")
	fmt.Println(err)
	fmt.Println(FlattenHints(err))
	// Output:
	// native class GL99: not found
	// run 'nativegen list' to see the bundled classes
}
