package guard_test

import (
	"errors"
	"testing"

	"shipping/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("tracking code must be created via NewTrackingCode")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_given_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type receiver struct {
		name  string
		guard guard.ConstructorGuard
	}

	errReceiverNotConstructed := errors.New("receiver must be created via newReceiver")

	newReceiver := func(name string) (receiver, error) {
		if name == "" {
			return receiver{}, errors.New("receiver name is required")
		}
		return receiver{name: name, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_is_valid", func(t *testing.T) {
		r, err := newReceiver("Jane Doe")

		require.NoError(t, err)
		require.NoError(t, r.guard.Validate(errReceiverNotConstructed))
		assert.Equal(t, "Jane Doe", r.name)
	})

	t.Run("struct_literal_is_invalid", func(t *testing.T) {
		r := receiver{name: "Jane Doe"}

		assert.Equal(t, errReceiverNotConstructed, r.guard.Validate(errReceiverNotConstructed))
	})

	t.Run("copy_keeps_state", func(t *testing.T) {
		r, err := newReceiver("Jane Doe")
		require.NoError(t, err)

		cp := r

		require.NoError(t, cp.guard.Validate(errReceiverNotConstructed))
	})
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})

	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}

	for range 50 {
		<-done
	}
}
