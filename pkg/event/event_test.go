package event

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_RequiresName(t *testing.T) {
	ev, err := New("")
	require.Error(t, err)
	require.Nil(t, ev)
	require.True(t, IsInvalidArgument(err))
}

func TestCreate_NilArgsBecomeEmpty(t *testing.T) {
	ev, err := Create("tick", nil)
	require.NoError(t, err)
	require.Equal(t, "tick", ev.Name())
	require.Equal(t, 0, ev.NumArgs())
	require.NotNil(t, ev.Args())
	require.Empty(t, ev.Args())
}

func TestCreate_CopiesArgs(t *testing.T) {
	args := []any{1, "two"}
	ev, err := Create("tick", args)
	require.NoError(t, err)

	args[0] = 99
	v, ok := ev.Arg(0)
	require.True(t, ok)
	require.Equal(t, 1, v)

	out := ev.Args()
	out[1] = "changed"
	v, _ = ev.Arg(1)
	require.Equal(t, "two", v)
}

func TestCreateIndexed_ReindexesDensely(t *testing.T) {
	ev, err := CreateIndexed("tick", map[int]any{7: "c", 2: "a", 5: "b"})
	require.NoError(t, err)
	require.Equal(t, []any{"a", "b", "c"}, ev.Args())
	require.Equal(t, 3, ev.NumArgs())
}

func TestArg_OutOfRange(t *testing.T) {
	ev, err := New("tick", "only")
	require.NoError(t, err)

	for _, i := range []int{-1, 1, 10} {
		v, ok := ev.Arg(i)
		require.False(t, ok, "index %d", i)
		require.Nil(t, v)
	}
}

func TestStopPropagation_Twice(t *testing.T) {
	ev, err := New("tick")
	require.NoError(t, err)
	require.False(t, ev.IsPropagationStopped())

	require.NoError(t, ev.StopPropagation())
	require.True(t, ev.IsPropagationStopped())

	err = ev.StopPropagation()
	require.ErrorIs(t, err, ErrAlreadyStopped)
	require.True(t, IsAlreadyStopped(err))
	require.True(t, ev.IsPropagationStopped(), "stopped flag never resets")
}

func TestIsPropagationStopped_NilEvent(t *testing.T) {
	var ev *Event
	require.False(t, ev.IsPropagationStopped())
}
