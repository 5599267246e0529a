package featureflag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatureFlag(t *testing.T) {
	f := New([]string{string(FlagDisableStream)})

	t.Run("run if enabled", func(t *testing.T) {
		var runStream bool
		f.IfSet(FlagDisableStream, func() {
			runStream = true
		})
		require.True(t, runStream)

		var runPprof bool
		f.IfSet(FlagDisablePprof, func() {
			runPprof = true
		})
		require.False(t, runPprof)
	})

	t.Run("run if disabled", func(t *testing.T) {
		var runStream bool
		f.IfNotSet(FlagDisableStream, func() {
			runStream = true
		})
		require.False(t, runStream)

		var runPprof bool
		f.IfNotSet(FlagDisablePprof, func() {
			runPprof = true
		})
		require.True(t, runPprof)
	})
}
