package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "github.com/konverta/leadscan/cmd/leadscan"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "leadscan")
	})

	t.Run("help succeeds without a database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Commands")
	})

	t.Run("unknown command errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"frobnicate"}, stdout, stderr)
		require.Error(t, err)
	})
}
