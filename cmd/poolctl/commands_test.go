package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	for _, bad := range []string{"0", "-3", "abc", ""} {
		_, err = parseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestRootCommandTree(t *testing.T) {
	for _, path := range [][]string{
		{"balance"},
		{"transfer"},
		{"pool", "show"},
		{"pool", "list"},
		{"pool", "create"},
		{"pool", "join"},
		{"pool", "fill"},
		{"pool", "pay"},
		{"pool", "finalize"},
		{"wallets", "create"},
		{"roles", "check"},
		{"roles", "grant"},
		{"token", "info"},
	} {
		cmd, _, err := rootCmd.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestExecute_ClosesResourcesWhenCommandFails(t *testing.T) {
	closed := 0
	closers = append(closers, func() { closed++ })

	err := execute(context.Background(), []string{"pool", "show"})

	require.Error(t, err)
	assert.Equal(t, 1, closed)
	assert.Empty(t, closers)
}
