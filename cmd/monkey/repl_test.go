package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/monkey-lang/monkey/parser"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		input string
		more  bool
	}{
		{"let x =", true},
		{"fn(x) {", true},
		{"if (x) {", true},
		{"[1, 2,", true},
		{`"abc`, false}, // strings cannot span lines
		{"let x 5;", false},
		{"@", false},
	}
	for _, tt := range tests {
		_, err := parser.Parse(context.Background(), tt.input)
		require.Error(t, err, "input: %q", tt.input)
		require.Equal(t, tt.more, needsMoreInput(err), "input: %q", tt.input)
	}
}

func TestHistoryFilePathOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	viper.Set("history-file", path)
	t.Cleanup(func() { viper.Set("history-file", "") })
	require.Equal(t, path, historyFilePath())
}

func TestAppendHistoryFoldsNewlines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")
	appendHistory(path, "let x =\n5")
	appendHistory(path, "1 + 2")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "let x = 5\n1 + 2\n", string(data))
}

func TestAppendHistoryNoPathIsSafe(t *testing.T) {
	appendHistory("", "let x = 1")
}
