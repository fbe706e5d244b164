package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         [][]string
		expectedExit int
	}{
		{
			name:         "Version",
			args:         [][]string{{"version"}},
			expectedExit: 0,
		},
		{
			name: "Create and list environment",
			args: [][]string{
				{"env", "create", "shot01", "--role", "fx"},
				{"env", "list"},
			},
			expectedExit: 0,
		},
		{
			name:         "Unknown environment",
			args:         [][]string{{"env", "show", "ghost"}},
			expectedExit: 1,
		},
		{
			name:         "Unknown command",
			args:         [][]string{{"explode"}},
			expectedExit: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseDir := t.TempDir()
			t.Setenv("NEXON_BASE_DIR", baseDir)
			t.Setenv("NEXON_STORE", "file")

			exitCode := 0
			for _, args := range tt.args {
				exitCode = run(args)
			}
			assert.Equal(t, tt.expectedExit, exitCode)
		})
	}
}

func TestRun_PersistsAcrossInvocations(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("NEXON_BASE_DIR", baseDir)
	t.Setenv("NEXON_STORE", "file")

	assert.Equal(t, 0, run([]string{"env", "create", "shot01"}))
	assert.FileExists(t, filepath.Join(baseDir, "environments", "shot01.yaml"))
	assert.Equal(t, 0, run([]string{"env", "lock", "shot01"}))

	_, err := os.Stat(filepath.Join(baseDir, "environments", "shot01.lock.yaml"))
	assert.NoError(t, err)
}
