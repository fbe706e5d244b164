package envvars_test

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/engine/envvars"
)

func TestActivate_RestoresPriorState(t *testing.T) {
	environ := envvars.MapEnviron{"PATH": "/usr/bin", "KEEP": "yes"}
	c := envvars.NewComposer(baseRoots("/opt"), environ)

	act, err := c.Activate(map[string]string{"PATH": "/opt/bin:/usr/bin", "NEW_VAR": "1"})
	require.NoError(t, err)
	assert.Equal(t, "/opt/bin:/usr/bin", environ["PATH"])
	assert.Equal(t, "1", environ["NEW_VAR"])
	assert.Equal(t, []string{"NEW_VAR", "PATH"}, act.Keys())

	require.NoError(t, act.Restore())
	assert.Equal(t, envvars.MapEnviron{"PATH": "/usr/bin", "KEEP": "yes"}, environ)

	environ["PATH"] = "changed"
	require.NoError(t, act.Restore())
	assert.Equal(t, "changed", environ["PATH"])
}

type failingEnviron struct {
	envvars.MapEnviron
	failOn string
}

func (f failingEnviron) Setenv(key, value string) error {
	if key == f.failOn {
		return errors.New("refused")
	}
	return f.MapEnviron.Setenv(key, value)
}

func TestActivate_RollsBackOnFailure(t *testing.T) {
	environ := failingEnviron{MapEnviron: envvars.MapEnviron{}, failOn: "B"}
	c := envvars.NewComposer(baseRoots("/opt"), environ)

	act, err := c.Activate(map[string]string{"A": "1", "B": "2"})
	require.Error(t, err)
	assert.Nil(t, act)
	assert.Empty(t, environ.MapEnviron)
}

func TestActivate_ProcessEnvironment(t *testing.T) {
	t.Setenv("NEXON_ACTIVATION_TEST", "before")

	c := envvars.NewComposer(baseRoots("/opt"), envvars.OSEnviron{})
	act, err := c.Activate(map[string]string{
		"NEXON_ACTIVATION_TEST":  "during",
		"NEXON_ACTIVATION_FRESH": "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "during", os.Getenv("NEXON_ACTIVATION_TEST"))

	require.NoError(t, act.Restore())
	assert.Equal(t, "before", os.Getenv("NEXON_ACTIVATION_TEST"))
	_, ok := os.LookupEnv("NEXON_ACTIVATION_FRESH")
	assert.False(t, ok)
}
