package envvars_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/engine/envvars"
)

const sep = string(os.PathListSeparator)

type baseRoots string

func (b baseRoots) Root(name, version string) string {
	return filepath.Join(string(b), name, version)
}

func pkg(t *testing.T, name, version string, env map[string]string) *domain.PackageSpec {
	t.Helper()
	v, err := domain.ParseVersion(version)
	require.NoError(t, err)
	return &domain.PackageSpec{Name: name, Version: v, Env: env}
}

func TestCompose_RootAndPathAccumulation(t *testing.T) {
	environ := envvars.MapEnviron{"PATH": "/usr/bin"}
	c := envvars.NewComposer(baseRoots("/opt"), environ)

	vars := c.Compose([]*domain.PackageSpec{
		pkg(t, "maya", "2024.0.0", map[string]string{
			"PATH":      "{root}/bin" + sep + "{PATH}",
			"MAYA_ROOT": "{root}",
		}),
		pkg(t, "arnold", "7.2.0", map[string]string{
			"PATH": "{root}/bin" + sep + "{PATH}",
		}),
	})

	assert.Equal(t, "/opt/arnold/7.2.0/bin"+sep+"/opt/maya/2024.0.0/bin"+sep+"/usr/bin", vars["PATH"])
	assert.Equal(t, "/opt/maya/2024.0.0", vars["MAYA_ROOT"])
}

func TestCompose_LastWriterWins(t *testing.T) {
	c := envvars.NewComposer(baseRoots("/opt"), envvars.MapEnviron{})

	vars := c.Compose([]*domain.PackageSpec{
		pkg(t, "a", "1.0.0", map[string]string{"LICENSE_SERVER": "a.example"}),
		pkg(t, "b", "1.0.0", map[string]string{"LICENSE_SERVER": "b.example"}),
	})

	assert.Equal(t, map[string]string{"LICENSE_SERVER": "b.example"}, vars)
}

func TestCompose_EmptyPathDropsSeparator(t *testing.T) {
	c := envvars.NewComposer(baseRoots("/opt"), envvars.MapEnviron{})

	vars := c.Compose([]*domain.PackageSpec{
		pkg(t, "py", "3.11.0", map[string]string{
			"PYTHONPATH": "{root}/lib" + sep + "{PATH}",
			"EXTRA":      "{PATH}" + sep + "{root}/x",
			"ONLY":       "{PATH}",
		}),
	})

	assert.Equal(t, "/opt/py/3.11.0/lib", vars["PYTHONPATH"])
	assert.Equal(t, "/opt/py/3.11.0/x", vars["EXTRA"])
	assert.Empty(t, vars["ONLY"])
}

func TestPairs(t *testing.T) {
	assert.Equal(t, []string{"A=1", "B=2"}, envvars.Pairs(map[string]string{"B": "2", "A": "1"}))
}

func TestRender(t *testing.T) {
	vars := map[string]string{
		"NEXON_ENV": "shot01",
		"TITLE":     "hello world",
	}

	assert.Equal(t, "NEXON_ENV=shot01\nTITLE='hello world'\n", envvars.RenderDotenv(vars))
	assert.Equal(t, "export NEXON_ENV=shot01\nexport TITLE='hello world'\n", envvars.RenderShell(vars))
}

func TestWithActiveEnv(t *testing.T) {
	vars := map[string]string{"A": "1"}
	out := envvars.WithActiveEnv(vars, "shot01")

	assert.Equal(t, map[string]string{"A": "1", domain.ActiveEnvVar: "shot01"}, out)
	assert.NotContains(t, vars, domain.ActiveEnvVar)
}
