package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nexon/internal/core/domain"
)

func TestNewEnvironment(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))

	withRole := domain.NewEnvironment("shot01", "comp", now)
	assert.Equal(t, "comp", withRole.Role)
	assert.Equal(t, "Environment created via Nexon CLI [comp]", withRole.Description)
	assert.Equal(t, time.UTC, withRole.CreatedAt.Location())
	assert.Empty(t, withRole.Packages)

	custom := domain.NewEnvironment("sandbox", "", now)
	assert.Equal(t, domain.DefaultRole, custom.Role)
	assert.Equal(t, "Custom environment", custom.Description)

	precise := domain.NewEnvironment("shot02", "", now.Add(987654321*time.Nanosecond))
	assert.Equal(t, time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC), precise.CreatedAt)
}

func TestEnvironment_AddRemove(t *testing.T) {
	env := domain.NewEnvironment("shot01", "", time.Now())

	added := env.Add("A-1.0.0", "B-1.0.0", "A-1.0.0")
	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0", "B-1.0.0"}, added)

	added = env.Add("B-1.0.0", "C-2.0.0")
	assert.Equal(t, []domain.ResolvedRef{"C-2.0.0"}, added)
	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0", "B-1.0.0", "C-2.0.0"}, env.Packages)

	assert.True(t, env.Remove("B-1.0.0"))
	assert.False(t, env.Remove("B-1.0.0"))
	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0", "C-2.0.0"}, env.Packages)
}

func TestEnvironment_CloneIsIndependent(t *testing.T) {
	env := domain.NewEnvironment("shot01", "", time.Now())
	env.Add("A-1.0.0")
	env.Env = map[string]string{"K": "v"}

	lock := env.Clone()
	env.Add("B-1.0.0")
	env.Env["K"] = "changed"

	assert.Equal(t, []domain.ResolvedRef{"A-1.0.0"}, lock.Packages)
	assert.Equal(t, "v", lock.Env["K"])
}

func TestDiffEnvironments(t *testing.T) {
	a := &domain.Environment{Name: "a", Role: "base", Packages: []domain.ResolvedRef{"A-1.0.0", "B-1.0.0"}}
	b := &domain.Environment{Name: "b", Role: "fx", Packages: []domain.ResolvedRef{"C-1.0.0", "A-1.0.0"}}

	diff := domain.DiffEnvironments(a, b)

	assert.Equal(t, []domain.ResolvedRef{"C-1.0.0"}, diff.Added)
	assert.Equal(t, []domain.ResolvedRef{"B-1.0.0"}, diff.Removed)
	require.NotNil(t, diff.Role)
	assert.Equal(t, domain.RoleChange{Old: "base", New: "fx"}, *diff.Role)
	assert.False(t, diff.Empty())

	same := domain.DiffEnvironments(a, a)
	assert.True(t, same.Empty())
}

func TestValidateEnvironmentName(t *testing.T) {
	for _, name := range []string{"", "..", "a/b", `a\b`, "shot.lock"} {
		err := domain.ValidateEnvironmentName(name)
		assert.True(t, errors.Is(err, domain.ErrInvalidEnvironmentName), name)
	}
	assert.NoError(t, domain.ValidateEnvironmentName("shot01"))
}
