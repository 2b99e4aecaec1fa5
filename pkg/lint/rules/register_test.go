package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/repolint/pkg/lint"
)

func TestRegisterAll(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	assert.Equal(t, []string{"RL001", "RL002", "RL003"}, registry.IDs())

	tests := []struct {
		id    string
		name  string
		tag   string
		scope lint.Scope
	}{
		{IDFirstLineHeading, "first-line-heading", tagDocs, lint.ScopeFile},
		{IDModuleTag, "module-tag", tagStyle, lint.ScopeFile},
		{IDPackageLayout, "package-layout", tagStyle, lint.ScopePackage},
	}

	for _, tt := range tests {
		rule, ok := registry.Get(tt.id)
		require.True(t, ok, "%s should be registered", tt.id)
		assert.Equal(t, tt.name, rule.Name())
		assert.Equal(t, []string{tt.tag}, rule.Tags())
		assert.Equal(t, tt.scope, rule.Scope())
		assert.True(t, rule.DefaultEnabled())
		assert.NotEmpty(t, rule.Description())
	}
}

func TestDefaultRegistryPopulated(t *testing.T) {
	_, ok := lint.DefaultRegistry.Get("module-tag")
	assert.True(t, ok, "init should register built-in rules")
}
