package lint

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/repolint/pkg/config"
)

func newTestEngine(rules ...Rule) *Engine {
	reg := NewRegistry()
	for _, r := range rules {
		reg.Register(r)
	}
	return NewEngine(reg)
}

func TestEngine_CheckFile_AccumulatesAllRules(t *testing.T) {
	t.Parallel()

	first := newMockRule("RL010", "first", "docs")
	first.apply = func(ctx *RuleContext) ([]ValidationError, error) {
		return []ValidationError{{Message: "first problem"}}, nil
	}
	second := newMockRule("RL011", "second", "docs")
	second.apply = func(ctx *RuleContext) ([]ValidationError, error) {
		return []ValidationError{
			{Message: "second problem"},
			{Subject: "custom", Message: "third problem"},
		}, nil
	}
	engine := newTestEngine(second, first)

	rec := NewFileRecord("/repo/docs/a.md", "docs/a.md", "body")
	errs, err := engine.CheckFile(context.Background(), rec, config.NewConfig(), config.SuiteDocs)
	require.NoError(t, err)
	require.Len(t, errs, 3)

	assert.Equal(t, "docs/a.md: first problem", errs[0].String())
	assert.Equal(t, "RL010", errs[0].RuleID)
	assert.Equal(t, "first", errs[0].RuleName)
	assert.Equal(t, "docs/a.md: second problem", errs[1].String())
	assert.Equal(t, "custom: third problem", errs[2].String(), "explicit subject is kept")
}

func TestEngine_CheckFile_SelectsSuiteAndScope(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(id string) func(*RuleContext) ([]ValidationError, error) {
		return func(ctx *RuleContext) ([]ValidationError, error) {
			calls = append(calls, id)
			return nil, nil
		}
	}

	docsRule := newMockRule("RL001", "docs-file", "docs")
	docsRule.apply = record("RL001")
	styleFile := newMockRule("RL002", "style-file", "style")
	styleFile.apply = record("RL002")
	stylePkg := newMockRule("RL003", "style-package", "style")
	stylePkg.scope = ScopePackage
	stylePkg.apply = record("RL003")

	engine := newTestEngine(docsRule, styleFile, stylePkg)
	cfg := config.NewConfig()

	rec := NewFileRecord("/x.ts", "", "")
	_, err := engine.CheckFile(context.Background(), rec, cfg, config.SuiteStyle)
	require.NoError(t, err)
	assert.Equal(t, []string{"RL002"}, calls)

	calls = nil
	pkg := &PackageDescriptor{Name: "core"}
	_, err = engine.CheckPackage(context.Background(), pkg, cfg, config.SuiteStyle)
	require.NoError(t, err)
	assert.Equal(t, []string{"RL003"}, calls)

	assert.True(t, engine.HasScope(cfg, config.SuiteStyle, ScopePackage))
	assert.False(t, engine.HasScope(cfg, config.SuiteDocs, ScopePackage))
}

func TestEngine_CheckFile_RuleFailureBecomesError(t *testing.T) {
	t.Parallel()

	broken := newMockRule("RL010", "broken", "docs")
	broken.apply = func(*RuleContext) ([]ValidationError, error) {
		return nil, errors.New("boom")
	}
	ok := newMockRule("RL011", "ok", "docs")
	ok.apply = func(*RuleContext) ([]ValidationError, error) {
		return []ValidationError{{Message: "still runs"}}, nil
	}
	engine := newTestEngine(broken, ok)

	rec := NewFileRecord("/a.md", "a.md", "x")
	errs, err := engine.CheckFile(context.Background(), rec, nil, config.SuiteDocs)
	require.NoError(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, "a.md: Rule broken failed - boom", errs[0].String())
	assert.Equal(t, "a.md: still runs", errs[1].String())
}

func TestEngine_RespectsRuleConfig(t *testing.T) {
	t.Parallel()

	rule := newMockRule("RL010", "configurable", "docs")
	rule.apply = func(ctx *RuleContext) ([]ValidationError, error) {
		return []ValidationError{{Message: ctx.OptionString("msg", "default")}}, nil
	}
	optIn := newMockRule("RL011", "opt-in", "docs")
	optIn.enabled = false
	optIn.apply = func(*RuleContext) ([]ValidationError, error) {
		return []ValidationError{{Message: "opt-in ran"}}, nil
	}
	engine := newTestEngine(rule, optIn)
	rec := NewFileRecord("/a.md", "a.md", "x")

	t.Run("options by name", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Rules["configurable"] = config.RuleConfig{Options: map[string]any{"msg": "by name"}}

		errs, err := engine.CheckFile(context.Background(), rec, cfg, config.SuiteDocs)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "by name", errs[0].Message)
	})

	t.Run("id wins over name", func(t *testing.T) {
		t.Parallel()
		cfg := config.NewConfig()
		cfg.Rules["configurable"] = config.RuleConfig{Options: map[string]any{"msg": "by name"}}
		cfg.Rules["RL010"] = config.RuleConfig{Options: map[string]any{"msg": "by id"}}

		errs, err := engine.CheckFile(context.Background(), rec, cfg, config.SuiteDocs)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "by id", errs[0].Message)
	})

	t.Run("enable and disable", func(t *testing.T) {
		t.Parallel()
		on, off := true, false
		cfg := config.NewConfig()
		cfg.Rules["RL010"] = config.RuleConfig{Enabled: &off}
		cfg.Rules["opt-in"] = config.RuleConfig{Enabled: &on}

		errs, err := engine.CheckFile(context.Background(), rec, cfg, config.SuiteDocs)
		require.NoError(t, err)
		require.Len(t, errs, 1)
		assert.Equal(t, "opt-in ran", errs[0].Message)
	})
}

func TestEngine_Cancelled(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(newMockRule("RL010", "any", "docs"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.CheckFile(ctx, NewFileRecord("/a.md", "", "x"), nil, config.SuiteDocs)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
