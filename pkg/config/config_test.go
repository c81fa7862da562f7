package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowgraph/graphengine/pkg/config"
	"github.com/flowgraph/graphengine/pkg/impact"
)

const sampleYAML = `
validate:
  allowMultiple: true
  matchFlow: true
  rules:
    includeIsolatedNode: true
impact:
  direction: upstream
  depth: 2
  includeBoundary: true
  stopNodes: ["x", "y"]
`

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "graphengine.yaml")
	require.NoError(t, os.WriteFile(p, []byte(sampleYAML), 0o644))

	cfg, err := config.Load(p)
	require.NoError(t, err)

	vopts := cfg.ValidateOptions()
	assert.True(t, vopts.AllowMultiple)
	assert.True(t, vopts.MatchFlow)
	require.Len(t, vopts.Rules, 7) // 6 standard + isolated-node

	iopts := cfg.ImpactOptions()
	assert.Equal(t, impact.Upstream, iopts.Direction)
	require.NotNil(t, iopts.Depth)
	assert.Equal(t, 2, *iopts.Depth)
	assert.True(t, iopts.IncludeBoundary)
	assert.ElementsMatch(t, []string{"x", "y"}, iopts.StopNodes)
}

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	cfg := config.Default()
	vopts := cfg.ValidateOptions()
	assert.False(t, vopts.AllowMultiple)
	assert.False(t, vopts.MatchFlow)
	require.Len(t, vopts.Rules, 6)

	iopts := cfg.ImpactOptions()
	assert.Equal(t, impact.Both, iopts.Direction)
	assert.Nil(t, iopts.Depth)
	assert.False(t, iopts.IncludeBoundary)
	require.NotNil(t, iopts.IncludeSeeds)
	assert.True(t, *iopts.IncludeSeeds)
}
