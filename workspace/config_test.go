package workspace_test

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntcforge/tfsmdev/workspace"
)

func TestConfigRegisterFlags(t *testing.T) {
	t.Parallel()

	cfg := workspace.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse([]string{
		"-v", "cisco_ios",
		"-c", "show version",
		"-i", "2",
		"-y",
	}))

	assert.Equal(t, "cisco_ios", cfg.Vendor)
	assert.Equal(t, "show version", cfg.Command)
	assert.Equal(t, 2, cfg.Index)
	assert.True(t, cfg.YAML)
	assert.False(t, cfg.Generate)
	assert.False(t, cfg.Blank)
	assert.False(t, cfg.Short)
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := workspace.NewConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.RegisterFlags(flags)

	require.NoError(t, flags.Parse(nil))

	assert.Equal(t, 1, cfg.Index)
	assert.Empty(t, cfg.Vendor)
	assert.Empty(t, cfg.Command)
}
