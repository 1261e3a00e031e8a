package root

import (
	"path/filepath"
	"testing"

	"anand/fintrack/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitRegistersPersistentFlags(t *testing.T) {
	Init()

	input := Cmd.PersistentFlags().Lookup("input")
	require.NotNil(t, input)
	assert.Equal(t, "i", input.Shorthand)

	output := Cmd.PersistentFlags().Lookup("output")
	require.NotNil(t, output)
	assert.Equal(t, "o", output.Shorthand)
}

func TestOpenStoreUsesConfiguredPath(t *testing.T) {
	prev := Cfg
	defer func() { Cfg = prev }()

	Cfg = &config.Config{}
	Cfg.Store.Path = filepath.Join(t.TempDir(), "tx.yaml")

	s, err := OpenStore()
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNewCategorizerWithoutConfig(t *testing.T) {
	prev := Cfg
	defer func() { Cfg = prev }()
	Cfg = nil

	cat, cleanup, err := NewCategorizer(t.Context())
	require.NoError(t, err)
	defer cleanup()
	assert.NotNil(t, cat)
}
