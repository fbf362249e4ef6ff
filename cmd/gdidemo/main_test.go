package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gdikit/internal/config"
	"gdikit/internal/gdi"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gdidemo "+version+"\n", out)
}

func TestConfigCmd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(config.EnvConfigPath, path)

	out, err := execute(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, path)
}

func TestSubcommandsRegistered(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"fill", "blit", "config", "version"})

	for _, flag := range []string{"config", "log-level", "no-tray", "window"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestTrayColor(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := config.DefaultConfig()
	s := &session{cfg: cfg, log: log}

	cfg.Fill.Color = "#ff8000"
	assert.Equal(t, gdi.RGB(0xff, 0x80, 0x00), s.trayColor())
	assert.Empty(t, hook.Entries)

	cfg.Fill.Color = "nope"
	assert.Equal(t, defaultTrayColor, s.trayColor())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
