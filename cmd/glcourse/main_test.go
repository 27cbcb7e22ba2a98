package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/go-theft-auto/glcourse"
)

// parseConfig runs the command line through the real flag set and returns
// the resulting configuration.
func parseConfig(t *testing.T, args ...string) (*glcourse.Config, error) {
	t.Helper()
	var cfg *glcourse.Config
	app := &cli.App{
		Name:  "glcourse",
		Flags: appFlags,
		Action: func(c *cli.Context) error {
			var err error
			cfg, err = makeConfig(c)
			return err
		},
	}
	err := app.Run(append([]string{"glcourse"}, args...))
	return cfg, err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "course.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeConfig(t, `
width = 640
title = "From File"
lesson = "window"
clear_color = [0.2, 0.3, 0.3, 1.0]
`)
	cfg, err := parseConfig(t, "--config", path, "--width", "1024")
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Width, "flag wins")
	assert.Equal(t, 600, cfg.Height, "default kept")
	assert.Equal(t, "From File", cfg.Title)
	assert.Equal(t, glcourse.LessonWindow, cfg.Lesson)
	assert.Equal(t, mgl32.Vec4{0.2, 0.3, 0.3, 1}, cfg.EffectiveClearColor())
}

func TestFlagDefaultsDoNotOverrideFile(t *testing.T) {
	path := writeConfig(t, "vsync = false\nstrict_shaders = false\n")
	cfg, err := parseConfig(t, "--config", path)
	require.NoError(t, err)

	assert.False(t, cfg.VSync)
	assert.False(t, cfg.StrictShaders)
	assert.Equal(t, glcourse.LessonValidate, cfg.Lesson)
}

func TestFlagsWithoutConfigFile(t *testing.T) {
	cfg, err := parseConfig(t, "--lesson", "triangle", "--frames", "10", "--hidden")
	require.NoError(t, err)

	assert.Equal(t, glcourse.LessonTriangle, cfg.Lesson)
	assert.Equal(t, uint64(10), cfg.MaxFrames)
	assert.True(t, cfg.Hidden)
	assert.Equal(t, "Test Window", cfg.Title)
}

func TestUnknownLessonFlag(t *testing.T) {
	_, err := parseConfig(t, "--lesson", "cube")
	assert.Error(t, err)
}

func TestUnpairedShaderFlag(t *testing.T) {
	_, err := parseConfig(t, "--vertex", "tri.vert")
	assert.Error(t, err)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := parseConfig(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
