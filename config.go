package glcourse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl32"
)

// Config holds the window and rendering settings.
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	Lesson Lesson `toml:"lesson"`

	// ClearColor overrides the lesson's clear colour when set.
	ClearColor *mgl32.Vec4 `toml:"clear_color"`

	GLMajor int  `toml:"gl_major"`
	GLMinor int  `toml:"gl_minor"`
	VSync   bool `toml:"vsync"`
	Hidden  bool `toml:"hidden"`

	// VertexShader and FragmentShader are file paths. Both empty means
	// the embedded sources are used.
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`

	// StrictShaders makes a failed shader build fatal. Otherwise the
	// lesson keeps running and only clears the screen.
	StrictShaders bool `toml:"strict_shaders"`

	// MaxFrames stops the render loop after that many frames; 0 runs
	// until the window is closed.
	MaxFrames uint64 `toml:"max_frames"`
}

// DefaultConfig returns the settings of the final course lesson.
func DefaultConfig() *Config {
	return &Config{
		Width:         800,
		Height:        600,
		Title:         "Test Window",
		Lesson:        LessonValidate,
		GLMajor:       3,
		GLMinor:       3,
		VSync:         true,
		StrictShaders: true,
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the program can't use.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid window size %dx%d", c.Width, c.Height))
	}
	if !c.Lesson.Valid() {
		errs = append(errs, fmt.Errorf("unknown lesson %d", int(c.Lesson)))
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is too old, need 3.3 core", c.GLMajor, c.GLMinor))
	}
	if (c.VertexShader == "") != (c.FragmentShader == "") {
		errs = append(errs, errors.New("vertex and fragment shader paths must be set together"))
	}
	return errors.Join(errs...)
}

// EffectiveClearColor returns the configured clear colour or the
// lesson default.
func (c *Config) EffectiveClearColor() mgl32.Vec4 {
	if c.ClearColor == nil {
		return c.Lesson.ClearColor()
	}
	return *c.ClearColor
}

// Sources returns the shader sources the configuration selects.
func (c *Config) Sources() (vertex, fragment Source, err error) {
	if c.VertexShader == "" && c.FragmentShader == "" {
		vertex, fragment = EmbeddedSources()
		return vertex, fragment, nil
	}
	if vertex, err = LoadSource(c.VertexShader, VertexStage); err != nil {
		return Source{}, Source{}, err
	}
	if fragment, err = LoadSource(c.FragmentShader, FragmentStage); err != nil {
		return Source{}, Source{}, err
	}
	return vertex, fragment, nil
}
