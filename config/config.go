// Package config provides configuration loading and access for the sketches.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalidSpawnRequest is returned when a sketch is configured with
// parameters that cannot produce a valid entity (negative radius,
// negative capacity, non-decaying fragments and so on).
var ErrInvalidSpawnRequest = errors.New("invalid spawn request")

// Config holds all sketch configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Playground PlaygroundConfig `yaml:"playground"`
	Fireworks  FireworksConfig  `yaml:"fireworks"`
	Camera     CameraConfig     `yaml:"camera"`
	Viewer     ViewerConfig     `yaml:"viewer"`
	Shape      ShapeConfig      `yaml:"shape"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Audio      AudioConfig      `yaml:"audio"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	TargetFPS  int    `yaml:"target_fps"`
	Background uint32 `yaml:"background"` // 0xRRGGBB clear color for 3D sketches
}

// PhysicsConfig holds frame timing.
type PhysicsConfig struct {
	DT float64 `yaml:"dt"` // seconds per frame, used by timelines
}

// PlaygroundConfig holds the box grid and circle spawner parameters.
type PlaygroundConfig struct {
	Title           string  `yaml:"title"`
	TitleFraction   float64 `yaml:"title_fraction"` // font size as a fraction of screen width
	Rows            int     `yaml:"rows"`
	Cols            int     `yaml:"cols"`
	BoxFraction     float64 `yaml:"box_fraction"` // box side as a fraction of screen width
	BoxAlpha        float64 `yaml:"box_alpha"`
	SpinRate        float64 `yaml:"spin_rate"`         // rad/frame for spin-positive boxes
	ReverseSpinRate float64 `yaml:"reverse_spin_rate"` // rad/frame for spin-negative boxes
	CircleCapacity  int     `yaml:"circle_capacity"`
	CircleMaxRadius float64 `yaml:"circle_max_radius"`
	Background      uint32  `yaml:"background"`
}

// FireworksConfig holds the shell/burst particle parameters.
type FireworksConfig struct {
	SpawnChance   float64 `yaml:"spawn_chance"` // probability per frame of spawning a batch
	SpawnBatch    int     `yaml:"spawn_batch"`
	FragmentCount int     `yaml:"fragment_count"`
	Gravity       float64 `yaml:"gravity"`   // vertical, must be negative
	FadeStep      float64 `yaml:"fade_step"` // opacity lost per frame by fragments
	ShellSpreadX  float64 `yaml:"shell_spread_x"`
	ShellSpreadZ  float64 `yaml:"shell_spread_z"`
	ShellMaxSpeed float64 `yaml:"shell_max_speed"`
	FragmentSpeed float64 `yaml:"fragment_speed"`
	FragmentScale float64 `yaml:"fragment_scale"`
	ShellSize     float64 `yaml:"shell_size"`
	FragmentSize  float64 `yaml:"fragment_size"`
}

// CameraConfig holds the fireworks camera rig start state and drive steps.
type CameraConfig struct {
	FOV        float64    `yaml:"fov"`
	Position   [3]float64 `yaml:"position"`
	Pitch      float64    `yaml:"pitch"`
	MoveStep   float64    `yaml:"move_step"`
	RotateStep float64    `yaml:"rotate_step"`
}

// ViewerConfig holds the cube viewer scene parameters.
type ViewerConfig struct {
	HeightFraction       float64    `yaml:"height_fraction"` // share of the window used by the 3D view
	CameraOrigin         [3]float64 `yaml:"camera_origin"`
	CameraTarget         [3]float64 `yaml:"camera_target"`
	TargetYaw            float64    `yaml:"target_yaw"`
	GlideFactor          float64    `yaml:"glide_factor"`
	CubeColor            uint32     `yaml:"cube_color"`
	GroundColor          uint32     `yaml:"ground_color"`
	AmbientIntensity     float64    `yaml:"ambient_intensity"`
	DirectionalIntensity float64    `yaml:"directional_intensity"`
	LightDirection       [3]float64 `yaml:"light_direction"`
	TimelineDelay        float64    `yaml:"timeline_delay"`
}

// ShapeConfig holds the static shape sketch parameters.
type ShapeConfig struct {
	Color    uint32  `yaml:"color"`
	Fraction float64 `yaml:"fraction"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// AudioConfig holds burst sound parameters.
type AudioConfig struct {
	SampleRate      int     `yaml:"sample_rate"`
	PopFrequency    float64 `yaml:"pop_frequency"`
	PopDurationMS   int     `yaml:"pop_duration_ms"`
	Volume          float64 `yaml:"volume"` // beep effects.Volume exponent (base 2)
	MaxPopsPerFrame int     `yaml:"max_pops_per_frame"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	DT32      float32 // Physics.DT as float32
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32

	// FragmentLifetime is the number of frames a fragment survives
	// before its opacity drops below zero.
	FragmentLifetime int
	// MaxRiseFrames bounds the frames a shell can rise before bursting.
	MaxRiseFrames int
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.computeDerived()

	return cfg, nil
}

// Validate checks that the spawn parameters describe entities that can exist
// and terminate. Zero boxes or zero fragments are allowed; negative sizes are not.
func (c *Config) Validate() error {
	if err := c.Playground.Validate(); err != nil {
		return err
	}
	return c.Fireworks.Validate()
}

// Validate checks the box grid and circle spawner parameters.
func (p *PlaygroundConfig) Validate() error {
	switch {
	case p.Rows < 0 || p.Cols < 0:
		return fmt.Errorf("%w: negative grid size %dx%d", ErrInvalidSpawnRequest, p.Rows, p.Cols)
	case p.BoxFraction < 0:
		return fmt.Errorf("%w: negative box size %g", ErrInvalidSpawnRequest, p.BoxFraction)
	case p.CircleCapacity < 0:
		return fmt.Errorf("%w: negative circle capacity %d", ErrInvalidSpawnRequest, p.CircleCapacity)
	case p.CircleMaxRadius < 0:
		return fmt.Errorf("%w: negative circle radius %g", ErrInvalidSpawnRequest, p.CircleMaxRadius)
	}
	return nil
}

// Validate checks the shell/burst parameters. Gravity must pull down and
// fragments must fade, otherwise fireworks would never complete.
func (f *FireworksConfig) Validate() error {
	switch {
	case f.SpawnChance < 0 || f.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %g outside [0,1]", ErrInvalidSpawnRequest, f.SpawnChance)
	case f.SpawnBatch < 0:
		return fmt.Errorf("%w: negative spawn batch %d", ErrInvalidSpawnRequest, f.SpawnBatch)
	case f.FragmentCount < 0:
		return fmt.Errorf("%w: negative fragment count %d", ErrInvalidSpawnRequest, f.FragmentCount)
	case f.Gravity >= 0:
		return fmt.Errorf("%w: gravity %g must be negative", ErrInvalidSpawnRequest, f.Gravity)
	case f.FadeStep <= 0:
		return fmt.Errorf("%w: fade step %g must be positive", ErrInvalidSpawnRequest, f.FadeStep)
	case f.ShellMaxSpeed < 0:
		return fmt.Errorf("%w: negative shell speed %g", ErrInvalidSpawnRequest, f.ShellMaxSpeed)
	case f.ShellSize < 0 || f.FragmentSize < 0:
		return fmt.Errorf("%w: negative particle size", ErrInvalidSpawnRequest)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.DT32 = float32(c.Physics.DT)
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	// Opacity starts at 1 and must go strictly below zero.
	c.Derived.FragmentLifetime = int(math.Floor(1/c.Fireworks.FadeStep)) + 1

	// v0 + n*g < 0 first holds at n = floor(v0/|g|) + 1.
	c.Derived.MaxRiseFrames = int(math.Floor(c.Fireworks.ShellMaxSpeed/-c.Fireworks.Gravity)) + 1
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
