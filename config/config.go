package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const keyEnv = "ENV"
const envLocal = "local"

const (
	FrontendTerminal = "terminal"
	FrontendScreen   = "screen"
	FrontendWindow   = "window"
)

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	setDefaults(viperConfig)
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

// setDefaults registers the values the game was tuned with, so a missing
// config file still yields a playable round.
func setDefaults(v *viper.Viper) {
	v.SetDefault("game.half_paddle", 0.1)
	v.SetDefault("game.initial_position", 0.0)
	v.SetDefault("game.initial_velocity", 0.01)
	v.SetDefault("game.just_timing_boost", 1.1)
	v.SetDefault("game.timing_bonus", false)
	v.SetDefault("game.tick_duration", "16.666667ms")
	v.SetDefault("display.columns", 64)
	v.SetDefault("display.frontend", FrontendTerminal)
	v.SetDefault("window.width", 960)
	v.SetDefault("window.height", 240)
	v.SetDefault("window.title", "swingpong")
	v.SetDefault("log.level", "info")
	v.SetDefault("audio.enabled", false)
}

func (c *Config) GetHalfPaddle() float64 {
	halfPaddle := c.config.GetFloat64("HALF_PADDLE")
	if halfPaddle == 0 {
		halfPaddle = c.config.GetFloat64("game.half_paddle")
	}

	return halfPaddle
}

func (c *Config) GetInitialPosition() float64 {
	if c.config.IsSet("INITIAL_POSITION") {
		return c.config.GetFloat64("INITIAL_POSITION")
	}

	return c.config.GetFloat64("game.initial_position")
}

func (c *Config) GetInitialVelocity() float64 {
	initialVelocity := c.config.GetFloat64("INITIAL_VELOCITY")
	if initialVelocity == 0 {
		initialVelocity = c.config.GetFloat64("game.initial_velocity")
	}

	return initialVelocity
}

func (c *Config) GetJustTimingBoost() float64 {
	boost := c.config.GetFloat64("JUST_TIMING_BOOST")
	if boost == 0 {
		boost = c.config.GetFloat64("game.just_timing_boost")
	}

	return boost
}

func (c *Config) GetTimingBonus() bool {
	if c.config.IsSet("TIMING_BONUS") {
		return c.config.GetBool("TIMING_BONUS")
	}

	return c.config.GetBool("game.timing_bonus")
}

func (c *Config) GetTickDuration() time.Duration {
	tickDuration := c.config.GetDuration("TICK_DURATION")
	if tickDuration == 0 {
		tickDuration = c.config.GetDuration("game.tick_duration")
	}

	return tickDuration
}

func (c *Config) GetColumns() int {
	columns := c.config.GetInt("TRACK_COLUMNS")
	if columns == 0 {
		columns = c.config.GetInt("display.columns")
	}

	return columns
}

func (c *Config) GetFrontend() string {
	frontend := c.config.GetString("FRONTEND")
	if len(frontend) == 0 {
		frontend = c.config.GetString("display.frontend")
	}

	return frontend
}

func (c *Config) GetWindowWidth() int {
	windowWidth := c.config.GetInt("WINDOW_WIDTH")
	if windowWidth == 0 {
		windowWidth = c.config.GetInt("window.width")
	}

	return windowWidth
}

func (c *Config) GetWindowHeight() int {
	windowHeight := c.config.GetInt("WINDOW_HEIGHT")
	if windowHeight == 0 {
		windowHeight = c.config.GetInt("window.height")
	}

	return windowHeight
}

func (c *Config) GetWindowTitle() string {
	windowTitle := c.config.GetString("WINDOW_TITLE")
	if len(windowTitle) == 0 {
		windowTitle = c.config.GetString("window.title")
	}

	return windowTitle
}

func (c *Config) GetLogFile() string {
	logFile := c.config.GetString("LOG_FILE")
	if len(logFile) == 0 {
		logFile = c.config.GetString("log.file")
	}

	return logFile
}

func (c *Config) GetLogLevel() string {
	logLevel := c.config.GetString("LOG_LEVEL")
	if len(logLevel) == 0 {
		logLevel = c.config.GetString("log.level")
	}

	return logLevel
}

func (c *Config) GetAudioEnabled() bool {
	if c.config.IsSet("AUDIO_ENABLED") {
		return c.config.GetBool("AUDIO_ENABLED")
	}

	return c.config.GetBool("audio.enabled")
}

func (c *Config) GetTraceDir() string {
	traceDir := c.config.GetString("TRACE_DIR")
	if len(traceDir) == 0 {
		traceDir = c.config.GetString("trace.dir")
	}

	return traceDir
}

// WriteYAML saves every effective setting, defaults included, to path.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c.config.AllSettings())
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
