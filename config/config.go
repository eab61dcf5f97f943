// Package config resolves startup options from defaults, environment and flags
// Precedence: flags > process environment > .env file > defaults
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/lixenwraith/bingo-caller/display"
)

// Environment variable names
const (
	EnvNumberSize = "BINGO_NUMBER_SIZE"
	EnvZoom       = "BINGO_ZOOM"
	EnvColor      = "BINGO_COLOR"
	EnvDebug      = "BINGO_DEBUG"
)

// DefaultEnvFile is read when present; a missing file is not an error
const DefaultEnvFile = ".env"

// ColorMode selects terminal color depth
type ColorMode string

const (
	ColorAuto      ColorMode = "auto"
	ColorTrueColor ColorMode = "truecolor"
	Color256       ColorMode = "256"
)

// ParseColorMode normalizes a color mode name
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "truecolor", "true", "24bit":
		return ColorTrueColor, nil
	case "256":
		return Color256, nil
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// Config holds resolved startup options
type Config struct {
	NumberSize int
	Zoom       int
	Color      ColorMode
	Debug      bool
	EnvFile    string
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		NumberSize: display.NumberSizeDefault,
		Zoom:       display.ZoomDefault,
		Color:      ColorAuto,
		EnvFile:    DefaultEnvFile,
	}
}

// Settings converts the display options, clamped into bounds
func (c Config) Settings() display.Settings {
	return display.New(c.NumberSize, c.Zoom)
}

// LookupFunc reads an environment variable, as os.LookupEnv
type LookupFunc func(key string) (string, bool)

// Load parses args (without program name) and merges environment defaults
// lookup nil uses os.LookupEnv
func Load(name string, args []string, lookup LookupFunc, output io.Writer) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	cfg := Default()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	if output != nil {
		fset.SetOutput(output)
	}
	numberSize := fset.Int("number-size", cfg.NumberSize,
		fmt.Sprintf("current number size (%d-%d)", display.NumberSizeMin, display.NumberSizeMax))
	zoom := fset.Int("zoom", cfg.Zoom,
		fmt.Sprintf("board zoom percent (%d-%d)", display.ZoomMin, display.ZoomMax))
	color := fset.String("color", string(cfg.Color), "color mode: auto, truecolor, 256")
	debug := fset.Bool("debug", cfg.Debug, "write debug log to logs/")
	envFile := fset.String("env", cfg.EnvFile, "dotenv file with BINGO_* defaults")

	if err := fset.Parse(args); err != nil {
		return cfg, err
	}

	set := make(map[string]bool)
	fset.Visit(func(f *flag.Flag) { set[f.Name] = true })

	cfg.EnvFile = *envFile
	fileEnv, err := readEnvFile(cfg.EnvFile)
	if err != nil {
		return cfg, err
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := fileEnv[key]
		return v, ok
	}

	// Environment seeds unset flags; malformed values are ignored
	if v, ok := env(EnvNumberSize); ok && !set["number-size"] {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*numberSize = n
		}
	}
	if v, ok := env(EnvZoom); ok && !set["zoom"] {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*zoom = n
		}
	}
	if v, ok := env(EnvColor); ok && !set["color"] {
		if _, err := ParseColorMode(v); err == nil {
			*color = v
		}
	}
	if v, ok := env(EnvDebug); ok && !set["debug"] {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			*debug = b
		}
	}

	mode, err := ParseColorMode(*color)
	if err != nil {
		return cfg, fmt.Errorf("flag -color: %w", err)
	}

	cfg.NumberSize = display.Clamp(*numberSize, display.NumberSizeMin, display.NumberSizeMax)
	cfg.Zoom = display.Clamp(*zoom, display.ZoomMin, display.ZoomMax)
	cfg.Color = mode
	cfg.Debug = *debug
	return cfg, nil
}

// Report writes a Load failure to w and returns the process exit code
// -h/-help exits cleanly; flag already printed the usage
func Report(w io.Writer, err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	fmt.Fprintf(w, "Configuration error: %v\n", err)
	return 2
}

// readEnvFile loads key/value pairs without touching the process environment
func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vals, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return vals, nil
}
