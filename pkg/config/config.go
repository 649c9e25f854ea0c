package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every environment variable the renderer reads
const EnvPrefix = "RAYTRACER_"

// Height aliases accepted wherever a height is expected
var heightAliases = map[string]int{
	"HD":      720,
	"FULLHD":  1080,
	"FULL_HD": 1080,
	"4K":      2160,
}

// S3Config holds the optional upload target. Uploads are disabled when Bucket is empty.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Custom endpoint for S3-compatible storage; empty uses AWS
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix, e.g. "renders/"
}

// Enabled reports whether an upload target is configured
func (s S3Config) Enabled() bool {
	return s.Bucket != ""
}

// Config contains everything needed to render and store one image
type Config struct {
	Width           int    // Image width; 0 derives a 16:9 width from Height
	Height          int    // Image height
	SamplesPerPixel int    // Number of rays per pixel
	MaxDepth        int    // Maximum ray bounce depth
	Output          string // Output image path; the extension picks the format
	Scene           string // Built-in scene name or path to a JSON scene
	Workers         int    // Parallel workers (0 = CPU count)
	TileSize        int    // Tile edge length in pixels
	Seed            int64  // Base seed for the per-tile random sources
	Thumbnail       int    // Thumbnail max width (0 = no thumbnail)
	S3              S3Config
}

// Defaults returns the configuration used when nothing overrides it
func Defaults() Config {
	return Config{
		Height:          720,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Output:          "img.png",
		Scene:           "default",
		TileSize:        32,
	}
}

// ParseHeight accepts a positive integer or one of HD, FULLHD, FULL_HD, 4K (case-insensitive)
func ParseHeight(s string) (int, error) {
	if h, ok := heightAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return h, nil
	}
	return parsePositive("height", s)
}

// WidthForHeight returns the 16:9 width for height, truncated
func WidthForHeight(height int) int {
	return int(float64(height) * 16.0 / 9.0)
}

func parsePositive(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s %q: expected non zero value", name, s)
	}
	return v, nil
}

func parseNonNegative(name, s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s %q: expected non negative value", name, s)
	}
	return v, nil
}

// LoadEnvFile reads KEY=VALUE pairs from a dotenv file without touching the process environment.
// A missing file yields an empty map.
func LoadEnvFile(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return vars, nil
}

// LookupFunc resolves an environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// ChainLookup tries each lookup in order and returns the first hit
func ChainLookup(lookups ...LookupFunc) LookupFunc {
	return func(key string) (string, bool) {
		for _, lookup := range lookups {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		return "", false
	}
}

// MapLookup adapts a map, such as the result of LoadEnvFile
func MapLookup(vars map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

// ApplyEnv overrides fields from RAYTRACER_* variables
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}

	var err error
	if v, ok := get("HEIGHT"); ok {
		if c.Height, err = ParseHeight(v); err != nil {
			return fmt.Errorf("%sHEIGHT: %w", EnvPrefix, err)
		}
	}

	// Zero means auto-detect for workers and off for thumbnails
	ints := []struct {
		name      string
		target    *int
		allowZero bool
	}{
		{"WIDTH", &c.Width, false},
		{"SAMPLES", &c.SamplesPerPixel, false},
		{"DEPTH", &c.MaxDepth, false},
		{"WORKERS", &c.Workers, true},
		{"TILE_SIZE", &c.TileSize, false},
		{"THUMBNAIL", &c.Thumbnail, true},
	}
	for _, field := range ints {
		if v, ok := get(field.name); ok {
			parse := parsePositive
			if field.allowZero {
				parse = parseNonNegative
			}
			if *field.target, err = parse(strings.ToLower(field.name), v); err != nil {
				return fmt.Errorf("%s%s: %w", EnvPrefix, field.name, err)
			}
		}
	}

	if v, ok := get("SEED"); ok {
		if c.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
	}

	strs := []struct {
		name   string
		target *string
	}{
		{"OUTPUT", &c.Output},
		{"SCENE", &c.Scene},
		{"S3_BUCKET", &c.S3.Bucket},
		{"S3_REGION", &c.S3.Region},
		{"S3_ENDPOINT", &c.S3.Endpoint},
		{"S3_ACCESS_KEY", &c.S3.AccessKey},
		{"S3_SECRET_KEY", &c.S3.SecretKey},
		{"S3_PREFIX", &c.S3.Prefix},
	}
	for _, field := range strs {
		if v, ok := get(field.name); ok {
			*field.target = v
		}
	}

	return nil
}

// Finalize fills derived fields
func (c *Config) Finalize() {
	if c.Width == 0 {
		c.Width = WidthForHeight(c.Height)
	}
}

// Validate rejects values the renderer cannot work with
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0:
		return fmt.Errorf("width must be positive, got %d", c.Width)
	case c.Height <= 0:
		return fmt.Errorf("height must be positive, got %d", c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	case c.MaxDepth <= 0:
		return fmt.Errorf("max ray depth must be positive, got %d", c.MaxDepth)
	case c.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %d", c.TileSize)
	case c.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	case c.Thumbnail < 0:
		return fmt.Errorf("thumbnail width must not be negative, got %d", c.Thumbnail)
	case c.Output == "":
		return errors.New("output path must not be empty")
	case c.S3.Enabled() && c.S3.Region == "":
		return errors.New("S3 upload requires a region")
	}
	return nil
}

// AspectRatio returns width / height
func (c *Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}
