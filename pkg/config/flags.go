package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// Load builds the configuration from defaults, the dotenv file at envFile,
// the process environment and finally args (without the program name).
// The process environment wins over the dotenv file.
func Load(args []string, envFile string, usage io.Writer) (Config, error) {
	cfg := Defaults()

	fileVars, err := LoadEnvFile(envFile)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(ChainLookup(os.LookupEnv, MapLookup(fileVars))); err != nil {
		return cfg, err
	}

	cfg, err = FromArgs(args, cfg, usage)
	if err != nil {
		return cfg, err
	}

	cfg.Finalize()
	return cfg, cfg.Validate()
}

// FromArgs applies command-line flags on top of base. The single positional
// argument is the image height. Returns flag.ErrHelp when -h or -help is given.
func FromArgs(args []string, base Config, usage io.Writer) (Config, error) {
	cfg := base
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	if usage == nil {
		usage = io.Discard
	}
	fs.SetOutput(usage)
	fs.Usage = func() {
		fmt.Fprintln(usage, "Sphere Raytracer")
		fmt.Fprintln(usage, "Usage: raytracer [options] [height]")
		fmt.Fprintln(usage)
		fmt.Fprintln(usage, "height is a pixel count or one of HD, FULLHD, FULL_HD, 4K (default HD)")
		fmt.Fprintln(usage)
		fmt.Fprintln(usage, "Options:")
		fs.PrintDefaults()
	}

	width := cfg.Width
	fs.IntVar(&width, "w", width, "Image width (default: 16/9 of height)")
	fs.IntVar(&width, "width", width, "Image width (default: 16/9 of height)")
	fs.IntVar(&cfg.SamplesPerPixel, "s", cfg.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&cfg.SamplesPerPixel, "samples", cfg.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&cfg.MaxDepth, "d", cfg.MaxDepth, "Max ray depth")
	fs.IntVar(&cfg.MaxDepth, "ray-depth", cfg.MaxDepth, "Max ray depth")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "Output path (.png, .jpg, .gif, .bmp or .tif)")
	fs.StringVar(&cfg.Output, "output", cfg.Output, "Output path (.png, .jpg, .gif, .bmp or .tif)")
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "Scene: default, materials, glass, empty or a .json file")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&cfg.TileSize, "tile-size", cfg.TileSize, "Tile edge length in pixels")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed")
	fs.IntVar(&cfg.Thumbnail, "thumbnail", cfg.Thumbnail, "Also write a thumbnail of this width (0 = off)")
	fs.StringVar(&cfg.S3.Bucket, "s3-bucket", cfg.S3.Bucket, "Upload the render to this S3 bucket")
	fs.StringVar(&cfg.S3.Region, "s3-region", cfg.S3.Region, "S3 region")
	fs.StringVar(&cfg.S3.Endpoint, "s3-endpoint", cfg.S3.Endpoint, "S3-compatible endpoint URL")
	fs.StringVar(&cfg.S3.Prefix, "s3-prefix", cfg.S3.Prefix, "Key prefix for uploads")

	// flag stops at the first positional argument, so resume after it
	var positional []string
	rest := args
	for {
		if err := fs.Parse(rest); err != nil {
			return cfg, err
		}
		if fs.NArg() == 0 {
			break
		}
		positional = append(positional, fs.Arg(0))
		rest = fs.Args()[1:]
	}

	if len(positional) > 1 {
		return cfg, fmt.Errorf("expected at most one positional height, got %v", positional)
	}
	if len(positional) == 1 {
		height, err := ParseHeight(positional[0])
		if err != nil {
			return cfg, err
		}
		cfg.Height = height
	}

	cfg.Width = width
	return cfg, nil
}
