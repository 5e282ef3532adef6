package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"github.com/df07/go-pathtracer/pkg/config"
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/progress"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run parses the command line, renders one scene and writes its outputs
func run(args []string, stdout *os.File) error {
	flags := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	flags.SetOutput(stdout)

	var f config.Flags
	flags.StringVar(&f.Scene, "scene", "", "Scene name or path to a .json scene file (default \"basic\")")
	configPath := flags.String("config", "", "Path to a JSON config file")
	flags.IntVar(&f.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&f.Samples, "spp", 0, "Samples per pixel (0 = scene default)")
	flags.IntVar(&f.Depth, "depth", 0, "Maximum bounce depth (0 = scene default)")
	flags.Int64Var(&f.Seed, "seed", 0, "Base random seed; row j uses seed+j (0 = 42)")
	flags.IntVar(&f.Workers, "workers", 0, "Number of parallel workers (0 = CPU count)")
	flags.StringVar(&f.OutputDir, "out", "", "Output directory (default \"output\")")
	flags.Float64Var(&f.Brightness, "brightness", 0, "Exposure multiplier (0 = 1.0)")
	flags.StringVar(&f.Exports, "export", "", "Extra formats to write next to the PPM: "+formatList())
	flags.IntVar(&f.Thumbnail, "thumb", 0, "Also write a PNG preview with this longest side")
	list := flags.Bool("list", false, "List available scenes and exit")
	help := flags.Bool("help", false, "Show help information")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *help {
		printHelp(stdout, flags)
		return nil
	}
	if *list {
		printScenes(stdout)
		return nil
	}

	var cfg config.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.Resolve(f)
	if err := cfg.Validate(); err != nil {
		return err
	}
	formats, err := cfg.Formats()
	if err != nil {
		return err
	}

	logger := renderer.NewDefaultLogger()

	s, err := createScene(cfg.Scene)
	if err != nil {
		return err
	}
	logger.Printf("Using scene %s\n", s.Name)

	camera, err := s.NewCamera(cfg.Width)
	if err != nil {
		return err
	}

	outputPath := cfg.OutputPath(s.Name)
	img, _, err := renderer.Render(s, camera, outputPath, cfg.RenderConfig(s.Sampling, s.Name), progress.New(stdout), logger)
	if err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", outputPath)

	return writeExtras(img, outputPath, formats, cfg.Thumbnail, logger)
}

// createScene builds a registered scene or loads a scene file
func createScene(name string) (*scene.Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("no scene given")
	}
	return scene.Create(name)
}

// writeExtras converts the finished render into the requested formats and an optional preview
func writeExtras(img *image.RGBA, outputPath string, formats []loaders.Format, thumbnail int, logger core.Logger) error {
	for _, format := range formats {
		if format == loaders.FormatPPM {
			continue
		}
		path := loaders.ExportPath(outputPath, format)
		if err := loaders.Export(img, path, format); err != nil {
			return err
		}
		logger.Printf("Exported %s\n", path)
	}

	if thumbnail > 0 {
		path := strings.TrimSuffix(outputPath, ".ppm") + "_thumb.png"
		if err := loaders.Export(loaders.Thumbnail(img, thumbnail), path, loaders.FormatPNG); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", path)
	}
	return nil
}

func formatList() string {
	names := make([]string, len(loaders.Formats))
	for i, format := range loaders.Formats {
		names[i] = string(format)
	}
	return strings.Join(names, ",")
}

func printHelp(out io.Writer, flags *flag.FlagSet) {
	fmt.Fprintln(out, "Path Tracer")
	fmt.Fprintln(out, "Usage: pathtracer [options]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Options:")
	flags.PrintDefaults()
	fmt.Fprintln(out)
	printScenes(out)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Output is written to <out>/<scene>.ppm")
}

func printScenes(out io.Writer) {
	fmt.Fprintln(out, "Available scenes:")
	for _, info := range scene.Builtins() {
		fmt.Fprintf(out, "  %-15s %s\n", info.Name, info.Description)
	}
	files, err := scene.ListSceneFiles("scenes")
	if err != nil {
		return
	}
	for _, info := range files {
		fmt.Fprintf(out, "  %-15s %s\n", info.FilePath, info.DisplayName)
	}
}
