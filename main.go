package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rtview/go-interactive-raytracer/pkg/config"
	"github.com/rtview/go-interactive-raytracer/pkg/export"
	"github.com/rtview/go-interactive-raytracer/pkg/renderer"
	"github.com/rtview/go-interactive-raytracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'three-spheres'")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	width := flag.Int("width", 0, "Override image width")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	depth := flag.Int("depth", 0, "Override maximum ray bounce depth")
	outputDir := flag.String("out", "output", "Output directory")
	writePPM := flag.Bool("ppm", false, "Also export a plain-text PPM file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Interactive Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default       - Showcase scene with glass, metal and diffuse spheres")
		fmt.Println("  three-spheres - Minimal scene with one sphere per material type")
		fmt.Println()
		fmt.Println("Output is saved to <out>/<scene>/render_<timestamp>.png")
		return
	}

	cfg, selectedScene, err := loadConfiguration(*configPath, *sceneType)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cameraConfig := cfg.CameraConfig()
	if *width > 0 {
		cameraConfig.Width = *width
	}
	if *samples > 0 {
		cameraConfig.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		cameraConfig.MaxDepth = *depth
	}

	sceneDir := filepath.Join(*outputDir, cfg.Scene.Name)
	if err := os.MkdirAll(sceneDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	rt := renderer.NewRenderer(cameraConfig, nil)
	fb := renderer.NewFramebuffer()

	startTime := time.Now()
	rt.BeginRender(selectedScene, fb)
	rt.Wait()
	renderTime := time.Since(startTime)

	stats := rt.Stats()
	fmt.Printf("Render completed in %v (%d samples per pixel)\n", renderTime, stats.SamplesPerPixel)

	timestamp := time.Now().Format("20060102_150405")
	pngPath := filepath.Join(sceneDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := export.SavePNG(pngPath, fb.Image()); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", pngPath)

	if *writePPM {
		pix, w, h := fb.Snapshot()
		ppmPath := filepath.Join(sceneDir, fmt.Sprintf("render_%s.ppm", timestamp))
		if err := export.SavePPM(ppmPath, pix, w, h); err != nil {
			fmt.Printf("Error saving PPM: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Render saved as %s\n", ppmPath)
	}
}

// loadConfiguration resolves the effective configuration and scene:
// the YAML file when given, otherwise defaults with the named scene
func loadConfiguration(configPath, sceneType string) (config.Config, *scene.Scene, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return config.Config{}, nil, err
		}
		cfg = loaded
	} else {
		cfg.Scene.Name = sceneType
	}

	selectedScene, err := cfg.BuildScene()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, selectedScene, nil
}
