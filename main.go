package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spectralpath/raytracer/pkg/accel/glaccel"
	"github.com/spectralpath/raytracer/pkg/output"
	"github.com/spectralpath/raytracer/pkg/preview"
	"github.com/spectralpath/raytracer/pkg/renderer"
	"github.com/spectralpath/raytracer/pkg/scene"
)

const version = "1.0"

// Render strategies offered by the interactive prompt.
const (
	strategySequential = iota
	strategyParallel
	strategyAccelerated
)

func main() {
	cfg := renderer.DefaultConfig()

	samples := flag.Int("s", cfg.SamplesPerPixel, "number of samples per pixel")
	seed := flag.Int64("seed", cfg.Seed, "base random seed")
	out := flag.String("o", "res/output.png", "output PNG path")
	showPreview := flag.Bool("preview", false, "show a live preview window while rendering")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "Unexpected argument: %s\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	if *samples < 1 {
		fmt.Fprintf(os.Stderr, "Samples per pixel must be at least 1, got %d\n", *samples)
		os.Exit(2)
	}

	cfg.SamplesPerPixel = *samples
	cfg.Seed = *seed

	logger := renderer.NewDefaultLogger()
	logger.Printf("\n=====================================================\n")
	logger.Printf(" Ray tracer v%s\n", version)
	logger.Printf("=====================================================\n\n")
	logger.Printf("Rendering at resolution: %d x %d pixels\n", cfg.Width, cfg.Height)
	logger.Printf("Samples per pixel: %d\n\n", cfg.SamplesPerPixel)

	strategy := promptStrategy(os.Stdin)

	var win *preview.Window
	if *showPreview {
		var err error
		win, err = preview.Open("Ray tracer", cfg.Width, cfg.Height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open preview window: %v\n", err)
		} else {
			cfg.OnRow = win.UpdateRow
			defer win.Close()
		}
	}

	world := scene.Demo()
	cam := renderer.NewCamera(cfg, logger)
	buf := make([]byte, cfg.Width*cfg.Height*cfg.Channels)

	render := func() {
		switch strategy {
		case strategySequential:
			logger.Printf("Using CPU single threaded...\n")
			cam.RenderSequential(world, buf)
		case strategyParallel:
			logger.Printf("Using CPU parallel rendering...\n")
			cam.RenderParallel(world, buf)
		default:
			logger.Printf("Using GPU rendering...\n")
			if err := cam.RenderAccelerated(glaccel.New(), buf); err != nil {
				fmt.Fprintf(os.Stderr, "GPU rendering failed: %v\n", err)
				logger.Printf("Falling back to CPU parallel rendering...\n")
				cam.RenderParallel(world, buf)
			}
		}
	}

	if win != nil {
		// SDL event handling must stay on the main goroutine.
		done := make(chan struct{})
		go func() {
			defer close(done)
			render()
		}()
		win.Run(done)
	} else {
		render()
	}

	if err := output.WritePNG(*out, buf, cfg.Width, cfg.Height, cfg.Channels); err != nil {
		// Encoding failure is reported but does not abort the summary.
		fmt.Fprintf(os.Stderr, "Failed to save image to %s: %v\n", *out, err)
	} else {
		logger.Printf("Image saved successfully to %s\n", *out)
	}

	logger.Printf("Rays traced: %d\n", cam.RaysTraced())
}

// promptStrategy asks which execution strategy to use, defaulting to the
// accelerator on empty or invalid input.
func promptStrategy(in *os.File) int {
	fmt.Println("Choose rendering method:")
	fmt.Println("\t0. CPU sequential")
	fmt.Println("\t1. CPU parallel")
	fmt.Println("\t2. GPU (default)")
	fmt.Print("Enter choice (0, 1, or 2): ")

	line, _ := bufio.NewReader(in).ReadString('\n')
	fmt.Println()

	return parseStrategy(line)
}

// parseStrategy maps prompt input to a strategy, defaulting to the
// accelerator.
func parseStrategy(line string) int {
	line = strings.TrimSpace(line)
	if line == "" {
		return strategyAccelerated
	}
	choice, err := strconv.Atoi(line)
	if err != nil || choice < strategySequential || choice > strategyAccelerated {
		return strategyAccelerated
	}
	return choice
}
