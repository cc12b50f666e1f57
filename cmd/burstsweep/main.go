// Package main sweeps firework launch speeds, checks that every shell
// bursts within its frame bound and optionally tunes gravity for a target
// burst height.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/sketchbook/config"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	v0Min := flag.Float64("v0-min", 0, "Lowest launch speed")
	v0Max := flag.Float64("v0-max", 0, "Highest launch speed (0 = fireworks.shell_max_speed)")
	steps := flag.Int("steps", 41, "Number of launch speeds")
	tuneHeight := flag.Float64("tune-height", 0, "Tune gravity for this burst height at v0-max (0 = skip)")
	outputDir := flag.String("output", "", "Output directory for sweep.csv and tuned config")
	flag.Parse()

	config.MustInit(*configPath)
	cfg := config.Cfg()
	fw := cfg.Fireworks

	hi := *v0Max
	if hi == 0 {
		hi = fw.ShellMaxSpeed
	}

	runs, err := sweep(fw, *v0Min, hi, *steps)
	if err != nil {
		log.Fatalf("sweep failed: %v", err)
	}

	s := summarize(runs)
	fmt.Printf("Swept %d launch speeds in [%g, %g] with gravity %g\n", s.Runs, *v0Min, hi, fw.Gravity)
	fmt.Printf("  rise frames:  mean %.1f  max %.0f  (bound %d)\n", s.MeanRiseFrames, s.MaxRiseFrames, cfg.Derived.MaxRiseFrames)
	fmt.Printf("  burst height: mean %.2f  max %.2f\n", s.MeanBurstHeight, s.MaxBurstHeight)
	fmt.Printf("  total frames: max %.0f\n", s.MaxTotalFrames)

	if *outputDir != "" {
		if err := os.MkdirAll(*outputDir, 0755); err != nil {
			log.Fatalf("failed to create output directory: %v", err)
		}
		f, err := os.Create(filepath.Join(*outputDir, "sweep.csv"))
		if err != nil {
			log.Fatalf("failed to create sweep.csv: %v", err)
		}
		if err := gocsv.MarshalFile(&runs, f); err != nil {
			log.Fatalf("failed to write sweep.csv: %v", err)
		}
		f.Close()
	}

	if *tuneHeight <= 0 {
		return
	}

	res, err := tuneGravity(fw, hi, *tuneHeight)
	if err != nil {
		log.Fatalf("tuning failed: %v", err)
	}
	fmt.Printf("\nGravity %.6g bursts a v0=%g shell at height %.2f (target %g, %d evaluations)\n",
		res.Gravity, hi, res.BurstHeight, *tuneHeight, res.Evaluations)

	if *outputDir != "" {
		tuned, _ := config.Load(*configPath)
		tuned.Fireworks.Gravity = res.Gravity
		out := filepath.Join(*outputDir, "tuned_config.yaml")
		if err := tuned.WriteYAML(out); err != nil {
			log.Printf("failed to write tuned config: %v", err)
		} else {
			fmt.Printf("Tuned config saved to: %s\n", out)
		}
	}
}
