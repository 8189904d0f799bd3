package main

import (
	"fmt"
	"math"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/anupamd/mudra/internal/capture"
	"github.com/anupamd/mudra/internal/detector"
	"github.com/anupamd/mudra/internal/store"
)

var (
	calibrateSeconds int
	calibrateSave    bool
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Sample pose metrics to tune gesture thresholds",
	Long: `Calibrate captures frames for a few seconds while you hold a pose
in front of the camera, then reports the measured pinch distance, mean
fingertip distance and extended finger count. Hold the pose you want to
tune for and compare the numbers against the configured thresholds.
With --save the median measurements are stored as settings.`,
	RunE: runCalibrate,
}

func init() {
	calibrateCmd.Flags().IntVar(&calibrateSeconds, "seconds", 5, "how long to sample")
	calibrateCmd.Flags().BoolVar(&calibrateSave, "save", false, "save median measurements as settings")
	rootCmd.AddCommand(calibrateCmd)
}

func runCalibrate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	det, err := detector.NewMediaPipeDetector(detector.Config{
		MaxHands:        1,
		MinConfidence:   cfg.Detector.MinConfidence,
		MinTrackingConf: cfg.Detector.MinTrackingConf,
	})
	if err != nil {
		return fmt.Errorf("calibration needs the hand-pose estimator: %w", err)
	}
	defer det.Close()

	cam := capture.NewCamera(cfg.Camera.ID)
	if err := cam.Open(); err != nil {
		return fmt.Errorf("open camera: %w", err)
	}
	defer cam.Close()

	fmt.Printf("Sampling for %d seconds, hold your pose...\n", calibrateSeconds)

	var pinch, meanTip []float64
	fingerCounts := make(map[int]int)

	deadline := time.Now().Add(time.Duration(calibrateSeconds) * time.Second)
	ticker := time.NewTicker(time.Second / 15)
	defer ticker.Stop()

	for time.Now().Before(deadline) {
		<-ticker.C

		frame, err := cam.ReadFrame()
		if err != nil {
			continue
		}
		hands, err := det.Detect(frame)
		frame.Close()
		if err != nil || len(hands) == 0 {
			continue
		}

		metrics, ok := cfg.Gestures.Measure(&hands[0])
		if !ok {
			continue
		}
		pinch = append(pinch, metrics.PinchDistance)
		meanTip = append(meanTip, metrics.MeanTipDistance)
		fingerCounts[metrics.ExtendedFingers]++
	}

	if len(pinch) == 0 {
		return fmt.Errorf("no hand detected during sampling")
	}

	fmt.Printf("\nSamples: %d\n", len(pinch))
	printStats("pinch distance", pinch, cfg.Gestures.Pinch)
	printStats("mean tip distance", meanTip, cfg.Gestures.Fist)
	fmt.Println("extended finger counts:")
	for n := 0; n <= 5; n++ {
		if fingerCounts[n] > 0 {
			fmt.Printf("  %d fingers: %d frames\n", n, fingerCounts[n])
		}
	}

	if calibrateSave {
		st, err := store.New(filepath.Join(cfg.DataDir, "mudra.db"))
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		settings := st.Settings()
		if err := settings.Set("calibration.pinch_distance", fmt.Sprintf("%.4f", median(pinch))); err != nil {
			return err
		}
		if err := settings.Set("calibration.mean_tip_distance", fmt.Sprintf("%.4f", median(meanTip))); err != nil {
			return err
		}
		fmt.Println("\nSaved median measurements to settings.")
	}

	return nil
}

func printStats(name string, values []float64, threshold float64) {
	min, max := math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range values {
		min = math.Min(min, v)
		max = math.Max(max, v)
		sum += v
	}
	fmt.Printf("%s: min=%.4f median=%.4f mean=%.4f max=%.4f (threshold %.4f)\n",
		name, min, median(values), sum/float64(len(values)), max, threshold)
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
