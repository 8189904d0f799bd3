package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/anupamd/mudra/internal/app"
	"github.com/anupamd/mudra/internal/detector"
	"github.com/anupamd/mudra/internal/dispatch"
	"github.com/anupamd/mudra/internal/server"
	"github.com/anupamd/mudra/internal/store"
	"github.com/anupamd/mudra/internal/tray"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the gesture control pipeline",
	Long: `Run opens the camera, starts the detection pipeline and sends
emitted commands to the configured actuator. With server.enabled the
embedded HTTP server exposes the event log, settings and a live feed.`,
	RunE: runService,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runService(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	st, err := store.New(filepath.Join(cfg.DataDir, "mudra.db"))
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer st.Close()

	act, err := buildActuator(cfg)
	if err != nil {
		return fmt.Errorf("initialize actuator: %w", err)
	}
	defer act.Close()

	dispatcher := dispatch.NewDispatcher(act, cfg.Dispatch.MinInterval(), cfg.Dispatch.Commands)

	a := app.New(app.Config{
		Store:        st,
		CameraID:     cfg.Camera.ID,
		MotionThresh: cfg.Camera.MotionThresh,
		Thresholds:   cfg.Gestures,
		Detector: detector.Config{
			MaxHands:        cfg.Detector.MaxHands,
			MinConfidence:   cfg.Detector.MinConfidence,
			MinTrackingConf: cfg.Detector.MinTrackingConf,
		},
	}, dispatcher)

	var feed *server.GestureFeed
	if cfg.Server.Enabled {
		feed = server.NewGestureFeed()

		srv := server.New(server.Config{
			StaticDir: findWebDir(),
			Store:     st,
			Camera:    a.Camera(),
			Feed:      feed,
		})

		go func() {
			log.Printf("HTTP server listening on %s", cfg.Server.Addr)
			if err := srv.ListenAndServe(cfg.Server.Addr); err != nil {
				log.Printf("HTTP server stopped: %v", err)
			}
		}()
	}

	var tr *tray.Tray
	if cfg.Tray {
		tr = tray.New()
	}

	dispatcher.OnEmit = func(e dispatch.Emission) {
		if feed != nil {
			feed.Publish(e)
		}
		if tr != nil {
			tr.SetLastCommand(e.Command)
		}
	}

	if err := a.Start(); err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	a.SetEnabled(true)
	defer a.Stop()

	if tr != nil {
		tr.OnToggle(func(enabled bool) {
			a.SetEnabled(enabled)
			log.Printf("Recognition enabled: %v", enabled)
		})
		tr.OnQuit(func() {
			log.Println("Quit requested from tray")
		})
		tr.Run()
		return nil
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received %v, shutting down", sig)
	return nil
}

// findWebDir searches common locations for the web UI directory.
func findWebDir() string {
	for _, p := range []string{"web", "../web", "../../web"} {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			if abs, err := filepath.Abs(p); err == nil {
				return abs
			}
			return p
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	webDir := filepath.Join(home, ".mudra", "web")
	if info, err := os.Stat(webDir); err == nil && info.IsDir() {
		return webDir
	}
	return ""
}
