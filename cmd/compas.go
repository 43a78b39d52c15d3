package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"k8s.io/utils/clock"

	"github.com/ingyamilmolinar/compas/core/model"
	"github.com/ingyamilmolinar/compas/internal/config"
	"github.com/ingyamilmolinar/compas/internal/log"
	"github.com/ingyamilmolinar/compas/internal/osc"
	"github.com/ingyamilmolinar/compas/internal/ui"
	"github.com/ingyamilmolinar/compas/timeline"
)

func main() {
	configPath := flag.String("config", "compas.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	logger := log.New(os.Stderr, log.LevelFromString(cfg.LogLevel))
	if err != nil {
		logger.Fatalf("[MAIN] %v", err)
	}

	sigs := make([]model.SigChange, 0, len(cfg.TimeSignatures))
	for _, s := range cfg.TimeSignatures {
		sigs = append(sigs, model.SigChange{
			Bar: s.Bar,
			Sig: timeline.TimeSig{Top: s.Top, Bottom: s.Bottom},
		})
	}

	song := model.NewSong(logger, cfg.TicksPerBeat, sigs)
	song.SetPointsPerBeat(cfg.PointsPerBeat)
	transport := model.NewTransport(song, clock.RealClock{})
	transport.SetBPM(cfg.BPM)

	if cfg.OSCAddr != "" {
		srv := osc.NewServer(cfg.OSCAddr, song, transport, logger)
		go func() {
			if err := srv.ListenAndServe(); err != nil {
				logger.Errorf("[MAIN] osc server: %v", err)
			}
		}()
	}

	g := ui.New(logger, song, transport, cfg.MinStepGap)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Compas - Musical Timeline")
	if err := ebiten.RunGame(g); err != nil {
		logger.Fatalf("[MAIN] %v", err)
	}
}
