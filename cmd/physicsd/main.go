// physicsd is a headless snapshot server: it owns a small scene of collision
// shapes, steps it on a fixed tick, and broadcasts shape-state deltas and
// periodic keyframes to WebSocket observers.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/pointer-to-null/RobustToolbox/internal/config"
	"github.com/pointer-to-null/RobustToolbox/physics"
	"github.com/pointer-to-null/RobustToolbox/replication"
)

type envelope struct {
	Kind     string                `json:"kind"`
	Updates  []replication.Update  `json:"updates,omitempty"`
	Keyframe *replication.Keyframe `json:"keyframe,omitempty"`
}

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "physicsd:", err)
			os.Exit(1)
		}
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "physicsd:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	hub := replication.NewHub(logger)
	rep := replication.NewReplicator(logger)
	probe := buildScene(rep)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("listening",
			zap.String("addr", cfg.ListenAddr),
			zap.Int("shapes", rep.Len()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		hub.Close()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return tickLoop(ctx, cfg, logger, hub, rep, probe)
	})

	if err := g.Wait(); err != nil {
		logger.Error("exited", zap.Error(err))
		os.Exit(1)
	}
}

// buildScene assembles the demo fixtures: a ground edge, a terrain chain, a
// crate and an orbiting probe circle. The probe is returned so the tick loop
// can animate it.
func buildScene(rep *replication.Replicator) *physics.CircleShape {
	ground := physics.NewEdgeShape(physics.MakeVec2(-20, 0), physics.MakeVec2(20, 0))
	rep.Track(uuid.New(), ground)

	terrain := physics.NewChainShape()
	terrain.CreateChain([]physics.Vec2{
		physics.MakeVec2(-8, 1),
		physics.MakeVec2(-6, 1),
		physics.MakeVec2(-4, 2),
		physics.MakeVec2(-2, 1),
	})
	rep.Track(uuid.New(), terrain)

	crate := physics.NewPolygonShape()
	crate.SetAsBox(1, 1)
	rep.Track(uuid.New(), crate)

	probe := physics.NewCircleShape(0.5)
	probe.Position = physics.MakeVec2(3, 0)
	rep.Track(uuid.New(), probe)

	return probe
}

func tickLoop(ctx context.Context, cfg config.Config, logger *zap.Logger, hub *replication.Hub, rep *replication.Replicator, probe *physics.CircleShape) error {
	ticker := time.NewTicker(time.Duration(cfg.TickInterval))
	defer ticker.Stop()

	tick := 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			tick++

			angle := float64(tick) * 0.05
			probe.Position = physics.MakeVec2(3*math.Cos(angle), 3*math.Sin(angle))

			if tick%cfg.KeyframeInterval == 0 {
				kf, err := rep.Keyframe()
				if err != nil {
					return err
				}
				hub.Broadcast(envelope{Kind: "keyframe", Keyframe: &kf})
				logger.Debug("keyframe",
					zap.Int("tick", tick),
					zap.Uint64("digest", kf.Digest))
				continue
			}

			updates, err := rep.Collect()
			if err != nil {
				return err
			}
			if len(updates) > 0 {
				hub.Broadcast(envelope{Kind: "delta", Updates: updates})
			}
		}
	}
}

func newLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	if err := zapLevel.Set(level); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	cfg.DisableCaller = true

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
