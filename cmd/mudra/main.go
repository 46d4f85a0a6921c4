package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/logger"
	"github.com/ayusman/mudra/internal/metrics"
	"github.com/ayusman/mudra/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to yaml config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	det := newDetector(cfg.Detector, log)
	defer det.Close()

	m := metrics.New()

	srv := server.New(server.Config{
		Detector: det,
		Metrics:  m,
		Logger:   log,
	})

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv,
	}

	go func() {
		log.Info("server listening", zap.String("addr", cfg.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
}

// newDetector builds the MediaPipe detector, falling back to the mock when
// the Python service is not installed. The mock reports no hands, so the
// service still runs and answers "wait" for every frame.
func newDetector(cfg config.DetectorConfig, log *zap.Logger) detector.Detector {
	dc := detector.Config{
		MaxHands:        cfg.MaxHands,
		MinConfidence:   cfg.MinConfidence,
		MinTrackingConf: cfg.MinTrackingConfidence,
		ScriptPath:      cfg.ScriptPath,
	}

	mp, err := detector.NewMediaPipeDetector(dc)
	if err != nil {
		log.Warn("MediaPipe not available, using mock detector", zap.Error(err))
		return detector.NewMockDetector()
	}

	log.Info("using MediaPipe hand detection",
		zap.Int("max_hands", dc.MaxHands),
		zap.Float64("min_confidence", dc.MinConfidence))
	return mp
}
