// Command gps-navdata decodes GPS L1 C/A navigation data from one or more
// configured byte-stream sources, persists the latest ephemeris and
// almanac per satellite, and serves a live WebSocket/REST dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dbehnke/gps-navdata/pkg/config"
	"github.com/dbehnke/gps-navdata/pkg/database"
	"github.com/dbehnke/gps-navdata/pkg/gps"
	"github.com/dbehnke/gps-navdata/pkg/gpsio"
	"github.com/dbehnke/gps-navdata/pkg/logger"
	"github.com/dbehnke/gps-navdata/pkg/metrics"
	"github.com/dbehnke/gps-navdata/pkg/web"
)

var (
	version   = "dev"
	gitCommit = "unknown"
	buildTime = "unknown"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to configuration file")
	showVersion := flag.Bool("version", false, "Show version information")
	validate := flag.Bool("validate", false, "Validate configuration and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gps-navdata %s\n", version)
		fmt.Printf("Git Commit: %s\n", gitCommit)
		fmt.Printf("Build Time: %s\n", buildTime)
		return
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if *validate {
		fmt.Println("Configuration is valid")
		return
	}

	log := logger.New(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log.Info("Starting gps-navdata", logger.String("version", version))

	web.SetVersionInfo(version, gitCommit, buildTime)

	db, err := database.NewDB(database.Config{Path: cfg.Database.Path}, log.WithComponent("database"))
	if err != nil {
		log.Error("failed to open database", logger.Error(err))
		os.Exit(1)
	}
	defer db.Close()

	repo := database.NewFrameRepository(db.GetDB())
	collector := metrics.NewCollector()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var wg sync.WaitGroup

	webServer := web.NewServer(cfg.Web, log.WithComponent("web")).
		WithFrameRepository(repo).
		WithMetrics(collector)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := webServer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("web server stopped", logger.Error(err))
		}
	}()

	promCfg := metrics.PrometheusConfig{
		Enabled: cfg.Metrics.Enabled && cfg.Metrics.Prometheus.Enabled,
		Port:    cfg.Metrics.Prometheus.Port,
		Path:    cfg.Metrics.Prometheus.Path,
	}
	promServer := metrics.NewPrometheusServer(promCfg, collector, log)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := promServer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("metrics server stopped", logger.Error(err))
		}
	}()

	handler := newFrameSink(repo, collector, webServer.GetHub(), log)

	for _, srcCfg := range cfg.Sources {
		if !srcCfg.Enabled {
			continue
		}
		srcCfg := srcCfg

		src, err := gpsio.Open(srcCfg)
		if err != nil {
			log.Error("failed to open source", logger.String("source", srcCfg.Name), logger.Error(err))
			continue
		}

		decoder := gps.NewDecoder(cfg.Decoder.RingBufferBytes).
			WithParityVerification(cfg.Decoder.VerifyParity).
			WithObserver(collector)
		pump := gpsio.NewPump(srcCfg, src, decoder, log, func(_ string, f *gps.Frame) {
			handler.onFrame(srcCfg.SVID, f)
		})

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer src.Close()
			if err := pump.Run(ctx); err != nil && err != context.Canceled {
				log.Error("source pump stopped", logger.String("source", srcCfg.Name), logger.Error(err))
			}
		}()
	}

	log.Info("gps-navdata running", logger.Int("sources", len(cfg.Sources)))
	<-ctx.Done()
	log.Info("shutting down")

	shutdownDone := make(chan struct{})
	go func() {
		wg.Wait()
		close(shutdownDone)
	}()

	select {
	case <-shutdownDone:
	case <-time.After(10 * time.Second):
		log.Warn("shutdown timed out waiting for goroutines")
	}
}

// frameSink fans a decoded Frame out to persistence, the metrics collector,
// and the web dashboard's live broadcast hub.
type frameSink struct {
	repo      *database.FrameRepository
	collector *metrics.Collector
	hub       *web.WebSocketHub
	log       *logger.Logger
}

func newFrameSink(repo *database.FrameRepository, collector *metrics.Collector, hub *web.WebSocketHub, log *logger.Logger) *frameSink {
	return &frameSink{repo: repo, collector: collector, hub: hub, log: log.WithComponent("frame-sink")}
}

func (s *frameSink) onFrame(configuredSVID uint8, f *gps.Frame) {
	svID := sourceSVID(configuredSVID, f)
	s.collector.FrameDecoded(svID)
	if s.hub != nil {
		s.hub.BroadcastFrameDecoded(svID, f)
	}

	if err := s.repo.RecordFrame(&database.FrameLog{
		SVID:       svID,
		FrameID:    uint8(f.Handover.FrameID),
		TOWSeconds: f.Handover.TOWSeconds(),
	}); err != nil {
		s.log.Warn("failed to record frame log entry", logger.Error(err))
	}

	switch sf := f.Subframe.(type) {
	case gps.Ephemeris1, gps.Ephemeris2, gps.Ephemeris3:
		if err := s.repo.UpsertEphemeris(svID, sf); err != nil {
			s.log.Warn("failed to upsert ephemeris", logger.Error(err))
		}
	case gps.Frame4:
		if sf.Kind == gps.Frame4KindAlmanac {
			if err := s.repo.UpsertAlmanac(sf.Almanac); err != nil {
				s.log.Warn("failed to upsert almanac", logger.Error(err))
			}
		}
	case gps.Frame5:
		if sf.Kind == gps.Frame5KindAlmanac {
			if err := s.repo.UpsertAlmanac(sf.Almanac); err != nil {
				s.log.Warn("failed to upsert almanac", logger.Error(err))
			}
		}
	}
}

// sourceSVID resolves the SV id a frame-log entry should be attributed to.
// Almanac pages carry their own subject SV id, which may differ from the
// satellite broadcasting them; ephemeris subframes describe whichever SV
// the source is tuned to, which the operator names in configuredSVID.
func sourceSVID(configuredSVID uint8, f *gps.Frame) uint8 {
	switch sf := f.Subframe.(type) {
	case gps.Frame4:
		if sf.Kind == gps.Frame4KindAlmanac {
			return sf.Almanac.SVID
		}
	case gps.Frame5:
		if sf.Kind == gps.Frame5KindAlmanac {
			return sf.Almanac.SVID
		}
	}
	return configuredSVID
}
