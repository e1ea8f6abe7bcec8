package metrics

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/dbehnke/gps-navdata/pkg/logger"
)

// PrometheusConfig holds Prometheus server configuration
type PrometheusConfig struct {
	Enabled bool
	Port    int
	Path    string
}

// PrometheusHandler handles Prometheus metrics HTTP requests
type PrometheusHandler struct {
	collector *Collector
}

// NewPrometheusHandler creates a new Prometheus handler
func NewPrometheusHandler(collector *Collector) *PrometheusHandler {
	return &PrometheusHandler{
		collector: collector,
	}
}

// ServeHTTP handles HTTP requests for metrics
func (h *PrometheusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	var output strings.Builder

	output.WriteString("# HELP gpsnav_frames_decoded_total Total subframes successfully decoded\n")
	output.WriteString("# TYPE gpsnav_frames_decoded_total counter\n")
	output.WriteString(fmt.Sprintf("gpsnav_frames_decoded_total %d\n", h.collector.GetFramesDecoded()))

	output.WriteString("# HELP gpsnav_parity_failures_total Total words failing parity verification\n")
	output.WriteString("# TYPE gpsnav_parity_failures_total counter\n")
	output.WriteString(fmt.Sprintf("gpsnav_parity_failures_total %d\n", h.collector.GetParityFailures()))

	output.WriteString("# HELP gpsnav_resync_events_total Total decoder FSM resyncs back to preamble search\n")
	output.WriteString("# TYPE gpsnav_resync_events_total counter\n")
	output.WriteString(fmt.Sprintf("gpsnav_resync_events_total %d\n", h.collector.GetResyncEvents()))

	output.WriteString("# HELP gpsnav_unknown_frame_types_total Total handover words naming an undefined frame id\n")
	output.WriteString("# TYPE gpsnav_unknown_frame_types_total counter\n")
	output.WriteString(fmt.Sprintf("gpsnav_unknown_frame_types_total %d\n", h.collector.GetUnknownFrameTypes()))

	output.WriteString("# HELP gpsnav_invalid_pages_total Total Frame-4/Frame-5 pages with an out-of-range page id\n")
	output.WriteString("# TYPE gpsnav_invalid_pages_total counter\n")
	output.WriteString(fmt.Sprintf("gpsnav_invalid_pages_total %d\n", h.collector.GetInvalidPages()))

	output.WriteString("# HELP gpsnav_active_svs Number of distinct SVs decoded since the last reset\n")
	output.WriteString("# TYPE gpsnav_active_svs gauge\n")
	output.WriteString(fmt.Sprintf("gpsnav_active_svs %d\n", h.collector.GetActiveSVCount()))

	w.Write([]byte(output.String()))
}

// PrometheusServer is an HTTP server for Prometheus metrics
type PrometheusServer struct {
	config    PrometheusConfig
	collector *Collector
	log       *logger.Logger
	server    *http.Server
}

// NewPrometheusServer creates a new Prometheus metrics server
func NewPrometheusServer(config PrometheusConfig, collector *Collector, log *logger.Logger) *PrometheusServer {
	if log == nil {
		log = logger.New(logger.Config{Level: "info", Format: "text"})
	}

	return &PrometheusServer{
		config:    config,
		collector: collector,
		log:       log.WithComponent("metrics"),
	}
}

// Start starts the Prometheus metrics server
func (s *PrometheusServer) Start(ctx context.Context) error {
	if !s.config.Enabled {
		s.log.Info("Prometheus metrics server disabled")
		return nil
	}

	handler := NewPrometheusHandler(s.collector)
	mux := http.NewServeMux()
	mux.Handle(s.config.Path, handler)

	// Use a listener to get the actual port (useful for testing with port 0)
	addr := fmt.Sprintf(":%d", s.config.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	actualPort := listener.Addr().(*net.TCPAddr).Port

	s.server = &http.Server{
		Handler: mux,
	}

	s.log.Info("Starting Prometheus metrics server",
		logger.Int("port", actualPort),
		logger.String("path", s.config.Path))

	// Start server
	errChan := make(chan error, 1)
	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	// Wait for context cancellation or error
	select {
	case <-ctx.Done():
		s.log.Info("Shutting down Prometheus metrics server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown error: %w", err)
		}
		return ctx.Err()
	case err := <-errChan:
		return err
	}
}

// Stop stops the Prometheus metrics server
func (s *PrometheusServer) Stop() {
	if s.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.server.Shutdown(ctx)
	}
}
