package web

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dbehnke/gps-navdata/pkg/database"
	"github.com/dbehnke/gps-navdata/pkg/logger"
	"github.com/dbehnke/gps-navdata/pkg/metrics"
)

// API handles REST API endpoints
type API struct {
	logger  *logger.Logger
	frames  *database.FrameRepository
	metrics *metrics.Collector
}

// NewAPI creates a new API instance
func NewAPI(log *logger.Logger) *API {
	return &API{logger: log}
}

// SetDeps provides runtime dependencies to the API after construction
func (a *API) SetDeps(frames *database.FrameRepository, m *metrics.Collector) {
	a.frames = frames
	a.metrics = m
}

// EphemerisDTO is a lightweight response for one SV's merged ephemeris.
type EphemerisDTO struct {
	SVID         uint8   `json:"svid"`
	IODC         uint16  `json:"iodc"`
	WeekNumber   uint16  `json:"week_number"`
	SVHealth     uint8   `json:"sv_health"`
	TGD          float64 `json:"tgd"`
	Toc          uint32  `json:"toc"`
	Af0          float64 `json:"af0"`
	Af1          float64 `json:"af1"`
	Af2          float64 `json:"af2"`
	Eccentricity float64 `json:"eccentricity"`
	SqrtA        float64 `json:"sqrt_a"`
	Toe          uint32  `json:"toe"`
	Omega0       float64 `json:"omega0"`
	Omega        float64 `json:"omega"`
	I0           float64 `json:"i0"`
	OmegaDot     float64 `json:"omega_dot"`
	UpdatedAt    int64   `json:"updated_at"`
}

func toEphemerisDTO(r database.EphemerisRecord) EphemerisDTO {
	return EphemerisDTO{
		SVID:         r.SVID,
		IODC:         r.IODC,
		WeekNumber:   r.WeekNumber,
		SVHealth:     r.SVHealth,
		TGD:          r.TGD,
		Toc:          r.Toc,
		Af0:          r.Af0,
		Af1:          r.Af1,
		Af2:          r.Af2,
		Eccentricity: r.Eccentricity,
		SqrtA:        r.SqrtA,
		Toe:          r.Toe,
		Omega0:       r.Omega0,
		Omega:        r.Omega,
		I0:           r.I0,
		OmegaDot:     r.OmegaDot,
		UpdatedAt:    r.UpdatedAt.Unix(),
	}
}

// AlmanacDTO is a lightweight response for one SV's almanac.
type AlmanacDTO struct {
	SVID      uint8   `json:"svid"`
	Health    uint8   `json:"health"`
	Toa       uint32  `json:"toa"`
	SqrtA     float64 `json:"sqrt_a"`
	Omega0    float64 `json:"omega0"`
	Omega     float64 `json:"omega"`
	M0        float64 `json:"m0"`
	UpdatedAt int64   `json:"updated_at"`
}

func toAlmanacDTO(r database.AlmanacRecord) AlmanacDTO {
	return AlmanacDTO{
		SVID:      r.SVID,
		Health:    r.Health,
		Toa:       r.Toa,
		SqrtA:     r.SqrtA,
		Omega0:    r.Omega0,
		Omega:     r.Omega,
		M0:        r.M0,
		UpdatedAt: r.UpdatedAt.Unix(),
	}
}

// FrameLogDTO is a lightweight response for one frame-log entry.
type FrameLogDTO struct {
	SVID       uint8  `json:"svid"`
	FrameID    uint8  `json:"frame_id"`
	PageID     uint8  `json:"page_id"`
	TOWSeconds uint32 `json:"tow_seconds"`
	ReceivedAt int64  `json:"received_at"`
}

func toFrameLogDTO(f database.FrameLog) FrameLogDTO {
	return FrameLogDTO{
		SVID:       f.SVID,
		FrameID:    f.FrameID,
		PageID:     f.PageID,
		TOWSeconds: f.TOWSeconds,
		ReceivedAt: f.ReceivedAt.Unix(),
	}
}

// HandleStatus handles the /api/status endpoint
func (a *API) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	version, _, _ := GetVersionInfo()
	response := map[string]interface{}{
		"status":  "running",
		"service": "gps-navdata",
		"version": version,
	}

	if a.metrics != nil {
		response["frames_decoded"] = a.metrics.GetFramesDecoded()
		response["parity_failures"] = a.metrics.GetParityFailures()
		response["resync_events"] = a.metrics.GetResyncEvents()
		response["active_svs"] = a.metrics.GetActiveSVCount()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		a.logger.Error("Failed to encode status response", logger.Error(err))
	}
}

// HandleEphemerides handles the /api/ephemeris endpoint
func (a *API) HandleEphemerides(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if a.frames == nil {
		if err := json.NewEncoder(w).Encode([]EphemerisDTO{}); err != nil {
			a.logger.Error("Failed to encode ephemeris response", logger.Error(err))
		}
		return
	}

	recs, err := a.frames.ListEphemerides()
	if err != nil {
		a.logger.Error("Failed to list ephemerides", logger.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	dtos := make([]EphemerisDTO, 0, len(recs))
	for _, rec := range recs {
		dtos = append(dtos, toEphemerisDTO(rec))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		a.logger.Error("Failed to encode ephemeris response", logger.Error(err))
	}
}

// HandleEphemerisBySV handles /api/ephemeris/{svid}
func (a *API) HandleEphemerisBySV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svID, ok := parseSVID(r.URL.Path, "/api/ephemeris/")
	if !ok {
		http.Error(w, "invalid SV id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if a.frames == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	rec, err := a.frames.GetEphemeris(svID)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toEphemerisDTO(*rec)); err != nil {
		a.logger.Error("Failed to encode ephemeris response", logger.Error(err))
	}
}

// HandleAlmanacs handles the /api/almanac endpoint
func (a *API) HandleAlmanacs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if a.frames == nil {
		if err := json.NewEncoder(w).Encode([]AlmanacDTO{}); err != nil {
			a.logger.Error("Failed to encode almanac response", logger.Error(err))
		}
		return
	}

	recs, err := a.frames.ListAlmanacs()
	if err != nil {
		a.logger.Error("Failed to list almanacs", logger.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	dtos := make([]AlmanacDTO, 0, len(recs))
	for _, rec := range recs {
		dtos = append(dtos, toAlmanacDTO(rec))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		a.logger.Error("Failed to encode almanac response", logger.Error(err))
	}
}

// HandleAlmanacBySV handles /api/almanac/{svid}
func (a *API) HandleAlmanacBySV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	svID, ok := parseSVID(r.URL.Path, "/api/almanac/")
	if !ok {
		http.Error(w, "invalid SV id", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if a.frames == nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	rec, err := a.frames.GetAlmanac(svID)
	if err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toAlmanacDTO(*rec)); err != nil {
		a.logger.Error("Failed to encode almanac response", logger.Error(err))
	}
}

// HandleFrames handles the /api/frames endpoint
func (a *API) HandleFrames(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	limit := 50
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 && l <= 500 {
			limit = l
		}
	}

	if a.frames == nil {
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode([]FrameLogDTO{}); err != nil {
			a.logger.Error("Failed to encode frames response", logger.Error(err))
		}
		return
	}

	var (
		entries []database.FrameLog
		err     error
	)
	if svidStr := r.URL.Query().Get("svid"); svidStr != "" {
		n, convErr := strconv.Atoi(svidStr)
		if convErr != nil || n < 0 || n > 255 {
			http.Error(w, "invalid svid", http.StatusBadRequest)
			return
		}
		entries, err = a.frames.GetRecentFramesBySV(uint8(n), limit)
	} else {
		entries, err = a.frames.GetRecentFrames(limit)
	}
	if err != nil {
		a.logger.Error("Failed to get recent frames", logger.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	dtos := make([]FrameLogDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, toFrameLogDTO(e))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		a.logger.Error("Failed to encode frames response", logger.Error(err))
	}
}

// parseSVID extracts the trailing path segment after prefix as a uint8 SV id.
func parseSVID(path, prefix string) (uint8, bool) {
	rest := strings.TrimPrefix(path, prefix)
	if rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return uint8(n), true
}
