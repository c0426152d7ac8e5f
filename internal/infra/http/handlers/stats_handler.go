package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/entity"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/usecase"
)

// StatsHandler computes pipeline snapshots on demand. Nothing is cached;
// every request aggregates the current collection.
type StatsHandler struct {
	Repo entity.PartnerRepositoryInterface
}

func NewStatsHandler(repo entity.PartnerRepositoryInterface) *StatsHandler {
	return &StatsHandler{Repo: repo}
}

func (h *StatsHandler) HandlePipeline(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("❌ Failed to load partners for stats: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, usecase.ComputePipelineStats(partners))
}

// HandleWeekly accepts optional start/end query params (RFC3339); the
// default window is the trailing seven days, end-exclusive.
func (h *StatsHandler) HandleWeekly(w http.ResponseWriter, r *http.Request) {
	end := time.Now()
	start := end.AddDate(0, 0, -7)

	if s := r.URL.Query().Get("start"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "start must be RFC3339")
			return
		}
		start = t
	}
	if s := r.URL.Query().Get("end"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "end must be RFC3339")
			return
		}
		end = t
	}

	partners, err := h.Repo.FindAll(r.Context())
	if err != nil {
		log.Printf("❌ Failed to load partners for stats: %v", err)
		writeErrorResponse(w, http.StatusInternalServerError, "Failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, usecase.ComputeWeeklyStats(partners, start, end))
}
