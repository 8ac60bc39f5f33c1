package server

import (
	"net/http"
	"strconv"

	"github.com/jonathan/jobboard/internal/stats"
)

// Default row count for the dashboard ranking tables.
const defaultTopN = 5

// AdminHandler handles the admin dashboard endpoints.
type AdminHandler struct {
	collector *stats.Collector
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(collector *stats.Collector) *AdminHandler {
	return &AdminHandler{collector: collector}
}

// Stats handles GET /admin/stats: the headline figures plus the
// per-type and per-role breakdowns, all from one snapshot.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	snap, err := h.collector.Collect(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"overview":       stats.ComputeOverview(snap),
		"job_breakdown":  stats.JobBreakdown(snap.Jobs),
		"user_breakdown": stats.UserBreakdown(snap.Profiles),
	})
}

// PopularJobs handles GET /admin/popular-jobs.
func (h *AdminHandler) PopularJobs(w http.ResponseWriter, r *http.Request) {
	snap, err := h.collector.Collect(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"popular_jobs": stats.PopularJobs(snap.Jobs, snap.Applications, topN(r)),
	})
}

// ActiveEmployers handles GET /admin/active-employers.
func (h *AdminHandler) ActiveEmployers(w http.ResponseWriter, r *http.Request) {
	snap, err := h.collector.Collect(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"active_employers": stats.ActiveEmployers(snap, topN(r)),
	})
}

// topN reads the ?limit query parameter, falling back to the default.
func topN(r *http.Request) int {
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}
	return defaultTopN
}
