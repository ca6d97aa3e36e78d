package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"priofeed/pkg/aggregator"
	"priofeed/pkg/domain"
	"priofeed/pkg/scoring"
)

const defaultHistoryLimit = 20

// reportResponse wraps a report with its presentation extras
type reportResponse struct {
	Greeting        string                  `json:"greeting"`
	Report          *domain.Report          `json:"report"`
	Recommendations []domain.Recommendation `json:"recommendations"`
}

// reportHandler generates the full priority report.
// Supports ?user=, ?all=, ?min_score= and ?max_items= query parameters.
func (s *Server) reportHandler(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromQuery(r)
	opts := s.optsFromQuery(r)

	report, err := s.reports.GenerateReport(r.Context(), scope, opts)
	if err != nil {
		log.Printf("[ERROR] failed to generate report: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	resp := reportResponse{
		Greeting:        s.reports.Greeting(scope, report.Summary),
		Report:          report,
		Recommendations: s.reports.Recommendations(report.Summary),
	}
	RenderJSON(w, r, http.StatusOK, resp)
}

// urgentHandler generates a report filtered to the requested urgency buckets,
// ?levels= takes a comma-separated list, defaults to urgent and high
func (s *Server) urgentHandler(w http.ResponseWriter, r *http.Request) {
	scope := scopeFromQuery(r)

	var levels []domain.UrgencyLevel
	if raw := r.URL.Query().Get("levels"); raw != "" {
		for _, l := range strings.Split(raw, ",") {
			switch level := domain.UrgencyLevel(strings.ToLower(strings.TrimSpace(l))); level {
			case domain.UrgencyUrgent, domain.UrgencyHigh, domain.UrgencyMedium, domain.UrgencyLow:
				levels = append(levels, level)
			default:
				RenderError(w, r, fmt.Errorf("unknown urgency level %q", l), http.StatusBadRequest)
				return
			}
		}
	}

	report, err := s.reports.GetUrgentOnly(r.Context(), scope, levels)
	if err != nil {
		log.Printf("[ERROR] failed to generate urgent report: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, report)
}

// weightsHandler merges partial scoring weights into the live configuration
func (s *Server) weightsHandler(w http.ResponseWriter, r *http.Request) {
	var partial scoring.Weights
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		RenderError(w, r, fmt.Errorf("invalid weights payload: %w", err), http.StatusBadRequest)
		return
	}

	if err := s.reports.UpdateScoringConfig(partial); err != nil {
		RenderError(w, r, err, http.StatusBadRequest)
		return
	}

	log.Printf("[INFO] scoring weights updated for %d source(s)", len(partial))
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "updated"})
}

// cacheHandler clears the fetch cache
func (s *Server) cacheHandler(w http.ResponseWriter, r *http.Request) {
	s.reports.ClearCache()
	log.Printf("[INFO] fetch cache cleared")
	RenderJSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}

// historyHandler serves stored report snapshots, newest first
func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		RenderError(w, r, fmt.Errorf("report history is disabled"), http.StatusNotFound)
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	snapshots, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("[ERROR] failed to get report history: %v", err)
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusOK, snapshots)
}

// scopeFromQuery builds the report scope from query parameters
func scopeFromQuery(r *http.Request) domain.Scope {
	return domain.Scope{
		User:       r.URL.Query().Get("user"),
		AllSources: r.URL.Query().Get("all") == "true",
	}
}

// optsFromQuery builds report options from query parameters, falling back to
// the configured defaults
func (s *Server) optsFromQuery(r *http.Request) aggregator.Options {
	minScore, maxItems := s.config.GetReportDefaults()
	opts := aggregator.Options{MinScore: minScore, MaxItems: maxItems}

	if raw := r.URL.Query().Get("min_score"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			opts.MinScore = n
		}
	}
	if raw := r.URL.Query().Get("max_items"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			opts.MaxItems = n
		}
	}
	return opts
}
