package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/huangsam/churnscope/schema"
)

// handleHealthz reports liveness and the loaded record count.
func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSONResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"records": s.engine.Size(),
	})
}

// handleSummary computes the KPI bundle over the query-filtered subset.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sel, err := s.selectionFromQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, s.engine.GetSummary(sel))
}

// handleChart builds one chart spec over the query-filtered subset.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	kind := schema.ChartKind(r.PathValue("kind"))
	if _, ok := schema.ValidChartKinds[kind]; !ok {
		writeJSONError(w, http.StatusNotFound, fmt.Sprintf("unknown chart kind: %s", kind))
		return
	}

	sel, err := s.selectionFromQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	spec, err := s.engine.GetChart(sel, kind)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, spec)
}

// handleCharts builds every chart kind over one query-filtered subset.
func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	sel, err := s.selectionFromQuery(r)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	specs, err := s.engine.GetCharts(sel)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSONResponse(w, http.StatusOK, specs)
}

// selectionFromQuery overlays query parameters onto the server's base
// selection. Off-domain dimension values pass through and simply match
// zero records; malformed tenure bounds are rejected.
func (s *Server) selectionFromQuery(r *http.Request) (schema.Selection, error) {
	sel := s.cfg.Clone().Selection
	q := r.URL.Query()

	if v := q.Get("gender"); v != "" {
		sel.Gender = v
	}
	if v := q.Get("dependents"); v != "" {
		sel.Dependents = v
	}
	if v := q.Get("phone"); v != "" {
		sel.PhoneService = v
	}
	if v := q.Get("paperless"); v != "" {
		sel.PaperlessBilling = v
	}
	if v := q.Get("internet"); v != "" {
		sel.InternetService = v
	}
	if v := q.Get("contract"); v != "" {
		sel.Contract = v
	}
	if v := q.Get("payment"); v != "" {
		sel.PaymentMethod = v
	}

	if v := q.Get("tenure_min"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return sel, fmt.Errorf("invalid tenure_min: %s", v)
		}
		sel.TenureMin = &n
	}
	if v := q.Get("tenure_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return sel, fmt.Errorf("invalid tenure_max: %s", v)
		}
		sel.TenureMax = &n
	}
	if sel.TenureMin != nil && sel.TenureMax != nil && *sel.TenureMin > *sel.TenureMax {
		return sel, fmt.Errorf("tenure_min %d exceeds tenure_max %d", *sel.TenureMin, *sel.TenureMax)
	}

	return sel, nil
}

func writeJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSONResponse(w, status, map[string]string{"error": msg})
}
