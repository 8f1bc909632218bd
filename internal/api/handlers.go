package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/rpgo/planning-engine/internal/domain"
	"github.com/rpgo/planning-engine/internal/output"
)

const maxBodyBytes = 1 << 20

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) CompareAcquisition(w http.ResponseWriter, r *http.Request) {
	var in domain.AcquisitionInput
	if !h.decode(w, r, &in) {
		return
	}
	res, err := h.planner.CompareAcquisition(r.Context(), in)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// ProjectRetirement projects the capital curve. With ?solve=true the solved
// contribution replaces the one in the body.
func (h *Handler) ProjectRetirement(w http.ResponseWriter, r *http.Request) {
	solve := false
	if v := r.URL.Query().Get("solve"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid solve flag %q", v))
			return
		}
		solve = parsed
	}

	var p domain.RetirementParameters
	if !h.decode(w, r, &p) {
		return
	}
	res, err := h.planner.ProjectRetirement(r.Context(), p, solve)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type addEventRequest struct {
	Parameters domain.RetirementParameters `json:"parameters"`
	Event      domain.LiquidityEvent       `json:"event"`
}

// AddLiquidityEvent admits an event into the parameters and returns them.
func (h *Handler) AddLiquidityEvent(w http.ResponseWriter, r *http.Request) {
	var req addEventRequest
	if !h.decode(w, r, &req) {
		return
	}
	params, err := h.engine.AddLiquidityEvent(req.Parameters, req.Event)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, params)
}

// RemoveLiquidityEvent drops the event with the path id from the parameters
// in the body. Removing an unknown id is a no-op.
func (h *Handler) RemoveLiquidityEvent(w http.ResponseWriter, r *http.Request) {
	var p domain.RetirementParameters
	if !h.decode(w, r, &p) {
		return
	}
	writeJSON(w, http.StatusOK, p.WithoutEvent(mux.Vars(r)["id"]))
}

// Report runs a full configuration document (JSON or YAML) and renders it
// with the formatter named by ?format=, JSON by default.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("%v: %q", output.ErrUnsupportedFormat, format))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "unable to read request body")
		return
	}
	cfg, err := h.parser.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	report, err := h.engine.RunConfiguration(r.Context(), cfg)
	if err != nil {
		h.fail(w, err)
		return
	}
	data, err := f.Format(report)
	if err != nil {
		h.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", contentType(f))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return false
	}
	return true
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidParameterRange) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.WithError(err).Error("request failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func contentType(f output.Formatter) string {
	switch output.Extension(f) {
	case "json":
		return "application/json"
	case "csv":
		return "text/csv; charset=utf-8"
	case "html":
		return "text/html; charset=utf-8"
	case "pdf":
		return "application/pdf"
	case "xml":
		return "application/xml"
	default:
		return "text/plain; charset=utf-8"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
