package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/nmoralesv/informe/internal/auth"
	"github.com/nmoralesv/informe/internal/common"
	"github.com/nmoralesv/informe/internal/interpreter"
	"github.com/nmoralesv/informe/internal/model"
)

// interpretRequest is the POST /interpret body. Transcript carries
// voice-transcribed text; when both are present the typed text wins.
type interpretRequest struct {
	Text       string                `json:"text"`
	Transcript string                `json:"transcript"`
	Role       string                `json:"role"`
	Overrides  interpreter.Overrides `json:"overrides"`
}

type errorResponse struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

type interpretResponse struct {
	Report  model.ReportRecord `json:"report"`
	Success bool               `json:"success"`
}

func (a *WebAPI) handleInterpret(w http.ResponseWriter, r *http.Request) {
	var req interpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	source := model.SourceText
	text := strings.TrimSpace(req.Text)
	if text == "" && req.Transcript != "" {
		text = strings.TrimSpace(req.Transcript)
		source = model.SourceVoice
	}
	if text == "" {
		writeError(w, http.StatusBadRequest, common.ErrEmptyRequest.Error())
		return
	}

	role := model.Role(req.Role)
	if req.Role == "" {
		role = model.RoleClient
	}

	result := a.interp.Interpret(text)
	result = interpreter.ApplyOverrides(result, req.Overrides)

	result, err := auth.Apply(role, result)
	if err != nil {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}

	record := model.ReportRecord{
		Prompt:         text,
		ReportType:     result.ReportType,
		Format:         result.OutputFormat,
		Source:         source,
		Role:           role,
		Interpretation: result,
	}
	if err := a.store.SaveReport(r.Context(), &record); err != nil {
		common.LogError(err, "failed to save report", common.Fields{
			"report_type": record.ReportType,
			"role":        role,
		})
		writeError(w, http.StatusInternalServerError, "failed to save report")
		return
	}

	writeJSON(w, http.StatusCreated, interpretResponse{Success: true, Report: record})
}

func (a *WebAPI) handleListReports(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := a.store.ListReports(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list reports", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"reports": records,
	})
}

func (a *WebAPI) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	record, err := a.store.GetReport(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		slog.Error("failed to get report", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to get report")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"report":  record,
	})
}

func (a *WebAPI) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := a.store.DeleteReport(r.Context(), id)
	if errors.Is(err, common.ErrNotFound) {
		writeError(w, http.StatusNotFound, "report not found")
		return
	}
	if err != nil {
		slog.Error("failed to delete report", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to delete report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type suggestionsRequest struct {
	ReportType string `json:"report_type"`
}

func (a *WebAPI) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reportType := model.ReportType(req.ReportType)
	if reportType == "" {
		reportType = model.ReportTypeSales
	}

	suggestions, err := a.suggester.ForReportType(r.Context(), reportType)
	if err != nil {
		slog.Error("failed to build suggestions", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to build suggestions")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"suggestions": suggestions,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Message: message})
}
