package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/iwvelando/automobile-sales/internal/config"
	"github.com/iwvelando/automobile-sales/internal/dataset"
	"github.com/iwvelando/automobile-sales/internal/export"
	"github.com/iwvelando/automobile-sales/internal/render"
	"github.com/iwvelando/automobile-sales/internal/report"
	"github.com/iwvelando/automobile-sales/pkg/constants"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

const (
	contentTypeJSON = "application/json"
	contentTypePNG  = "image/png"
	contentTypeCSV  = "text/csv"
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type handler struct {
	logger  *zap.Logger
	table   *dataset.Table
	conf    *config.Configuration
	version string
}

type optionsResponse struct {
	Title             string   `json:"title"`
	Statistics        []string `json:"statistics"`
	Years             []int    `json:"years"`
	VehicleTypes      []string `json:"vehicleTypes"`
	DefaultStatistics string   `json:"defaultStatistics,omitempty"`
	DefaultYear       int      `json:"defaultYear,omitempty"`
	Seed              uint64   `json:"seed"`
}

// NewHandler constructs the HTTP handler that serves the dashboard page and
// the report API over an already generated table.
func NewHandler(logger *zap.Logger, table *dataset.Table, conf *config.Configuration, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		conf = config.Default()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, table: table, conf: conf, version: trimmedVersion}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/version", h.handleVersion)
		r.Get("/options", h.handleOptions)
		r.Get("/selector", h.handleSelector)
		r.Get("/config", h.handleConfig)
		r.Get("/report", h.handleReport)
		r.Get("/report/chart/{name}.png", h.handleChart)
		r.Get("/report/dashboard.png", h.handleDashboard)
		r.Get("/report/export.csv", h.handleReportCSV)
		r.Get("/report/export.xlsx", h.handleReportXLSX)
		r.Get("/dataset.csv", h.handleDatasetCSV)
	})

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	return r
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleOptions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, optionsResponse{
		Title: constants.DashboardTitle,
		Statistics: lo.Map(report.Kinds(), func(k report.Kind, _ int) string {
			return k.String()
		}),
		Years:             dataset.Years(),
		VehicleTypes:      dataset.VehicleTypeLabels(),
		DefaultStatistics: h.conf.Output.Statistics,
		DefaultYear:       h.conf.Output.Year,
		Seed:              h.table.Seed(),
	})
}

func (h *handler) handleSelector(w http.ResponseWriter, r *http.Request) {
	statistics := r.URL.Query().Get("statistics")
	h.writeJSON(w, http.StatusOK, map[string]bool{
		"disabled": report.YearSelectorDisabled(statistics),
	})
}

func (h *handler) handleConfig(w http.ResponseWriter, r *http.Request) {
	data, err := h.conf.YAML()
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleConfig")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(data),
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	model := report.Render(h.table, query.Get("statistics"), query.Get("year"))

	if model.Ready {
		h.logger.Debug("report rendered",
			zap.String("op", "server.handleReport"),
			zap.Stringer("selection", model.Selection),
			zap.Int("charts", len(model.Aggregates())),
		)
	}
	h.writeJSON(w, http.StatusOK, model)
}

func (h *handler) handleChart(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleChart"

	built, ok := h.selectedReport(w, r, op)
	if !ok {
		return
	}

	aggregate, err := built.Aggregate(chi.URLParam(r, "name"))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, report.ErrUnknownAggregate) {
			status = http.StatusNotFound
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}

	var buf bytes.Buffer
	if err := render.WritePNG(&buf, aggregate, render.DefaultWidth, render.DefaultHeight); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	h.writeBody(w, contentTypePNG, "", buf.Bytes())
}

func (h *handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleDashboard"

	query := r.URL.Query()
	model := report.Render(h.table, query.Get("statistics"), query.Get("year"))

	var buf bytes.Buffer
	err := render.WriteDashboardPNG(&buf, model, 2*render.DefaultWidth, 2*render.DefaultHeight)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, render.ErrNotReady) {
			status = http.StatusNotFound
		}
		h.respondErrorWithOp(w, status, err.Error(), op)
		return
	}
	h.writeBody(w, contentTypePNG, "", buf.Bytes())
}

func (h *handler) handleReportCSV(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReportCSV"

	built, ok := h.selectedReport(w, r, op)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := export.WriteReportCSV(&buf, built); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	h.writeBody(w, contentTypeCSV, exportFileName(built.Selection, "csv"), buf.Bytes())
}

func (h *handler) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReportXLSX"

	built, ok := h.selectedReport(w, r, op)
	if !ok {
		return
	}

	includeDataset := h.conf.Export.IncludeDataset
	if raw := r.URL.Query().Get("dataset"); raw != "" {
		includeDataset = raw == "1" || strings.EqualFold(raw, "true")
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, h.table, built, includeDataset); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), op)
		return
	}
	h.writeBody(w, contentTypeXLSX, exportFileName(built.Selection, "xlsx"), buf.Bytes())
}

func (h *handler) handleDatasetCSV(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := export.WriteDatasetCSV(&buf, h.table); err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, err.Error(), "server.handleDatasetCSV")
		return
	}
	h.writeBody(w, contentTypeCSV, "automobile_sales.csv", buf.Bytes())
}

// selectedReport builds the report for the statistics and year query
// parameters. It answers 404 and returns false when they select nothing.
func (h *handler) selectedReport(w http.ResponseWriter, r *http.Request, op string) (report.Report, bool) {
	query := r.URL.Query()
	sel, ok := report.ParseSelection(query.Get("statistics"), query.Get("year"))
	if !ok {
		h.respondErrorWithOp(w, http.StatusNotFound, "no report selected", op)
		return report.Report{}, false
	}
	return report.Build(h.table, sel), true
}

func exportFileName(sel report.Selection, extension string) string {
	if sel.Kind == report.KindYearly {
		return fmt.Sprintf("yearly_statistics_%d.%s", sel.Year, extension)
	}
	return "recession_period_statistics." + extension
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("report request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) writeBody(w http.ResponseWriter, contentType, attachment string, body []byte) {
	w.Header().Set("Content-Type", contentType)
	if attachment != "" {
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", attachment))
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write response body", zap.Error(err))
	}
}
