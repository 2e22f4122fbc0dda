package dashboard

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=dashboard_test

type analyzer interface {
	WorkoutLevels(ctx context.Context, userID, year, month int) ([]WorkoutLevel, error)
	PerformanceDetails(ctx context.Context, userID, variationID int, start, end pkg.Date) ([]WeeklyVolume, error)
	MuscleGroupSummary(ctx context.Context, userID int, start, end pkg.Date, muscleGroupIDs []int) ([]MuscleGroupSets, error)
}

type MonthlyLevelsRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

type PerformanceRequest struct {
	VariationID int    `json:"variation_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type MuscleGroupSummaryRequest struct {
	MuscleGroupIDs []int  `json:"muscle_group_ids"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
}

type Handler struct {
	analyzer analyzer
}

func NewHandler(analyzer analyzer) *Handler {
	return &Handler{
		analyzer: analyzer,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/monthlylevels", handler.HandleMonthlyLevels).Methods("POST", "OPTIONS").Name("monthly-levels")
	r.HandleFunc("/performancemetrics", handler.HandlePerformanceMetrics).Methods("POST", "OPTIONS").Name("performance-metrics")
	r.HandleFunc("/mslegrpsumm", handler.HandleMuscleGroupSummary).Methods("POST", "OPTIONS").Name("muscle-group-summary")
}

func (handler *Handler) HandleMonthlyLevels(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.monthly_levels")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req MonthlyLevelsRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "monthly levels", err)
		return
	}

	levels, err := handler.analyzer.WorkoutLevels(ctx, identity.UserID, req.Year, req.Month)
	if err != nil {
		api.WriteError(w, "monthly levels", err)
		return
	}

	pkg.WriteJSON(w, levels, http.StatusOK)
}

func (handler *Handler) HandlePerformanceMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.performance_metrics")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req PerformanceRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "performance metrics", err)
		return
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		api.WriteError(w, "performance metrics", err)
		return
	}

	series, err := handler.analyzer.PerformanceDetails(ctx, identity.UserID, req.VariationID, start, end)
	if err != nil {
		api.WriteError(w, "performance metrics", err)
		return
	}

	pkg.WriteJSON(w, series, http.StatusOK)
}

func (handler *Handler) HandleMuscleGroupSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.dashboard.muscle_group_summary")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req MuscleGroupSummaryRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "muscle group summary", err)
		return
	}
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		api.WriteError(w, "muscle group summary", err)
		return
	}

	summary, err := handler.analyzer.MuscleGroupSummary(ctx, identity.UserID, start, end, req.MuscleGroupIDs)
	if err != nil {
		api.WriteError(w, "muscle group summary", err)
		return
	}

	pkg.WriteJSON(w, summary, http.StatusOK)
}

func parseRange(startStr, endStr string) (pkg.Date, pkg.Date, error) {
	start, err := api.ParseDateField("start_date", startStr)
	if err != nil {
		return pkg.Date{}, pkg.Date{}, err
	}
	end, err := api.ParseDateField("end_date", endStr)
	if err != nil {
		return pkg.Date{}, pkg.Date{}, err
	}
	return start, end, nil
}
