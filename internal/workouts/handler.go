package workouts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsLogger interface {
	AddSession(ctx context.Context, session Session) (*Session, error)
	UpdateSession(ctx context.Context, userID, id int, patch SessionPatch) (*Session, error)
	DeleteSession(ctx context.Context, userID, id int) error
	SessionDetails(ctx context.Context, userID, id int) (*SessionDetails, error)
	History(ctx context.Context, userID int, params HistoryParams) ([]Session, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	UpdateSet(ctx context.Context, userID, id int, patch SetPatch) (*Set, error)
	DeleteSet(ctx context.Context, userID, id int) error
	AddCardioLog(ctx context.Context, cardioLog CardioLog) (*CardioLog, error)
	UpdateCardioLog(ctx context.Context, userID, id int, patch CardioLogPatch) (*CardioLog, error)
	DeleteCardioLog(ctx context.Context, userID, id int) error
}

type AddSessionRequest struct {
	Title     *string      `json:"title"`
	Date      pkg.Date     `json:"date"`
	StartTime pkg.DateTime `json:"start_time"`
	EndTime   pkg.DateTime `json:"end_time"`
	Notes     *string      `json:"notes"`
}

type AddSetRequest struct {
	SessionID   *int     `json:"workout_session_id"`
	VariationID int      `json:"variation_id"`
	Weight      float64  `json:"weight"`
	Reps        int      `json:"reps"`
	PerformedOn pkg.Date `json:"performed_on"`
}

type AddCardioLogRequest struct {
	SessionID        *int     `json:"workout_session_id"`
	CardioExerciseID int      `json:"cardio_exercise_id"`
	DurationMinutes  int      `json:"duration_minutes"`
	PerformedOn      pkg.Date `json:"performed_on"`
}

type Handler struct {
	logger workoutsLogger
}

func NewHandler(logger workoutsLogger) *Handler {
	return &Handler{
		logger: logger,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/addsession", handler.HandleAddSession).Methods("POST", "OPTIONS").Name("add-session")
	r.HandleFunc("/workouts/session/{id}", handler.HandleGetSession).Methods("GET", "OPTIONS").Name("get-session")
	r.HandleFunc("/workouts/session/{id}", handler.HandleUpdateSession).Methods("PUT", "OPTIONS").Name("update-session")
	r.HandleFunc("/workouts/session/{id}", handler.HandleDeleteSession).Methods("DELETE", "OPTIONS").Name("delete-session")
	r.HandleFunc("/workouts/history", handler.HandleHistory).Methods("GET", "OPTIONS").Name("history")

	r.HandleFunc("/workouts/addset", handler.HandleAddSet).Methods("POST", "OPTIONS").Name("add-set")
	r.HandleFunc("/workouts/set/{id}", handler.HandleUpdateSet).Methods("PUT", "OPTIONS").Name("update-set")
	r.HandleFunc("/workouts/set/{id}", handler.HandleDeleteSet).Methods("DELETE", "OPTIONS").Name("delete-set")

	r.HandleFunc("/workouts/addcardio", handler.HandleAddCardioLog).Methods("POST", "OPTIONS").Name("add-cardio")
	r.HandleFunc("/workouts/cardio/{id}", handler.HandleUpdateCardioLog).Methods("PUT", "OPTIONS").Name("update-cardio")
	r.HandleFunc("/workouts/cardio/{id}", handler.HandleDeleteCardioLog).Methods("DELETE", "OPTIONS").Name("delete-cardio")
}

func (handler *Handler) HandleAddSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.add")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req AddSessionRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "add session", err)
		return
	}

	session, err := handler.logger.AddSession(ctx, Session{
		UserID:    identity.UserID,
		Title:     req.Title,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
	})
	if err != nil {
		api.WriteError(w, "add session", err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.get")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, "get session", err)
		return
	}
	span.SetAttributes(attribute.Int("id", id))

	details, err := handler.logger.SessionDetails(ctx, identity.UserID, id)
	if err != nil {
		api.WriteError(w, "get session", err)
		return
	}

	pkg.WriteJSON(w, details, http.StatusOK)
}

func (handler *Handler) HandleUpdateSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.session.update")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, "update session", err)
		return
	}

	var patch SessionPatch
	if err := api.DecodeJSON(r, &patch); err != nil {
		api.WriteError(w, "update session", err)
		return
	}

	session, err := handler.logger.UpdateSession(ctx, identity.UserID, id, patch)
	if err != nil {
		api.WriteError(w, "update session", err)
		return
	}

	pkg.WriteJSON(w, session, http.StatusOK)
}

func (handler *Handler) HandleDeleteSession(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "session", handler.logger.DeleteSession)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var params HistoryParams
	query := r.URL.Query()
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			api.WriteError(w, "history", pkg.NewValidationError("Invalid limit: %s", limitStr))
			return
		}
		params.Limit = limit
	}
	if from := query.Get("start_date"); from != "" {
		d, err := api.ParseDateField("start_date", from)
		if err != nil {
			api.WriteError(w, "history", err)
			return
		}
		params.From = &d
	}
	if to := query.Get("end_date"); to != "" {
		d, err := api.ParseDateField("end_date", to)
		if err != nil {
			api.WriteError(w, "history", err)
			return
		}
		params.To = &d
	}

	sessions, err := handler.logger.History(ctx, identity.UserID, params)
	if err != nil {
		api.WriteError(w, "history", err)
		return
	}

	pkg.WriteJSON(w, sessions, http.StatusOK)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.set.add")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req AddSetRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "add set", err)
		return
	}

	set, err := handler.logger.AddSet(ctx, Set{
		SessionID:   req.SessionID,
		UserID:      identity.UserID,
		VariationID: req.VariationID,
		Weight:      req.Weight,
		Reps:        req.Reps,
		PerformedOn: req.PerformedOn,
	})
	if err != nil {
		api.WriteError(w, "add set", err)
		return
	}

	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.set.update")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, "update set", err)
		return
	}

	var patch SetPatch
	if err := api.DecodeJSON(r, &patch); err != nil {
		api.WriteError(w, "update set", err)
		return
	}

	set, err := handler.logger.UpdateSet(ctx, identity.UserID, id, patch)
	if err != nil {
		api.WriteError(w, "update set", err)
		return
	}

	pkg.WriteJSON(w, set, http.StatusOK)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "set", handler.logger.DeleteSet)
}

func (handler *Handler) HandleAddCardioLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.add")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	var req AddCardioLogRequest
	if err := api.DecodeJSON(r, &req); err != nil {
		api.WriteError(w, "add cardio log", err)
		return
	}

	cardioLog, err := handler.logger.AddCardioLog(ctx, CardioLog{
		SessionID:        req.SessionID,
		UserID:           identity.UserID,
		CardioExerciseID: req.CardioExerciseID,
		DurationMinutes:  req.DurationMinutes,
		PerformedOn:      req.PerformedOn,
	})
	if err != nil {
		api.WriteError(w, "add cardio log", err)
		return
	}

	pkg.WriteJSON(w, cardioLog, http.StatusOK)
}

func (handler *Handler) HandleUpdateCardioLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.cardio.update")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, "update cardio log", err)
		return
	}

	var patch CardioLogPatch
	if err := api.DecodeJSON(r, &patch); err != nil {
		api.WriteError(w, "update cardio log", err)
		return
	}

	cardioLog, err := handler.logger.UpdateCardioLog(ctx, identity.UserID, id, patch)
	if err != nil {
		api.WriteError(w, "update cardio log", err)
		return
	}

	pkg.WriteJSON(w, cardioLog, http.StatusOK)
}

func (handler *Handler) HandleDeleteCardioLog(w http.ResponseWriter, r *http.Request) {
	handler.handleDelete(w, r, "cardio log", handler.logger.DeleteCardioLog)
}

func (handler *Handler) handleDelete(
	w http.ResponseWriter,
	r *http.Request,
	what string,
	remove func(ctx context.Context, userID, id int) error,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()
	span.SetAttributes(attribute.String("what", what))

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}
	id, err := api.PathID(r, "id")
	if err != nil {
		api.WriteError(w, "delete "+what, err)
		return
	}

	if err := remove(ctx, identity.UserID, id); err != nil {
		api.WriteError(w, "delete "+what, err)
		return
	}

	log.Debugf("%s [%d] deleted by user %d", what, id, identity.UserID)
	pkg.WriteStatusResponse(w, true, what+" deleted", http.StatusOK)
}
