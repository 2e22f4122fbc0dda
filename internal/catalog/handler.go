package catalog

import (
	"context"
	"net/http"

	"github.com/2beens/fittrack/internal/api"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=catalog_test

type catalogService interface {
	MuscleGroups(ctx context.Context, userID int) ([]MuscleGroup, error)
	Variations(ctx context.Context, userID int) ([]Variation, error)
	CardioExercises(ctx context.Context, userID int) ([]CardioExercise, error)
	AddEntry(ctx context.Context, userID int, newEntry NewEntry) (*Entry, error)
}

type AddEntryRequest struct {
	Name          string  `json:"name"`
	MuscleGroupID int     `json:"muscle_group_id"`
	Description   *string `json:"description"`
}

type Handler struct {
	service catalogService
}

func NewHandler(service catalogService) *Handler {
	return &Handler{
		service: service,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/workouts/muscle_groups", handler.HandleListMuscleGroups).Methods("GET", "OPTIONS").Name("list-muscle-groups")
	r.HandleFunc("/workouts/variations", handler.HandleListVariations).Methods("GET", "OPTIONS").Name("list-variations")
	r.HandleFunc("/workouts/cardio_exercises", handler.HandleListCardioExercises).Methods("GET", "OPTIONS").Name("list-cardio-exercises")
	r.HandleFunc("/workouts/muscle_groups", handler.addEntryHandler(KindMuscleGroup)).Methods("POST", "OPTIONS").Name("new-muscle-group")
	r.HandleFunc("/workouts/variations", handler.addEntryHandler(KindVariation)).Methods("POST", "OPTIONS").Name("new-variation")
	r.HandleFunc("/workouts/cardio_exercises", handler.addEntryHandler(KindCardioExercise)).Methods("POST", "OPTIONS").Name("new-cardio-exercise")
}

func (handler *Handler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.muscle_groups")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	muscleGroups, err := handler.service.MuscleGroups(ctx, identity.UserID)
	if err != nil {
		api.WriteError(w, "list muscle groups", err)
		return
	}

	pkg.WriteJSON(w, muscleGroups, http.StatusOK)
}

func (handler *Handler) HandleListVariations(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.variations")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	variations, err := handler.service.Variations(ctx, identity.UserID)
	if err != nil {
		api.WriteError(w, "list variations", err)
		return
	}

	pkg.WriteJSON(w, variations, http.StatusOK)
}

func (handler *Handler) HandleListCardioExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.cardio_exercises")
	defer span.End()

	identity, ok := api.RequireIdentity(w, r)
	if !ok {
		return
	}

	exercises, err := handler.service.CardioExercises(ctx, identity.UserID)
	if err != nil {
		api.WriteError(w, "list cardio exercises", err)
		return
	}

	pkg.WriteJSON(w, exercises, http.StatusOK)
}

func (handler *Handler) addEntryHandler(kind EntryKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.add")
		defer span.End()

		identity, ok := api.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req AddEntryRequest
		if err := api.DecodeJSON(r, &req); err != nil {
			api.WriteError(w, "add catalog entry", err)
			return
		}

		entry, err := handler.service.AddEntry(ctx, identity.UserID, NewEntry{
			Kind:          kind,
			Name:          req.Name,
			MuscleGroupID: req.MuscleGroupID,
			Description:   req.Description,
		})
		if err != nil {
			api.WriteError(w, "add catalog entry", err)
			return
		}

		log.Debugf("new %s [%d] for user %d", kind, entry.ID, identity.UserID)
		pkg.WriteJSON(w, entry, http.StatusCreated)
	}
}
