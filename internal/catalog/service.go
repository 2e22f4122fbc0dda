package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/cache"
	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=catalog_test

type catalogRepo interface {
	ListMuscleGroups(ctx context.Context, userID int) ([]MuscleGroup, error)
	ListVariations(ctx context.Context, userID int) ([]Variation, error)
	ListCardioExercises(ctx context.Context, userID int) ([]CardioExercise, error)
	AddEntry(ctx context.Context, entry Entry) (*Entry, error)
}

const (
	cacheKindMuscleGroups    = "muscle_groups"
	cacheKindVariations      = "variations"
	cacheKindCardioExercises = "cardio_exercises"
)

// NewEntry is the user input for a catalog entry.
type NewEntry struct {
	Kind          EntryKind
	Name          string
	MuscleGroupID int
	Description   *string
}

type Service struct {
	repo           catalogRepo
	cache          cache.Cache
	metricsManager *metrics.Manager
}

// NewService builds the catalog service; cache and metricsManager may be nil.
func NewService(repo catalogRepo, cache cache.Cache, metricsManager *metrics.Manager) *Service {
	return &Service{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (s *Service) MuscleGroups(ctx context.Context, userID int) ([]MuscleGroup, error) {
	return cachedList(ctx, s, cacheKindMuscleGroups, userID, s.repo.ListMuscleGroups)
}

func (s *Service) Variations(ctx context.Context, userID int) ([]Variation, error) {
	return cachedList(ctx, s, cacheKindVariations, userID, s.repo.ListVariations)
}

func (s *Service) CardioExercises(ctx context.Context, userID int) ([]CardioExercise, error) {
	return cachedList(ctx, s, cacheKindCardioExercises, userID, s.repo.ListCardioExercises)
}

func cachedList[T any](
	ctx context.Context,
	s *Service,
	kind string,
	userID int,
	load func(ctx context.Context, userID int) ([]T, error),
) (_ []T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", kind))

	if s.cache != nil {
		var cached []T
		if s.cache.Get(kind, userID, &cached) {
			s.countCache("hit")
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return cached, nil
		}
		s.countCache("miss")
	}

	items, err := load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}
	if items == nil {
		items = []T{}
	}

	if s.cache != nil {
		s.cache.Set(kind, userID, items)
	}

	return items, nil
}

// AddEntry stores a user owned catalog entry and drops the user's cached lists.
func (s *Service) AddEntry(ctx context.Context, userID int, newEntry NewEntry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", string(newEntry.Kind)))

	if !newEntry.Kind.Valid() {
		return nil, pkg.NewValidationError("unknown catalog entry kind: %q", newEntry.Kind)
	}
	name := strings.TrimSpace(newEntry.Name)
	if name == "" {
		return nil, pkg.NewValidationError("name must not be empty")
	}

	entry := Entry{
		Kind:  newEntry.Kind,
		Name:  name,
		Owner: UserOwner(userID),
	}

	if newEntry.Kind == KindVariation {
		if err := s.checkMuscleGroupVisible(ctx, userID, newEntry.MuscleGroupID); err != nil {
			return nil, err
		}
		muscleGroupID := newEntry.MuscleGroupID
		entry.MuscleGroupID = &muscleGroupID
		entry.Description = newEntry.Description
	}

	added, err := s.repo.AddEntry(ctx, entry)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, &pkg.ValidationError{Message: "referenced muscle group does not exist", Err: err}
		}
		return nil, fmt.Errorf("add %s: %w", newEntry.Kind, err)
	}

	if s.cache != nil {
		s.cache.Invalidate(userID, cacheKindMuscleGroups, cacheKindVariations, cacheKindCardioExercises)
	}
	if s.metricsManager != nil {
		s.metricsManager.CounterLoggedEntries.WithLabelValues(string(newEntry.Kind)).Inc()
	}

	log.Debugf("catalog %s [%d] added by user %d", added.Kind, added.ID, userID)
	return added, nil
}

func (s *Service) checkMuscleGroupVisible(ctx context.Context, userID, muscleGroupID int) error {
	if muscleGroupID <= 0 {
		return pkg.NewValidationError("muscle_group_id is required for a variation")
	}
	muscleGroups, err := s.MuscleGroups(ctx, userID)
	if err != nil {
		return err
	}
	for _, mg := range muscleGroups {
		if mg.ID == muscleGroupID {
			return nil
		}
	}
	return pkg.NewValidationError("muscle group %d does not exist", muscleGroupID)
}

func (s *Service) countCache(result string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterCatalogCache.WithLabelValues(result).Inc()
	}
}
