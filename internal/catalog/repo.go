package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

// visibleTo is the shared ownership filter; $1 is the requesting user.
const visibleTo = `(user_id = $1 OR user_id IS NULL OR user_id = 0)`

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListMuscleGroups(ctx context.Context, userID int) (_ []MuscleGroup, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.muscle_groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT id, name, user_id FROM muscle_groups WHERE `+visibleTo+` ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var muscleGroups []MuscleGroup
	for rows.Next() {
		var mg MuscleGroup
		var ownerID *int
		if err := rows.Scan(&mg.ID, &mg.Name, &ownerID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		mg.Owner = ownerFromDB(ownerID)
		muscleGroups = append(muscleGroups, mg)
	}

	return muscleGroups, rows.Err()
}

func (r *Repo) ListVariations(ctx context.Context, userID int) (_ []Variation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.variations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT id, muscle_group_id, name, description, user_id FROM variations WHERE `+visibleTo+` ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var variations []Variation
	for rows.Next() {
		var v Variation
		var ownerID *int
		if err := rows.Scan(&v.ID, &v.MuscleGroupID, &v.Name, &v.Description, &ownerID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		v.Owner = ownerFromDB(ownerID)
		variations = append(variations, v)
	}

	return variations, rows.Err()
}

func (r *Repo) ListCardioExercises(ctx context.Context, userID int) (_ []CardioExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.cardio_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT id, name, user_id FROM cardio_exercises WHERE `+visibleTo+` ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercises []CardioExercise
	for rows.Next() {
		var ce CardioExercise
		var ownerID *int
		if err := rows.Scan(&ce.ID, &ce.Name, &ownerID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		ce.Owner = ownerFromDB(ownerID)
		exercises = append(exercises, ce)
	}

	return exercises, rows.Err()
}

// VariationMuscleGroups maps variation id to muscle group id for the visible
// variations of the given muscle groups.
func (r *Repo) VariationMuscleGroups(ctx context.Context, userID int, muscleGroupIDs []int) (_ map[int]int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.variation_muscle_groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.IntSlice("muscle_group_ids", muscleGroupIDs))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT id, muscle_group_id FROM variations
			WHERE muscle_group_id = ANY($2) AND `+visibleTo+`;`,
		userID, muscleGroupIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	variationToGroup := make(map[int]int)
	for rows.Next() {
		var variationID, muscleGroupID int
		if err := rows.Scan(&variationID, &muscleGroupID); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		variationToGroup[variationID] = muscleGroupID
	}

	return variationToGroup, rows.Err()
}

func (r *Repo) AddEntry(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", string(entry.Kind)))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	var row pgx.Row
	switch entry.Kind {
	case KindMuscleGroup:
		row = conn.QueryRow(
			ctx,
			`INSERT INTO muscle_groups (name, user_id) VALUES ($1, $2) RETURNING id;`,
			entry.Name, entry.Owner.dbValue(),
		)
	case KindVariation:
		if entry.MuscleGroupID == nil {
			return nil, errors.New("variation without muscle group")
		}
		row = conn.QueryRow(
			ctx,
			`INSERT INTO variations (muscle_group_id, name, description, user_id) VALUES ($1, $2, $3, $4) RETURNING id;`,
			*entry.MuscleGroupID, entry.Name, entry.Description, entry.Owner.dbValue(),
		)
	case KindCardioExercise:
		row = conn.QueryRow(
			ctx,
			`INSERT INTO cardio_exercises (name, user_id) VALUES ($1, $2) RETURNING id;`,
			entry.Name, entry.Owner.dbValue(),
		)
	default:
		return nil, fmt.Errorf("unknown catalog entry kind: %s", entry.Kind)
	}

	if err := row.Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("insert %s: %w", entry.Kind, err)
	}
	span.SetAttributes(attribute.Int("id", entry.ID))

	return &entry, nil
}
