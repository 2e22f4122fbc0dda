package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

const (
	sessionColumns = `id, user_id, title, date, start_time, end_time, notes`
	setColumns     = `id, workout_session_id, user_id, variation_id, weight, reps, performed_on`
	cardioColumns  = `id, workout_session_id, user_id, cardio_exercise_id, duration_minutes, performed_on`
)

type Repo struct {
	db *db.Pool
}

func NewRepo(db *db.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	added, err := scanSession(conn.QueryRow(
		ctx,
		`INSERT INTO workout_sessions (user_id, title, date, start_time, end_time, notes)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+sessionColumns+`;`,
		session.UserID, session.Title, session.Date.Time, session.StartTime.Time, session.EndTime.Time, session.Notes,
	))
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", added.ID))
	return added, nil
}

func (r *Repo) GetSession(ctx context.Context, userID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanSession(conn.QueryRow(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
}

func (r *Repo) UpdateSession(ctx context.Context, userID, id int, patch SessionPatch) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanSession(conn.QueryRow(
		ctx,
		`UPDATE workout_sessions SET
				title = CASE WHEN $3::boolean THEN $4::varchar ELSE title END,
				date = CASE WHEN $5::boolean THEN $6::date ELSE date END,
				start_time = CASE WHEN $7::boolean THEN $8::timestamp ELSE start_time END,
				end_time = CASE WHEN $9::boolean THEN $10::timestamp ELSE end_time END,
				notes = CASE WHEN $11::boolean THEN $12::text ELSE notes END
			WHERE id = $1 AND user_id = $2
			RETURNING `+sessionColumns+`;`,
		id, userID,
		patch.Title.Set, patch.Title.Ptr(),
		patch.Date.Set, datePtr(patch.Date),
		patch.StartTime.Set, dateTimePtr(patch.StartTime),
		patch.EndTime.Set, dateTimePtr(patch.EndTime),
		patch.Notes.Set, patch.Notes.Ptr(),
	))
}

func (r *Repo) DeleteSession(ctx context.Context, userID, id int) (err error) {
	return r.deleteScoped(ctx, "repo.workouts.session.delete", `DELETE FROM workout_sessions WHERE id = $1 AND user_id = $2`, userID, id)
}

// History lists the user's sessions, most recent start first.
func (r *Repo) History(ctx context.Context, userID int, params HistoryParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.Int("limit", params.Limit))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions
			WHERE user_id = $1
				AND ($2::date IS NULL OR date >= $2)
				AND ($3::date IS NULL OR date <= $3)
			ORDER BY start_time DESC
			LIMIT $4;`,
		userID, optionalDate(params.From), optionalDate(params.To), params.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sessions(rows)
}

// SessionsBetween lists the user's sessions dated within [from, to].
func (r *Repo) SessionsBetween(ctx context.Context, userID int, from, to pkg.Date) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessions_between")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID))
	span.SetAttributes(attribute.String("from", from.String()), attribute.String("to", to.String()))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT `+sessionColumns+` FROM workout_sessions
			WHERE user_id = $1 AND date >= $2 AND date <= $3
			ORDER BY date, start_time;`,
		userID, from.Time, to.Time,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sessions(rows)
}

func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.set.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	added, err := scanSet(conn.QueryRow(
		ctx,
		`INSERT INTO sets (workout_session_id, user_id, variation_id, weight, reps, performed_on)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+setColumns+`;`,
		set.SessionID, set.UserID, set.VariationID, set.Weight, set.Reps, set.PerformedOn.Time,
	))
	if err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	span.SetAttributes(attribute.Int("set.id", added.ID))
	return added, nil
}

func (r *Repo) UpdateSet(ctx context.Context, userID, id int, patch SetPatch) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.set.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanSet(conn.QueryRow(
		ctx,
		`UPDATE sets SET
				workout_session_id = CASE WHEN $3::boolean THEN $4::integer ELSE workout_session_id END,
				variation_id = CASE WHEN $5::boolean THEN $6::integer ELSE variation_id END,
				weight = CASE WHEN $7::boolean THEN $8::float8 ELSE weight END,
				reps = CASE WHEN $9::boolean THEN $10::integer ELSE reps END,
				performed_on = CASE WHEN $11::boolean THEN $12::date ELSE performed_on END
			WHERE id = $1 AND user_id = $2
			RETURNING `+setColumns+`;`,
		id, userID,
		patch.SessionID.Set, patch.SessionID.Ptr(),
		patch.VariationID.Set, patch.VariationID.Ptr(),
		patch.Weight.Set, patch.Weight.Ptr(),
		patch.Reps.Set, patch.Reps.Ptr(),
		patch.PerformedOn.Set, datePtr(patch.PerformedOn),
	))
}

func (r *Repo) DeleteSet(ctx context.Context, userID, id int) error {
	return r.deleteScoped(ctx, "repo.workouts.set.delete", `DELETE FROM sets WHERE id = $1 AND user_id = $2`, userID, id)
}

func (r *Repo) ListSessionSets(ctx context.Context, userID, sessionID int) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT `+setColumns+` FROM sets WHERE workout_session_id = $1 AND user_id = $2 ORDER BY id;`,
		sessionID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sets(rows)
}

// SetsForVariation lists the user's sets of one variation performed within [from, to].
func (r *Repo) SetsForVariation(ctx context.Context, userID, variationID int, from, to pkg.Date) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets_for_variation")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID), attribute.Int("variation_id", variationID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT `+setColumns+` FROM sets
			WHERE user_id = $1 AND variation_id = $2 AND performed_on >= $3 AND performed_on <= $4
			ORDER BY performed_on, id;`,
		userID, variationID, from.Time, to.Time,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sets(rows)
}

// SetsForMuscleGroups lists the user's sets within [from, to] whose variation
// belongs to one of the muscle groups and is visible to the user.
func (r *Repo) SetsForMuscleGroups(ctx context.Context, userID int, muscleGroupIDs []int, from, to pkg.Date) (_ []Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sets_for_muscle_groups")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID), attribute.IntSlice("muscle_group_ids", muscleGroupIDs))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT s.id, s.workout_session_id, s.user_id, s.variation_id, s.weight, s.reps, s.performed_on
			FROM sets s
			JOIN variations v ON v.id = s.variation_id
			WHERE s.user_id = $1
				AND v.muscle_group_id = ANY($2)
				AND (v.user_id = $1 OR v.user_id IS NULL OR v.user_id = 0)
				AND s.performed_on >= $3 AND s.performed_on <= $4
			ORDER BY s.performed_on, s.id;`,
		userID, muscleGroupIDs, from.Time, to.Time,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return rows2sets(rows)
}

func (r *Repo) AddCardioLog(ctx context.Context, cardioLog CardioLog) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	added, err := scanCardioLog(conn.QueryRow(
		ctx,
		`INSERT INTO cardio_logs (workout_session_id, user_id, cardio_exercise_id, duration_minutes, performed_on)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING `+cardioColumns+`;`,
		cardioLog.SessionID, cardioLog.UserID, cardioLog.CardioExerciseID, cardioLog.DurationMinutes, cardioLog.PerformedOn.Time,
	))
	if err != nil {
		return nil, fmt.Errorf("insert cardio log: %w", err)
	}

	span.SetAttributes(attribute.Int("cardio.id", added.ID))
	return added, nil
}

func (r *Repo) UpdateCardioLog(ctx context.Context, userID, id int, patch CardioLogPatch) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	return scanCardioLog(conn.QueryRow(
		ctx,
		`UPDATE cardio_logs SET
				workout_session_id = CASE WHEN $3::boolean THEN $4::integer ELSE workout_session_id END,
				cardio_exercise_id = CASE WHEN $5::boolean THEN $6::integer ELSE cardio_exercise_id END,
				duration_minutes = CASE WHEN $7::boolean THEN $8::integer ELSE duration_minutes END,
				performed_on = CASE WHEN $9::boolean THEN $10::date ELSE performed_on END
			WHERE id = $1 AND user_id = $2
			RETURNING `+cardioColumns+`;`,
		id, userID,
		patch.SessionID.Set, patch.SessionID.Ptr(),
		patch.CardioExerciseID.Set, patch.CardioExerciseID.Ptr(),
		patch.DurationMinutes.Set, patch.DurationMinutes.Ptr(),
		patch.PerformedOn.Set, datePtr(patch.PerformedOn),
	))
}

func (r *Repo) DeleteCardioLog(ctx context.Context, userID, id int) error {
	return r.deleteScoped(ctx, "repo.workouts.cardio.delete", `DELETE FROM cardio_logs WHERE id = $1 AND user_id = $2`, userID, id)
}

func (r *Repo) ListSessionCardioLogs(ctx context.Context, userID, sessionID int) (_ []CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.session.cardio")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, err := conn.Query(
		ctx,
		`SELECT `+cardioColumns+` FROM cardio_logs WHERE workout_session_id = $1 AND user_id = $2 ORDER BY id;`,
		sessionID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cardioLogs []CardioLog
	for rows.Next() {
		cardioLog, err := scanCardioLog(rows)
		if err != nil {
			return nil, err
		}
		cardioLogs = append(cardioLogs, *cardioLog)
	}

	return cardioLogs, rows.Err()
}

func (r *Repo) deleteScoped(ctx context.Context, spanName, query string, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	tag, err := conn.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFoundOrForbidden
	}
	return nil
}

func scanSession(row pgx.Row) (*Session, error) {
	var s Session
	var date, start, end time.Time
	if err := row.Scan(&s.ID, &s.UserID, &s.Title, &date, &start, &end, &s.Notes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFoundOrForbidden
		}
		return nil, err
	}
	s.Date = pkg.DateOf(date)
	s.StartTime = pkg.DateTime{Time: start}
	s.EndTime = pkg.DateTime{Time: end}
	return &s, nil
}

func rows2sessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, *s)
	}
	return sessions, rows.Err()
}

func scanSet(row pgx.Row) (*Set, error) {
	var s Set
	var performedOn time.Time
	if err := row.Scan(&s.ID, &s.SessionID, &s.UserID, &s.VariationID, &s.Weight, &s.Reps, &performedOn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFoundOrForbidden
		}
		return nil, err
	}
	s.PerformedOn = pkg.DateOf(performedOn)
	return &s, nil
}

func rows2sets(rows pgx.Rows) ([]Set, error) {
	var sets []Set
	for rows.Next() {
		s, err := scanSet(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sets = append(sets, *s)
	}
	return sets, rows.Err()
}

func scanCardioLog(row pgx.Row) (*CardioLog, error) {
	var c CardioLog
	var performedOn time.Time
	if err := row.Scan(&c.ID, &c.SessionID, &c.UserID, &c.CardioExerciseID, &c.DurationMinutes, &performedOn); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, db.ErrNotFoundOrForbidden
		}
		return nil, err
	}
	c.PerformedOn = pkg.DateOf(performedOn)
	return &c, nil
}

func datePtr(o pkg.Optional[pkg.Date]) *time.Time {
	if !o.HasValue() {
		return nil
	}
	t := o.Value.Time
	return &t
}

func dateTimePtr(o pkg.Optional[pkg.DateTime]) *time.Time {
	if !o.HasValue() {
		return nil
	}
	t := o.Value.Time
	return &t
}

func optionalDate(d *pkg.Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}
