package workouts

import (
	"context"
	"fmt"
	"strings"

	"github.com/2beens/fittrack/internal/db"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=logger_mocks_test.go -package=workouts_test

// ErrNotFoundOrForbidden is returned for rows that are missing or owned by another user.
var ErrNotFoundOrForbidden = db.ErrNotFoundOrForbidden

type workoutsRepo interface {
	AddSession(ctx context.Context, session Session) (*Session, error)
	GetSession(ctx context.Context, userID, id int) (*Session, error)
	UpdateSession(ctx context.Context, userID, id int, patch SessionPatch) (*Session, error)
	DeleteSession(ctx context.Context, userID, id int) error
	History(ctx context.Context, userID int, params HistoryParams) ([]Session, error)
	ListSessionSets(ctx context.Context, userID, sessionID int) ([]Set, error)
	ListSessionCardioLogs(ctx context.Context, userID, sessionID int) ([]CardioLog, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	UpdateSet(ctx context.Context, userID, id int, patch SetPatch) (*Set, error)
	DeleteSet(ctx context.Context, userID, id int) error
	AddCardioLog(ctx context.Context, cardioLog CardioLog) (*CardioLog, error)
	UpdateCardioLog(ctx context.Context, userID, id int, patch CardioLogPatch) (*CardioLog, error)
	DeleteCardioLog(ctx context.Context, userID, id int) error
}

const (
	entryKindSession = "session"
	entryKindSet     = "set"
	entryKindCardio  = "cardio"
)

// Logger is the write path for workout events. Every mutation is scoped to the calling user.
type Logger struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

// NewLogger builds the workouts logger; metricsManager may be nil.
func NewLogger(repo workoutsRepo, metricsManager *metrics.Manager) *Logger {
	return &Logger{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// DefaultSessionTitle is used for sessions stored without a title.
func DefaultSessionTitle(date pkg.Date) string {
	return "Session-" + date.String()
}

func (l *Logger) AddSession(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.session.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", session.UserID))

	if session.Date.IsZero() {
		return nil, pkg.NewValidationError("date is required")
	}
	if session.StartTime.IsZero() || session.EndTime.IsZero() {
		return nil, pkg.NewValidationError("start_time and end_time are required")
	}
	if session.Title == nil || strings.TrimSpace(*session.Title) == "" {
		title := DefaultSessionTitle(session.Date)
		session.Title = &title
	}

	added, err := l.repo.AddSession(ctx, session)
	if err != nil {
		return nil, mapWriteErr("add session", err)
	}

	l.countEntry(entryKindSession)
	log.Debugf("session [%d] %q added for user %d", added.ID, *added.Title, added.UserID)
	return added, nil
}

func (l *Logger) UpdateSession(ctx context.Context, userID, id int, patch SessionPatch) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.session.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := requireNonNull(
		nullCheck{"date", patch.Date.Set && patch.Date.Null},
		nullCheck{"start_time", patch.StartTime.Set && patch.StartTime.Null},
		nullCheck{"end_time", patch.EndTime.Set && patch.EndTime.Null},
	); err != nil {
		return nil, err
	}

	updated, err := l.repo.UpdateSession(ctx, userID, id, patch)
	if err != nil {
		return nil, mapWriteErr("update session", err)
	}
	return updated, nil
}

func (l *Logger) DeleteSession(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.session.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := l.repo.DeleteSession(ctx, userID, id); err != nil {
		return fmt.Errorf("delete session %d: %w", id, err)
	}
	return nil
}

// SessionDetails returns the session with its sets and cardio logs.
func (l *Logger) SessionDetails(ctx context.Context, userID, id int) (_ *SessionDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.session.details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	session, err := l.repo.GetSession(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get session %d: %w", id, err)
	}
	sets, err := l.repo.ListSessionSets(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("list session %d sets: %w", id, err)
	}
	cardioLogs, err := l.repo.ListSessionCardioLogs(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("list session %d cardio logs: %w", id, err)
	}

	if sets == nil {
		sets = []Set{}
	}
	if cardioLogs == nil {
		cardioLogs = []CardioLog{}
	}

	return &SessionDetails{
		Session:    *session,
		Sets:       sets,
		CardioLogs: cardioLogs,
	}, nil
}

// History lists the user's sessions, newest first. A non-positive limit means DefaultHistoryLimit.
func (l *Logger) History(ctx context.Context, userID int, params HistoryParams) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if params.Limit <= 0 {
		params.Limit = DefaultHistoryLimit
	}
	if params.Limit > MaxHistoryLimit {
		params.Limit = MaxHistoryLimit
	}
	if params.From != nil && params.To != nil && params.From.After(params.To.Time) {
		return nil, pkg.NewValidationError("start_date must not be after end_date")
	}

	sessions, err := l.repo.History(ctx, userID, params)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	if sessions == nil {
		sessions = []Session{}
	}
	return sessions, nil
}

// AddSet stores the set as given. Weight and reps are not range checked.
func (l *Logger) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.set.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", set.UserID))

	if set.VariationID <= 0 {
		return nil, pkg.NewValidationError("variation_id is required")
	}
	if set.PerformedOn.IsZero() {
		return nil, pkg.NewValidationError("performed_on is required")
	}

	added, err := l.repo.AddSet(ctx, set)
	if err != nil {
		return nil, mapWriteErr("add set", err)
	}

	l.countEntry(entryKindSet)
	log.Debugf("set [%d] added for user %d", added.ID, added.UserID)
	return added, nil
}

func (l *Logger) UpdateSet(ctx context.Context, userID, id int, patch SetPatch) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.set.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := requireNonNull(
		nullCheck{"variation_id", patch.VariationID.Set && patch.VariationID.Null},
		nullCheck{"weight", patch.Weight.Set && patch.Weight.Null},
		nullCheck{"reps", patch.Reps.Set && patch.Reps.Null},
		nullCheck{"performed_on", patch.PerformedOn.Set && patch.PerformedOn.Null},
	); err != nil {
		return nil, err
	}

	updated, err := l.repo.UpdateSet(ctx, userID, id, patch)
	if err != nil {
		return nil, mapWriteErr("update set", err)
	}
	return updated, nil
}

func (l *Logger) DeleteSet(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.set.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := l.repo.DeleteSet(ctx, userID, id); err != nil {
		return fmt.Errorf("delete set %d: %w", id, err)
	}
	return nil
}

// AddCardioLog stores the cardio log as given. Duration is not range checked.
func (l *Logger) AddCardioLog(ctx context.Context, cardioLog CardioLog) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.cardio.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", cardioLog.UserID))

	if cardioLog.CardioExerciseID <= 0 {
		return nil, pkg.NewValidationError("cardio_exercise_id is required")
	}
	if cardioLog.PerformedOn.IsZero() {
		return nil, pkg.NewValidationError("performed_on is required")
	}

	added, err := l.repo.AddCardioLog(ctx, cardioLog)
	if err != nil {
		return nil, mapWriteErr("add cardio log", err)
	}

	l.countEntry(entryKindCardio)
	log.Debugf("cardio log [%d] added for user %d", added.ID, added.UserID)
	return added, nil
}

func (l *Logger) UpdateCardioLog(ctx context.Context, userID, id int, patch CardioLogPatch) (_ *CardioLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.cardio.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := requireNonNull(
		nullCheck{"cardio_exercise_id", patch.CardioExerciseID.Set && patch.CardioExerciseID.Null},
		nullCheck{"duration_minutes", patch.DurationMinutes.Set && patch.DurationMinutes.Null},
		nullCheck{"performed_on", patch.PerformedOn.Set && patch.PerformedOn.Null},
	); err != nil {
		return nil, err
	}

	updated, err := l.repo.UpdateCardioLog(ctx, userID, id, patch)
	if err != nil {
		return nil, mapWriteErr("update cardio log", err)
	}
	return updated, nil
}

func (l *Logger) DeleteCardioLog(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "logger.cardio.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	if err := l.repo.DeleteCardioLog(ctx, userID, id); err != nil {
		return fmt.Errorf("delete cardio log %d: %w", id, err)
	}
	return nil
}

func (l *Logger) countEntry(kind string) {
	if l.metricsManager != nil {
		l.metricsManager.CounterLoggedEntries.WithLabelValues(kind).Inc()
	}
}

type nullCheck struct {
	field  string
	isNull bool
}

// requireNonNull reports the first nulled field in argument order.
func requireNonNull(checks ...nullCheck) error {
	for _, c := range checks {
		if c.isNull {
			return pkg.NewValidationError("%s cannot be null", c.field)
		}
	}
	return nil
}

func mapWriteErr(op string, err error) error {
	if db.IsForeignKeyViolation(err) {
		return &pkg.ValidationError{Message: "referenced record does not exist", Err: err}
	}
	return fmt.Errorf("%s: %w", op, err)
}
