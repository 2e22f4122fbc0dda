package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
	"github.com/2beens/fittrack/internal/workouts"
	"github.com/2beens/fittrack/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=dashboard_test

// Minutes of logged training per day needed for each workout level.
const (
	Level1Minutes = 30
	Level2Minutes = 60
	Level3Minutes = 90
)

// MaxPerformanceRangeDays bounds the span between start and end of a performance query.
const MaxPerformanceRangeDays = 731

type workoutsReader interface {
	SessionsBetween(ctx context.Context, userID int, from, to pkg.Date) ([]workouts.Session, error)
	SetsForVariation(ctx context.Context, userID, variationID int, from, to pkg.Date) ([]workouts.Set, error)
	SetsForMuscleGroups(ctx context.Context, userID int, muscleGroupIDs []int, from, to pkg.Date) ([]workouts.Set, error)
}

type catalogReader interface {
	VariationMuscleGroups(ctx context.Context, userID int, muscleGroupIDs []int) (map[int]int, error)
}

type WorkoutLevel struct {
	Date  pkg.Date `json:"date"`
	Level int      `json:"level"`
}

type WeeklyVolume struct {
	Week   string  `json:"week"`
	Volume float64 `json:"volume"`
}

type MuscleGroupSets struct {
	MuscleGroupID int `json:"muscle_group_id"`
	TotalSets     int `json:"total_sets"`
}

// Analyzer derives the dashboard views from a user's logged workouts.
type Analyzer struct {
	workouts       workoutsReader
	catalog        catalogReader
	metricsManager *metrics.Manager
}

// NewAnalyzer builds the analyzer; metricsManager may be nil.
func NewAnalyzer(workouts workoutsReader, catalog catalogReader, metricsManager *metrics.Manager) *Analyzer {
	return &Analyzer{
		workouts:       workouts,
		catalog:        catalog,
		metricsManager: metricsManager,
	}
}

// LevelFor classifies a day's total training minutes.
func LevelFor(minutes int) int {
	switch {
	case minutes >= Level3Minutes:
		return 3
	case minutes >= Level2Minutes:
		return 2
	case minutes >= Level1Minutes:
		return 1
	default:
		return 0
	}
}

// WeekLabel is "{calendar month}-W{ISO week}". Around new year the month and
// the ISO week disagree (2024-12-30 is "12-W1"); the label keeps both as is.
func WeekLabel(d pkg.Date) string {
	_, week := d.ISOWeek()
	return fmt.Sprintf("%d-W%d", int(d.Month()), week)
}

// WorkoutLevels returns one entry per day of the month with positive logged duration, ordered by date.
func (a *Analyzer) WorkoutLevels(ctx context.Context, userID, year, month int) (_ []WorkoutLevel, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.workout_levels")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID), attribute.Int("year", year), attribute.Int("month", month))
	defer a.observe("workout_levels", time.Now())

	if month < 1 || month > 12 {
		return nil, pkg.NewValidationError("month must be between 1 and 12, got %d", month)
	}

	first := pkg.NewDate(year, time.Month(month), 1)
	last := pkg.DateOf(first.AddDate(0, 1, -1))
	sessions, err := a.workouts.SessionsBetween(ctx, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("sessions in %d-%02d: %w", year, month, err)
	}

	minutesPerDay := make(map[pkg.Date]int)
	for _, s := range sessions {
		minutesPerDay[s.Date] += s.DurationMinutes()
	}

	levels := make([]WorkoutLevel, 0, len(minutesPerDay))
	for date, minutes := range minutesPerDay {
		if minutes <= 0 {
			continue
		}
		levels = append(levels, WorkoutLevel{
			Date:  date,
			Level: LevelFor(minutes),
		})
	}
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].Date.Before(levels[j].Date.Time)
	})

	log.Tracef("workout levels for user %d, %d-%02d: %d days", userID, year, month, len(levels))
	return levels, nil
}

// PerformanceDetails returns the weight*reps volume of a variation per week label for
// every week touched by [start, end], in calendar order. Weeks without sets report 0.
func (a *Analyzer) PerformanceDetails(ctx context.Context, userID, variationID int, start, end pkg.Date) (_ []WeeklyVolume, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.performance_details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID), attribute.Int("variation_id", variationID))
	defer a.observe("performance_details", time.Now())

	if start.After(end.Time) {
		return nil, pkg.NewValidationError("start_date must not be after end_date")
	}
	if days := end.Sub(start.Time) / (24 * time.Hour); days > MaxPerformanceRangeDays {
		return nil, pkg.NewValidationError("date range must not exceed %d days", MaxPerformanceRangeDays)
	}

	sets, err := a.workouts.SetsForVariation(ctx, userID, variationID, start, end)
	if err != nil {
		return nil, fmt.Errorf("sets for variation %d: %w", variationID, err)
	}

	var weeks []string
	seen := make(map[string]bool)
	for d := start; !d.After(end.Time); d = d.AddDays(1) {
		label := WeekLabel(d)
		if !seen[label] {
			seen[label] = true
			weeks = append(weeks, label)
		}
	}

	volumes := make(map[string]float64)
	for _, s := range sets {
		volumes[WeekLabel(s.PerformedOn)] += s.Volume()
	}

	series := make([]WeeklyVolume, 0, len(weeks))
	for _, week := range weeks {
		series = append(series, WeeklyVolume{
			Week:   week,
			Volume: volumes[week],
		})
	}

	return series, nil
}

// MuscleGroupSummary counts the sets per requested muscle group within [start, end].
// Groups without sets are left out. Sets whose variation does not resolve to a
// requested group are skipped and logged.
func (a *Analyzer) MuscleGroupSummary(ctx context.Context, userID int, start, end pkg.Date, muscleGroupIDs []int) (_ []MuscleGroupSets, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.muscle_group_summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user_id", userID), attribute.IntSlice("muscle_group_ids", muscleGroupIDs))
	defer a.observe("muscle_group_summary", time.Now())

	if start.After(end.Time) {
		return nil, pkg.NewValidationError("start_date must not be after end_date")
	}
	if len(muscleGroupIDs) == 0 {
		return []MuscleGroupSets{}, nil
	}

	sets, err := a.workouts.SetsForMuscleGroups(ctx, userID, muscleGroupIDs, start, end)
	if err != nil {
		return nil, fmt.Errorf("sets for muscle groups: %w", err)
	}
	variationToGroup, err := a.catalog.VariationMuscleGroups(ctx, userID, muscleGroupIDs)
	if err != nil {
		return nil, fmt.Errorf("variation muscle groups: %w", err)
	}

	counts := make(map[int]int)
	for _, s := range sets {
		muscleGroupID, ok := variationToGroup[s.VariationID]
		if !ok {
			log.Warnf("muscle group not found for variation %d, set %d skipped", s.VariationID, s.ID)
			if a.metricsManager != nil {
				a.metricsManager.CounterSkippedOrphanSets.Inc()
			}
			continue
		}
		counts[muscleGroupID]++
	}

	summary := make([]MuscleGroupSets, 0, len(counts))
	for muscleGroupID, total := range counts {
		summary = append(summary, MuscleGroupSets{
			MuscleGroupID: muscleGroupID,
			TotalSets:     total,
		})
	}
	sort.Slice(summary, func(i, j int) bool {
		return summary[i].MuscleGroupID < summary[j].MuscleGroupID
	})

	return summary, nil
}

func (a *Analyzer) observe(view string, start time.Time) {
	if a.metricsManager != nil {
		a.metricsManager.HistogramAnalyticsDuration.WithLabelValues(view).Observe(time.Since(start).Seconds())
	}
}
