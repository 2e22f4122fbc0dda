package workouts

import (
	"time"

	"github.com/2beens/fittrack/pkg"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500
)

type Session struct {
	ID        int          `json:"id"`
	UserID    int          `json:"user_id"`
	Title     *string      `json:"title"`
	Date      pkg.Date     `json:"date"`
	StartTime pkg.DateTime `json:"start_time"`
	EndTime   pkg.DateTime `json:"end_time"`
	Notes     *string      `json:"notes"`
}

// DurationMinutes is the whole number of minutes between start and end, truncated toward zero.
// It is negative when the end precedes the start.
func (s Session) DurationMinutes() int {
	return int(s.EndTime.Sub(s.StartTime.Time) / time.Minute)
}

type Set struct {
	ID          int      `json:"id"`
	SessionID   *int     `json:"workout_session_id"`
	UserID      int      `json:"user_id"`
	VariationID int      `json:"variation_id"`
	Weight      float64  `json:"weight"`
	Reps        int      `json:"reps"`
	PerformedOn pkg.Date `json:"performed_on"`
}

// Volume is weight times reps.
func (s Set) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

type CardioLog struct {
	ID               int      `json:"id"`
	SessionID        *int     `json:"workout_session_id"`
	UserID           int      `json:"user_id"`
	CardioExerciseID int      `json:"cardio_exercise_id"`
	DurationMinutes  int      `json:"duration_minutes"`
	PerformedOn      pkg.Date `json:"performed_on"`
}

type SessionDetails struct {
	Session    Session     `json:"session"`
	Sets       []Set       `json:"sets"`
	CardioLogs []CardioLog `json:"cardio_logs"`
}

// SessionPatch fields left unset keep their stored value. Title and Notes may be nulled.
type SessionPatch struct {
	Title     pkg.Optional[string]       `json:"title"`
	Date      pkg.Optional[pkg.Date]     `json:"date"`
	StartTime pkg.Optional[pkg.DateTime] `json:"start_time"`
	EndTime   pkg.Optional[pkg.DateTime] `json:"end_time"`
	Notes     pkg.Optional[string]       `json:"notes"`
}

// SetPatch may null the session link only.
type SetPatch struct {
	SessionID   pkg.Optional[int]      `json:"workout_session_id"`
	VariationID pkg.Optional[int]      `json:"variation_id"`
	Weight      pkg.Optional[float64]  `json:"weight"`
	Reps        pkg.Optional[int]      `json:"reps"`
	PerformedOn pkg.Optional[pkg.Date] `json:"performed_on"`
}

// CardioLogPatch may null the session link only.
type CardioLogPatch struct {
	SessionID        pkg.Optional[int]      `json:"workout_session_id"`
	CardioExerciseID pkg.Optional[int]      `json:"cardio_exercise_id"`
	DurationMinutes  pkg.Optional[int]      `json:"duration_minutes"`
	PerformedOn      pkg.Optional[pkg.Date] `json:"performed_on"`
}

type HistoryParams struct {
	Limit int
	From  *pkg.Date
	To    *pkg.Date
}
