package catalog

type MuscleGroup struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Owner Owner  `json:"user_id"`
}

type Variation struct {
	ID            int     `json:"id"`
	MuscleGroupID int     `json:"muscle_group_id"`
	Name          string  `json:"name"`
	Description   *string `json:"description"`
	Owner         Owner   `json:"user_id"`
}

type CardioExercise struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Owner Owner  `json:"user_id"`
}

type EntryKind string

const (
	KindMuscleGroup    EntryKind = "muscle_group"
	KindVariation      EntryKind = "variation"
	KindCardioExercise EntryKind = "cardio_exercise"
)

func (k EntryKind) Valid() bool {
	switch k {
	case KindMuscleGroup, KindVariation, KindCardioExercise:
		return true
	default:
		return false
	}
}

// Entry is a newly created catalog row of any kind.
type Entry struct {
	ID            int       `json:"id"`
	Kind          EntryKind `json:"kind"`
	Name          string    `json:"name"`
	MuscleGroupID *int      `json:"muscle_group_id,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Owner         Owner     `json:"user_id"`
}
