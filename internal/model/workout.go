// internal/model/workout.go
package model

import "time"

// WorkoutPlan is one named day of exercises belonging to a user.
// DayNumber is 1-based and contiguous within a user's plan set; it
// determines display order.
type WorkoutPlan struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Name      string    `gorm:"not null"`
	DayNumber int       `gorm:"not null"`
	CreatedAt time.Time

	Exercises []Exercise `gorm:"foreignKey:WorkoutPlanID;constraint:OnDelete:CASCADE"`
}

func (WorkoutPlan) TableName() string {
	return "workout_plans"
}

// Exercise is one movement entry within a plan. OrderIndex is 0-based
// and contiguous within the plan. VideoLink usually holds the exercise
// name as a search hint rather than an actual URL.
type Exercise struct {
	ID            uint   `gorm:"primaryKey"`
	WorkoutPlanID uint   `gorm:"not null;index"`
	Name          string `gorm:"not null"`
	Sets          int
	Reps          int
	RestTime      int
	VideoLink     string
	OrderIndex    int `gorm:"not null"`
}

func (Exercise) TableName() string {
	return "exercises"
}

// PlanPayload is the wire shape shared by the generation prompt's
// expected output and the /workouts and /get-user-workout responses.
// The "excercises" key is misspelled on purpose: existing clients
// depend on it byte-for-byte.
type PlanPayload struct {
	Name       string            `json:"name"`
	Excercises []ExercisePayload `json:"excercises"`
}

type ExercisePayload struct {
	Name      string `json:"name"`
	Sets      int    `json:"sets"`
	Reps      int    `json:"reps"`
	RestTime  int    `json:"restTime"`
	VideoLink string `json:"videoLink"`
}

// GeneratePlanRequest carries the /workouts query parameters. The free
// text fields and numeric stats are passed to the prompt builder as-is;
// out-of-range values are not rejected here.
type GeneratePlanRequest struct {
	UserID   uint
	Age      int
	Gender   string
	History  string
	Goal     string
	Location string
	Weight   float64
	Height   float64
	Amount   int
}
