// internal/model/progress.go
package model

import "time"

// WorkoutProgress records one completed exercise for a user.
type WorkoutProgress struct {
	ID           uint   `gorm:"primaryKey"`
	UserID       uint   `gorm:"not null;index"`
	ExerciseName string `gorm:"not null"`
	Sets         int
	Reps         int
	Weight       float64
	Notes        string
	CompletedAt  time.Time `gorm:"not null"`
}

func (WorkoutProgress) TableName() string {
	return "workout_progress"
}

// LogProgressRequest is the body of POST /progress.
type LogProgressRequest struct {
	UserID       uint    `json:"userId" validate:"required"`
	ExerciseName string  `json:"exerciseName" validate:"required"`
	Sets         int     `json:"sets" validate:"required,min=1"`
	Reps         int     `json:"reps" validate:"required,min=1"`
	Weight       float64 `json:"weight" validate:"min=0"`
	Notes        string  `json:"notes" validate:"max=1000"`
}

// ProgressEntry is one record in the GET /progress response.
type ProgressEntry struct {
	ID           uint      `json:"id"`
	ExerciseName string    `json:"exerciseName"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	Notes        string    `json:"notes"`
	CompletedAt  time.Time `json:"completedAt"`
}
