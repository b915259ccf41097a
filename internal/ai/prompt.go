// internal/ai/prompt.go
package ai

import (
	"fmt"

	"github.com/Tamirosss/app-server/internal/model"
)

// exampleWorkout is interpolated into prompts verbatim so the model
// sees the exact object shape the parser expects, misspelled
// "excercises" key included.
const exampleWorkout = `{"name":"Day 1","excercises":[{"name":"Push Up","sets":3,"reps":12,"restTime":60,"videoLink":"Push Up"}]}`

const exampleExercise = `{"name":"Push Up","sets":3,"reps":12,"restTime":60,"videoLink":"Push Up"}`

// PlanPrompt builds the instruction for a full plan generation. Free
// text fields are interpolated as-is; the caller owns their content.
func PlanPrompt(req *model.GeneratePlanRequest) string {
	return fmt.Sprintf(
		`You are a personal trainer creating a weekly workout program.

The subject: age %d, gender %s, weight %.1f kg, height %.1f cm.
Training history: %s.
Goal: %s.
Training location: %s.

Create a program of exactly %d workout days.
Respond with a JSON array of exactly %d workout objects, each shaped like this example:
%s

Rules:
- "videoLink" must hold the exercise name as a search hint, not a URL.
- "restTime" is in seconds.
- Respond with the JSON array only. No explanations, no text outside the JSON.`,
		req.Age, req.Gender, req.Weight, req.Height,
		req.History, req.Goal, req.Location,
		req.Amount, req.Amount, exampleWorkout,
	)
}

// ReplacementPrompt asks for a single substitute exercise.
func ReplacementPrompt(exerciseName string) string {
	return fmt.Sprintf(
		`Suggest one substitute exercise for "%s" that trains the same muscles.

Respond with a single JSON object shaped like this example:
%s

Rules:
- "videoLink" must hold the exercise name as a search hint, not a URL.
- "restTime" is in seconds.
- Respond with the JSON object only. No explanations, no text outside the JSON.`,
		exerciseName, exampleExercise,
	)
}
