// ABOUTME: MCP tool implementations for workout tracking.
// ABOUTME: Covers running, cycling, and functional sessions with nested exercises.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerWorkoutTools() {
	// add-workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add-workout",
		Description: "Log a running, cycling, or functional workout, with exercises for functional sessions",
	}, s.handleAddWorkout)

	// update-workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "update-workout",
		Description: "Update workout fields by id; a provided exercise list replaces all exercises",
	}, s.handleUpdateWorkout)

	// delete-workout
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete-workout",
		Description: "Delete a workout and its exercises by id",
	}, s.handleDeleteWorkout)

	// list-workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list-workouts",
		Description: "List workouts, optionally filtered by type or recency",
	}, s.handleListWorkouts)
}

type exerciseInput struct {
	Name      string   `json:"name" jsonschema:"Exercise name"`
	Sets      *int     `json:"sets,omitempty" jsonschema:"Number of sets"`
	Reps      *string  `json:"reps,omitempty" jsonschema:"Reps in flexible format (10,10,8 or 30 seconds)"`
	WeightLbs *float64 `json:"weight_lbs,omitempty" jsonschema:"Weight in pounds"`
	RestSec   *int     `json:"rest_sec,omitempty" jsonschema:"Rest between sets in seconds"`
	Notes     *string  `json:"notes,omitempty" jsonschema:"Exercise notes"`
}

type addWorkoutInput struct {
	Type          string          `json:"type" jsonschema:"Workout type (running, cycling, functional)"`
	Date          string          `json:"date" jsonschema:"Workout date (YYYY-MM-DD)"`
	DurationMins  *int            `json:"duration_mins,omitempty" jsonschema:"Duration in minutes"`
	DistanceMiles *float64        `json:"distance_miles,omitempty" jsonschema:"Distance in miles"`
	AvgHeartRate  *int            `json:"avg_heart_rate,omitempty" jsonschema:"Average heart rate in BPM"`
	RPE           *int            `json:"rpe,omitempty" jsonschema:"Rate of perceived exertion (1-10)"`
	Notes         *string         `json:"notes,omitempty" jsonschema:"Workout notes"`
	Exercises     []exerciseInput `json:"exercises,omitempty" jsonschema:"Exercises for functional workouts"`
}

type updateWorkoutInput struct {
	ID            int64            `json:"id" jsonschema:"Workout id"`
	Type          *string          `json:"type,omitempty" jsonschema:"Workout type (running, cycling, functional)"`
	Date          *string          `json:"date,omitempty" jsonschema:"Workout date (YYYY-MM-DD)"`
	DurationMins  *int             `json:"duration_mins,omitempty" jsonschema:"Duration in minutes"`
	DistanceMiles *float64         `json:"distance_miles,omitempty" jsonschema:"Distance in miles"`
	AvgHeartRate  *int             `json:"avg_heart_rate,omitempty" jsonschema:"Average heart rate in BPM"`
	RPE           *int             `json:"rpe,omitempty" jsonschema:"Rate of perceived exertion (1-10)"`
	Notes         *string          `json:"notes,omitempty" jsonschema:"Workout notes"`
	Exercises     *[]exerciseInput `json:"exercises,omitempty" jsonschema:"Replacement exercise list for functional workouts"`
}

type listWorkoutsInput struct {
	Type  string `json:"type,omitempty" jsonschema:"Filter by workout type (running, cycling, functional)"`
	Days  int    `json:"days,omitempty" jsonschema:"Show workouts from the last N days"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of workouts to return"`
}

func toExercises(inputs []exerciseInput) []models.Exercise {
	exercises := make([]models.Exercise, 0, len(inputs))
	for _, in := range inputs {
		exercises = append(exercises, models.Exercise{
			Name:      in.Name,
			Sets:      in.Sets,
			Reps:      in.Reps,
			WeightLbs: in.WeightLbs,
			RestSec:   in.RestSec,
			Notes:     in.Notes,
		})
	}
	return exercises
}

func (s *Server) handleAddWorkout(ctx context.Context, req *mcp.CallToolRequest, input addWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidWorkoutType(input.Type) {
		return nil, simpleOutput{}, fmt.Errorf("unknown workout type: %s", input.Type)
	}

	w := models.NewWorkout(models.WorkoutType(input.Type), input.Date)
	w.DurationMins = input.DurationMins
	w.DistanceMiles = input.DistanceMiles
	w.AvgHeartRate = input.AvgHeartRate
	w.RPE = input.RPE
	w.Notes = input.Notes
	if w.Type == models.WorkoutFunctional {
		w.Exercises = toExercises(input.Exercises)
	}

	if err := s.repo.CreateWorkout(w); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create workout: %w", err)
	}

	message := fmt.Sprintf("🏋️ Great workout! I've logged your %s session from %s", input.Type, input.Date)
	if input.DurationMins != nil {
		message += fmt.Sprintf(" (%d minutes)", *input.DurationMins)
	}
	if input.DistanceMiles != nil {
		message += fmt.Sprintf(" covering %g miles", *input.DistanceMiles)
	}
	if input.AvgHeartRate != nil {
		message += fmt.Sprintf(" with avg HR %d BPM", *input.AvgHeartRate)
	}
	if input.RPE != nil {
		message += fmt.Sprintf(" at RPE %d/10", *input.RPE)
	}

	if w.Type == models.WorkoutFunctional && len(w.Exercises) > 0 {
		message += "\n\nExercises completed:"
		for i, ex := range w.Exercises {
			message += fmt.Sprintf("\n%d. %s", i+1, ex.Name)
			if ex.Sets != nil && ex.Reps != nil {
				message += fmt.Sprintf(" - %d sets of %s", *ex.Sets, *ex.Reps)
			}
			if ex.WeightLbs != nil {
				message += fmt.Sprintf(" @ %g lbs", *ex.WeightLbs)
			}
		}
	}

	message += fmt.Sprintf("\n\nWorkout ID: #%d", w.ID)

	return nil, simpleOutput{Message: message}, nil
}

func (s *Server) handleUpdateWorkout(ctx context.Context, req *mcp.CallToolRequest, input updateWorkoutInput) (*mcp.CallToolResult, simpleOutput, error) {
	update := storage.WorkoutUpdate{
		Date:          input.Date,
		DurationMins:  input.DurationMins,
		DistanceMiles: input.DistanceMiles,
		AvgHeartRate:  input.AvgHeartRate,
		RPE:           input.RPE,
		Notes:         input.Notes,
	}
	if input.Type != nil {
		if !models.IsValidWorkoutType(*input.Type) {
			return nil, simpleOutput{}, fmt.Errorf("unknown workout type: %s", *input.Type)
		}
		wt := models.WorkoutType(*input.Type)
		update.Type = &wt
	}
	if input.Exercises != nil {
		exercises := toExercises(*input.Exercises)
		update.Exercises = &exercises
	}

	err := s.repo.UpdateWorkout(input.ID, update)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("❌ Workout #%d not found.", input.ID)}, nil
	case errors.Is(err, storage.ErrNoFields):
		return nil, simpleOutput{Message: noUpdatesMessage}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to update workout: %w", err)
	}

	updated, err := s.repo.GetWorkout(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load updated workout: %w", err)
	}

	message := fmt.Sprintf("✅ Updated workout #%d (%s) from %s", updated.ID, strings.ToUpper(string(updated.Type)), updated.Date)

	var metrics []string
	if updated.DurationMins != nil {
		metrics = append(metrics, fmt.Sprintf("%d min", *updated.DurationMins))
	}
	if updated.DistanceMiles != nil {
		metrics = append(metrics, fmt.Sprintf("%g miles", *updated.DistanceMiles))
	}
	if updated.AvgHeartRate != nil {
		metrics = append(metrics, fmt.Sprintf("%d BPM", *updated.AvgHeartRate))
	}
	if updated.RPE != nil {
		metrics = append(metrics, fmt.Sprintf("RPE %d/10", *updated.RPE))
	}
	if len(metrics) > 0 {
		message += "\n📊 Metrics: " + strings.Join(metrics, ", ")
	}
	if updated.Notes != nil {
		message += "\n📝 Notes: " + *updated.Notes
	}

	if updated.Type == models.WorkoutFunctional && input.Exercises != nil {
		message += fmt.Sprintf("\n💪 Updated exercises (%d total)", len(updated.Exercises))
		for i, ex := range updated.Exercises {
			message += fmt.Sprintf("\n  %d. %s", i+1, ex.Name)
			if ex.Sets != nil && ex.Reps != nil {
				message += fmt.Sprintf(" - %dx%s", *ex.Sets, *ex.Reps)
			}
			if ex.WeightLbs != nil {
				message += fmt.Sprintf(" @ %g lbs", *ex.WeightLbs)
			}
		}
	}

	return nil, simpleOutput{Message: message}, nil
}

func (s *Server) handleDeleteWorkout(ctx context.Context, req *mcp.CallToolRequest, input deleteByIDInput) (*mcp.CallToolResult, simpleOutput, error) {
	w, err := s.repo.GetWorkout(input.ID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil, simpleOutput{Message: fmt.Sprintf("❌ Workout #%d not found.", input.ID)}, nil
	case err != nil:
		return nil, simpleOutput{}, fmt.Errorf("failed to load workout: %w", err)
	}

	if err := s.repo.DeleteWorkout(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete workout: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("🗑️ Deleted workout #%d (%s) from %s. All associated exercises have also been removed.", w.ID, strings.ToUpper(string(w.Type)), w.Date),
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, simpleOutput, error) {
	filter := storage.WorkoutFilter{Limit: input.Limit}
	if input.Type != "" {
		if !models.IsValidWorkoutType(input.Type) {
			return nil, simpleOutput{}, fmt.Errorf("unknown workout type: %s", input.Type)
		}
		wt := models.WorkoutType(input.Type)
		filter.Type = &wt
	}
	if input.Days > 0 {
		filter.SinceDate = time.Now().UTC().AddDate(0, 0, -input.Days).Format("2006-01-02")
	}

	workouts, err := s.repo.ListWorkouts(filter)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list workouts: %w", err)
	}

	if len(workouts) == 0 {
		filterDesc := ""
		if input.Type != "" {
			filterDesc = " " + input.Type
		}
		daysDesc := ""
		if input.Days > 0 {
			daysDesc = fmt.Sprintf(" from the last %d days", input.Days)
		}
		return nil, simpleOutput{Message: fmt.Sprintf("No%s workouts found%s.", filterDesc, daysDesc)}, nil
	}

	var functionalIDs []int64
	for _, w := range workouts {
		if w.Type == models.WorkoutFunctional {
			functionalIDs = append(functionalIDs, w.ID)
		}
	}
	exercisesByWorkout, err := s.repo.ExercisesForWorkouts(functionalIDs)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}

	blocks := make([]string, 0, len(workouts))
	for _, w := range workouts {
		block := fmt.Sprintf("#%d: %s - %s", w.ID, strings.ToUpper(string(w.Type)), w.Date)

		var metrics []string
		if w.DurationMins != nil {
			metrics = append(metrics, fmt.Sprintf("%d min", *w.DurationMins))
		}
		if w.DistanceMiles != nil {
			metrics = append(metrics, fmt.Sprintf("%g miles", *w.DistanceMiles))
		}
		if w.AvgHeartRate != nil {
			metrics = append(metrics, fmt.Sprintf("%d BPM avg", *w.AvgHeartRate))
		}
		if w.RPE != nil {
			metrics = append(metrics, fmt.Sprintf("RPE %d/10", *w.RPE))
		}
		if len(metrics) > 0 {
			block += fmt.Sprintf(" (%s)", strings.Join(metrics, ", "))
		}
		if w.Notes != nil {
			block += "\n   Notes: " + *w.Notes
		}

		if exercises := exercisesByWorkout[w.ID]; w.Type == models.WorkoutFunctional && len(exercises) > 0 {
			block += "\n   Exercises:"
			for i, ex := range exercises {
				block += fmt.Sprintf("\n     %d. %s", i+1, ex.Name)
				var details []string
				if ex.Sets != nil && ex.Reps != nil {
					details = append(details, fmt.Sprintf("%dx%s", *ex.Sets, *ex.Reps))
				}
				if ex.WeightLbs != nil {
					details = append(details, fmt.Sprintf("%g lbs", *ex.WeightLbs))
				}
				if ex.RestSec != nil {
					details = append(details, fmt.Sprintf("%ds rest", *ex.RestSec))
				}
				if len(details) > 0 {
					block += " - " + strings.Join(details, ", ")
				}
				if ex.Notes != nil {
					block += fmt.Sprintf(" (%s)", *ex.Notes)
				}
			}
		}

		blocks = append(blocks, block)
	}

	var headerParts []string
	if input.Type != "" {
		headerParts = append(headerParts, input.Type)
	}
	headerParts = append(headerParts, "workouts")
	if input.Days > 0 {
		headerParts = append(headerParts, fmt.Sprintf("(last %d days)", input.Days))
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("📊 Your %s:\n\n%s", strings.Join(headerParts, " "), strings.Join(blocks, "\n\n")),
	}, nil
}
