// ABOUTME: Workout and Exercise operations for SQLite storage.
// ABOUTME: Workout plus exercises writes run in one transaction; deletes cascade.
package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/harperreed/coach/internal/models"
)

// CreateWorkout inserts a workout and, for functional workouts, its
// exercises in a single transaction. Either all rows land or none do.
func (d *DB) CreateWorkout(w *models.Workout) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(
		"INSERT INTO workouts (type, date, duration_mins, distance_miles, avg_heart_rate, rpe, notes, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		string(w.Type), w.Date, w.DurationMins, w.DistanceMiles, w.AvgHeartRate, w.RPE, w.Notes, formatTime(w.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}

	w.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create workout: %w", err)
	}

	if w.Type == models.WorkoutFunctional {
		if err := insertExercises(tx, w.ID, w.Exercises); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("create workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a workout by id, with exercises for functional
// workouts.
func (d *DB) GetWorkout(id int64) (*models.Workout, error) {
	workouts, err := d.queryWorkouts(`
		SELECT id, type, date, duration_mins, distance_miles, avg_heart_rate, rpe, notes, created_at
		FROM workouts
		WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(workouts) == 0 {
		return nil, ErrNotFound
	}

	w := workouts[0]
	if w.Type == models.WorkoutFunctional {
		byWorkout, err := d.ExercisesForWorkouts([]int64{w.ID})
		if err != nil {
			return nil, err
		}
		w.Exercises = byWorkout[w.ID]
	}
	return w, nil
}

// UpdateWorkout applies a partial field update to a workout. A non-nil
// Exercises replaces the full exercise set in the same transaction.
func (d *DB) UpdateWorkout(id int64, u WorkoutUpdate) error {
	var sets []string
	var args []any

	if u.Type != nil {
		sets = append(sets, "type = ?")
		args = append(args, string(*u.Type))
	}
	if u.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *u.Date)
	}
	if u.DurationMins != nil {
		sets = append(sets, "duration_mins = ?")
		args = append(args, *u.DurationMins)
	}
	if u.DistanceMiles != nil {
		sets = append(sets, "distance_miles = ?")
		args = append(args, *u.DistanceMiles)
	}
	if u.AvgHeartRate != nil {
		sets = append(sets, "avg_heart_rate = ?")
		args = append(args, *u.AvgHeartRate)
	}
	if u.RPE != nil {
		sets = append(sets, "rpe = ?")
		args = append(args, *u.RPE)
	}
	if u.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *u.Notes)
	}

	if len(sets) == 0 && u.Exercises == nil {
		return ErrNoFields
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if len(sets) > 0 {
		query := "UPDATE workouts SET " + strings.Join(sets, ", ") + " WHERE id = ?"
		args = append(args, id)

		res, err := tx.Exec(query, args...)
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		if affected == 0 {
			return ErrNotFound
		}
	} else {
		// Exercises-only update still needs the workout to exist.
		var exists int
		if err := tx.QueryRow("SELECT COUNT(*) FROM workouts WHERE id = ?", id).Scan(&exists); err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		if exists == 0 {
			return ErrNotFound
		}
	}

	if u.Exercises != nil {
		if _, err := tx.Exec("DELETE FROM exercises WHERE workout_id = ?", id); err != nil {
			return fmt.Errorf("replace exercises: %w", err)
		}
		if err := insertExercises(tx, id, *u.Exercises); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("update workout: %w", err)
	}
	return nil
}

// DeleteWorkout removes a workout by id. Exercises cascade via the
// foreign key.
func (d *DB) DeleteWorkout(id int64) error {
	return d.execDelete("workouts", id)
}

// ListWorkouts retrieves workouts matching the filter, ordered by
// occurrence date then log time, newest first.
func (d *DB) ListWorkouts(f WorkoutFilter) ([]*models.Workout, error) {
	query := `
		SELECT id, type, date, duration_mins, distance_miles, avg_heart_rate, rpe, notes, created_at
		FROM workouts`
	var conditions []string
	var args []any

	if f.Type != nil {
		conditions = append(conditions, "type = ?")
		args = append(args, string(*f.Type))
	}
	if f.SinceDate != "" {
		conditions = append(conditions, "date >= ?")
		args = append(args, f.SinceDate)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	return d.queryWorkouts(query, args...)
}

// WorkoutsOnDate retrieves workouts whose occurrence date equals the given
// day, newest logged first.
func (d *DB) WorkoutsOnDate(date string) ([]*models.Workout, error) {
	return d.queryWorkouts(`
		SELECT id, type, date, duration_mins, distance_miles, avg_heart_rate, rpe, notes, created_at
		FROM workouts
		WHERE date = ?
		ORDER BY created_at DESC`, date)
}

// ExercisesForWorkouts retrieves exercises for the given workouts, grouped
// by workout id and ordered by insertion id.
func (d *DB) ExercisesForWorkouts(workoutIDs []int64) (map[int64][]models.Exercise, error) {
	byWorkout := make(map[int64][]models.Exercise)
	if len(workoutIDs) == 0 {
		return byWorkout, nil
	}

	placeholders := strings.Repeat("?,", len(workoutIDs))
	placeholders = placeholders[:len(placeholders)-1]
	args := make([]any, len(workoutIDs))
	for i, id := range workoutIDs {
		args[i] = id
	}

	rows, err := d.db.Query(`
		SELECT id, workout_id, name, sets, reps, weight_lbs, rest_sec, notes
		FROM exercises
		WHERE workout_id IN (`+placeholders+`)
		ORDER BY id ASC`, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var ex models.Exercise
		var sets, restSec sql.NullInt64
		var reps, notes sql.NullString
		var weight sql.NullFloat64

		if err := rows.Scan(&ex.ID, &ex.WorkoutID, &ex.Name, &sets, &reps, &weight, &restSec, &notes); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}

		if sets.Valid {
			v := int(sets.Int64)
			ex.Sets = &v
		}
		if reps.Valid {
			ex.Reps = &reps.String
		}
		if weight.Valid {
			ex.WeightLbs = &weight.Float64
		}
		if restSec.Valid {
			v := int(restSec.Int64)
			ex.RestSec = &v
		}
		if notes.Valid {
			ex.Notes = &notes.String
		}

		byWorkout[ex.WorkoutID] = append(byWorkout[ex.WorkoutID], ex)
	}
	return byWorkout, rows.Err()
}

func insertExercises(tx *sql.Tx, workoutID int64, exercises []models.Exercise) error {
	for i := range exercises {
		ex := &exercises[i]
		res, err := tx.Exec(
			"INSERT INTO exercises (workout_id, name, sets, reps, weight_lbs, rest_sec, notes) VALUES (?, ?, ?, ?, ?, ?, ?)",
			workoutID, ex.Name, ex.Sets, ex.Reps, ex.WeightLbs, ex.RestSec, ex.Notes,
		)
		if err != nil {
			return fmt.Errorf("insert exercise: %w", err)
		}
		ex.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert exercise: %w", err)
		}
		ex.WorkoutID = workoutID
	}
	return nil
}

func (d *DB) queryWorkouts(query string, args ...any) ([]*models.Workout, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	var workouts []*models.Workout
	for rows.Next() {
		var w models.Workout
		var typ, createdAt string
		var durationMins, heartRate, rpe sql.NullInt64
		var distance sql.NullFloat64
		var notes sql.NullString

		if err := rows.Scan(&w.ID, &typ, &w.Date, &durationMins, &distance, &heartRate, &rpe, &notes, &createdAt); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		w.Type = models.WorkoutType(typ)
		if durationMins.Valid {
			v := int(durationMins.Int64)
			w.DurationMins = &v
		}
		if distance.Valid {
			w.DistanceMiles = &distance.Float64
		}
		if heartRate.Valid {
			v := int(heartRate.Int64)
			w.AvgHeartRate = &v
		}
		if rpe.Valid {
			v := int(rpe.Int64)
			w.RPE = &v
		}
		if notes.Valid {
			w.Notes = &notes.String
		}
		w.CreatedAt = parseTime(createdAt)

		workouts = append(workouts, &w)
	}
	return workouts, rows.Err()
}
