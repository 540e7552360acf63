// ABOUTME: Workout and Exercise models for fitness tracking.
// ABOUTME: Functional workouts carry exercises; cardio carries distance.
package models

import "time"

// WorkoutType is the kind of training session.
type WorkoutType string

const (
	WorkoutRunning    WorkoutType = "running"
	WorkoutCycling    WorkoutType = "cycling"
	WorkoutFunctional WorkoutType = "functional"
)

// AllWorkoutTypes lists every valid workout type.
var AllWorkoutTypes = []WorkoutType{WorkoutRunning, WorkoutCycling, WorkoutFunctional}

// IsValidWorkoutType checks if a string is a valid workout type.
func IsValidWorkoutType(s string) bool {
	for _, wt := range AllWorkoutTypes {
		if string(wt) == s {
			return true
		}
	}
	return false
}

// Workout is a logged training session. Date is the calendar day the
// workout happened (may be backfilled); CreatedAt is when it was logged.
type Workout struct {
	ID            int64
	Type          WorkoutType
	Date          string // YYYY-MM-DD
	DurationMins  *int
	DistanceMiles *float64
	AvgHeartRate  *int
	RPE           *int // rate of perceived exertion, 1-10
	Notes         *string
	CreatedAt     time.Time
	Exercises     []Exercise // populated for functional workouts
}

// NewWorkout creates a Workout for the given type and occurrence date.
func NewWorkout(workoutType WorkoutType, date string) *Workout {
	return &Workout{
		Type:      workoutType,
		Date:      date,
		CreatedAt: time.Now(),
	}
}

// WithDuration sets the duration in minutes.
func (w *Workout) WithDuration(mins int) *Workout {
	w.DurationMins = &mins
	return w
}

// WithDistance sets the distance in miles.
func (w *Workout) WithDistance(miles float64) *Workout {
	w.DistanceMiles = &miles
	return w
}

// WithHeartRate sets the average heart rate in BPM.
func (w *Workout) WithHeartRate(bpm int) *Workout {
	w.AvgHeartRate = &bpm
	return w
}

// WithRPE sets the perceived exertion (1-10).
func (w *Workout) WithRPE(rpe int) *Workout {
	w.RPE = &rpe
	return w
}

// WithNotes sets free-form notes.
func (w *Workout) WithNotes(notes string) *Workout {
	w.Notes = &notes
	return w
}

// Exercise is a single movement within a functional workout. Reps is free
// text so "10,10,8" and "30 seconds" both work.
type Exercise struct {
	ID        int64
	WorkoutID int64
	Name      string
	Sets      *int
	Reps      *string
	WeightLbs *float64
	RestSec   *int
	Notes     *string
}
