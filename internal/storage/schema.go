// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines goals, todos, notes, workouts, and exercises tables.
package storage

// initSchema creates any missing tables and applies the one additive
// column migration. Safe to run on every open.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS goals (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		text       TEXT    NOT NULL,
		due_date   TEXT,
		metadata   TEXT,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT    NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS todos (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		text       TEXT    NOT NULL,
		due_date   TEXT,
		tags       TEXT,
		completed  INTEGER NOT NULL DEFAULT 0,
		created_at TEXT    NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS notes (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		text       TEXT    NOT NULL,
		tags       TEXT,
		created_at TEXT    NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS workouts (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		type            TEXT    NOT NULL,
		date            TEXT    NOT NULL,
		duration_mins   INTEGER,
		distance_miles  REAL,
		avg_heart_rate  INTEGER,
		rpe             INTEGER,
		notes           TEXT,
		created_at      TEXT    NOT NULL DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS exercises (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		workout_id  INTEGER NOT NULL,
		name        TEXT    NOT NULL,
		sets        INTEGER,
		reps        TEXT,
		weight_lbs  REAL,
		rest_sec    INTEGER,
		notes       TEXT,
		FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_goals_completed ON goals(completed);
	CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);
	CREATE INDEX IF NOT EXISTS idx_notes_created ON notes(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_workouts_date ON workouts(date DESC);
	CREATE INDEX IF NOT EXISTS idx_exercises_workout ON exercises(workout_id);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return err
	}

	return d.migrateGoalsCompleted()
}

// migrateGoalsCompleted adds the completed column for databases created
// before it was introduced.
func (d *DB) migrateGoalsCompleted() error {
	rows, err := d.db.Query("PRAGMA table_info(goals)")
	if err != nil {
		return err
	}
	defer rows.Close()

	hasCompleted := false
	for rows.Next() {
		var cid int
		var name, colType string
		var notNull, pk int
		var dflt any
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return err
		}
		if name == "completed" {
			hasCompleted = true
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if !hasCompleted {
		_, err = d.db.Exec("ALTER TABLE goals ADD COLUMN completed INTEGER NOT NULL DEFAULT 0")
	}
	return err
}
