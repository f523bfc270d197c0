package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS trainers (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER NOT NULL,
		gender TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		height REAL,
		weight REAL,
		trainer_id INTEGER REFERENCES trainers(id),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS upper_body_exercises (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		link TEXT NOT NULL UNIQUE
	);

	CREATE TABLE IF NOT EXISTS lower_body_exercises (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		link TEXT NOT NULL UNIQUE
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}

// Seed inserts the static trainer and exercise catalogs. Safe to run on
// every start; existing rows are left alone.
func Seed(db *sql.DB) error {
	const sqlStmt = `
	INSERT OR IGNORE INTO trainers (id, name, age, gender) VALUES
		(1, 'Rachel James', 29, 'Female'),
		(2, 'Steve Harvey', 41, 'Male'),
		(3, 'Self-Training', 0, 'None');

	INSERT OR IGNORE INTO upper_body_exercises (id, name, link) VALUES
		(1, 'Push Up', 'https://www.youtube.com/watch?v=IODxDxX7oi4'),
		(2, 'Bench Press', 'https://www.youtube.com/watch?v=rT7DgCr-3pg'),
		(3, 'Overhead Press', 'https://www.youtube.com/watch?v=2yjwXTZQDDI'),
		(4, 'Pull Up', 'https://www.youtube.com/watch?v=eGo4IYlbE5g'),
		(5, 'Bicep Curl', 'https://www.youtube.com/watch?v=ykJmrZ5v0Oo'),
		(6, 'Bent-Over Row', 'https://www.youtube.com/watch?v=9efgcAjQe7E');

	INSERT OR IGNORE INTO lower_body_exercises (id, name, link) VALUES
		(1, 'Squat', 'https://www.youtube.com/watch?v=ultWZbUMPL8'),
		(2, 'Deadlift', 'https://www.youtube.com/watch?v=op9kVnSso6Q'),
		(3, 'Lunge', 'https://www.youtube.com/watch?v=QOVaHwm-Q6U'),
		(4, 'Leg Press', 'https://www.youtube.com/watch?v=IZxyjW7MPJQ'),
		(5, 'Calf Raise', 'https://www.youtube.com/watch?v=gwLzBJYoWlI'),
		(6, 'Glute Bridge', 'https://www.youtube.com/watch?v=OUgsJ8-Vi0E');
	`
	_, err := db.Exec(sqlStmt)
	return err
}
