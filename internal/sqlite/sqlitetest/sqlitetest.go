// Package sqlitetest builds Calendar.app-shaped databases for tests.
package sqlitetest

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Schema is the subset of Calendar.app's schema that is read.
var Schema = []string{
	`CREATE TABLE Calendar (
		ROWID INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT
	)`,
	`CREATE TABLE Location (
		ROWID INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT
	)`,
	`CREATE TABLE CalendarItem (
		ROWID INTEGER PRIMARY KEY AUTOINCREMENT,
		summary TEXT,
		location_id INTEGER,
		description TEXT,
		start_date TIMESTAMP,
		end_date TIMESTAMP,
		all_day INTEGER,
		calendar_id INTEGER
	)`,
	`CREATE TABLE Participant (
		ROWID INTEGER PRIMARY KEY AUTOINCREMENT,
		status INTEGER,
		owner_id INTEGER,
		identity_id INTEGER,
		email TEXT,
		phone_number TEXT
	)`,
}

// DB wraps a writable fixture database.
type DB struct {
	*sqlx.DB
}

// Create creates a new database at path with Schema applied.
func Create(path string) (*DB, error) {
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, err
	}
	for _, m := range Schema {
		if _, err := db.Exec(m); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlitetest: applying schema: %w", err)
		}
	}
	return &DB{db}, nil
}

func (db *DB) AddCalendar(title any) int64 {
	return db.insert(`INSERT INTO Calendar (title) VALUES (?)`, title)
}

func (db *DB) AddLocation(title any) int64 {
	return db.insert(`INSERT INTO Location (title) VALUES (?)`, title)
}

// Item is a CalendarItem row. Fields are untyped so tests can store values
// Calendar.app never would; nil becomes NULL.
type Item struct {
	CalendarID  any
	LocationID  any
	Start       any
	End         any
	Summary     any
	Description any
	AllDay      any
}

func (db *DB) AddItem(it Item) int64 {
	return db.insert(`
		INSERT INTO CalendarItem (calendar_id, location_id, start_date, end_date, summary, description, all_day)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, it.CalendarID, it.LocationID, it.Start, it.End, it.Summary, it.Description, it.AllDay)
}

type Participant struct {
	OwnerID     int64
	IdentityID  int64
	Email       any
	PhoneNumber any
	Status      any
}

func (db *DB) AddParticipant(p Participant) int64 {
	return db.insert(`
		INSERT INTO Participant (owner_id, identity_id, email, phone_number, status)
		VALUES (?, ?, ?, ?, ?)
	`, p.OwnerID, p.IdentityID, p.Email, p.PhoneNumber, p.Status)
}

func (db *DB) insert(query string, args ...any) int64 {
	res := db.MustExec(query, args...)
	id, err := res.LastInsertId()
	if err != nil {
		panic(fmt.Sprintf("sqlitetest: last insert id: %v", err))
	}
	return id
}

