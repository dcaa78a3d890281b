package models

// Column describes one typed column of a sandbox table.
type Column struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// TableSchema describes a sandbox table and its fixed sample rows. The
// seeder creates a real table from this definition, so user queries run
// against actual data.
type TableSchema struct {
	TableName  string           `json:"tableName"`
	Columns    []Column         `json:"columns"`
	SampleData []map[string]any `json:"sampleData"`
}

// Assignment is a single SQL challenge. Assignments are immutable after
// seeding: create-once, read-many.
type Assignment struct {
	ID           string        `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Difficulty   string        `json:"difficulty" db:"difficulty"`
	Description  string        `json:"description" db:"description"`
	Requirements []string      `json:"requirements" db:"requirements"`
	InitialQuery string        `json:"initialQuery" db:"initial_query"`
	Schemas      []TableSchema `json:"schemas" db:"schemas"`
}

// DifficultyRank maps a difficulty label to its sort ordinal. Unrecognized
// labels sort last.
func DifficultyRank(difficulty string) int {
	switch difficulty {
	case "Beginner":
		return 1
	case "Intermediate":
		return 2
	case "Advanced":
		return 3
	default:
		return 4
	}
}

type User struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	Role         string `json:"role" db:"role"`
	PasswordHash string `json:"-" db:"password_hash"`
	Created      int64  `json:"created" db:"created"`
}

// Attempt is one persisted query execution tied to a user and assignment.
// Rows are written only on the success path, so IsSuccess is always true
// when recorded. The log is append-only.
type Attempt struct {
	ID           int64  `json:"id" db:"id"`
	UserEmail    string `json:"user_email" db:"user_email"`
	AssignmentID string `json:"assignment_id" db:"assignment_id"`
	Query        string `json:"query" db:"query"`
	IsSuccess    bool   `json:"is_success" db:"is_success"`
	ExecutedAt   int64  `json:"executed_at" db:"executed_at"`
}

// DayActivity is the per-day attempt count used for the profile heatmap.
type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// UserStats is derived on read from the attempt log; it is never persisted.
type UserStats struct {
	SolvedCount int           `json:"solvedCount"`
	XP          int           `json:"xp"`
	Rank        string        `json:"rank"`
	Streak      int           `json:"streak"`
	History     []DayActivity `json:"history"`
	Progress    int           `json:"progress"`
}
