// Package models holds the persisted record types. Every record except
// User carries the id of its owning user; repositories filter on it for
// each operation.
package models

// User is an account record. Created at registration, immutable afterwards.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"password_hash"`
}

// Transaction is a single income or expense movement. Category is a
// free-text label, not a reference to a Category record.
type Transaction struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Type        string `json:"type"`
	Amount      Amount `json:"amount"`
}

// Goal is a savings target.
type Goal struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Amount     Amount `json:"amount"`
	Saved      Amount `json:"saved"`
	TargetDate string `json:"target_date"`
}

// Bill is a payable with a due date.
type Bill struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	DueDate     string `json:"due_date"`
	Paid        bool   `json:"paid"`
}

// Category is a user-managed transaction label, unique per user by name.
type Category struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Name   string `json:"name"`
}
