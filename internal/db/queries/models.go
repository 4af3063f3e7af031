package queries

import (
	"database/sql"
	"time"
)

type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string
	Address   string
	Status    string
	CreatedAt time.Time
}

type Contact struct {
	ID        int64
	ClientID  int64
	Name      string
	Email     string
	Phone     string
	Position  string
	Notes     string
	CreatedAt time.Time
}

type Activity struct {
	ID          int64
	ClientID    int64
	Type        string
	Subject     string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

type Task struct {
	ID          int64
	Title       string
	Description string
	DueDate     sql.NullTime
	Status      string
	Priority    string
	CreatedAt   time.Time
}
