package intern

import "time"

type Intern struct {
	ID        int64
	Name      string
	School    string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Status string

const (
	StatusActive   Status = "aktif"
	StatusInactive Status = "nonaktif"
)
