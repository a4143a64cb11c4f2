package attendance

import "time"

// Record is one attendance row: at most one exists per (intern, date). The
// pair is guarded by a database-level unique constraint; the insert is the
// atomic arbiter, never an application-side existence check.
type Record struct {
	ID              int64
	InternID        int64
	Tanggal         time.Time // calendar date in the configured local zone
	Shift           string
	JamMasuk        *string // HH:MM:SS, nil until check-in
	JamKeluar       *string // HH:MM:SS, nil until check-out
	TelatMenit      int
	PulangAwalMenit int
	Status          Status
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined for admin views
	InternName *string
}

type Status string

const (
	StatusHadir Status = "hadir"
	StatusIzin  Status = "izin"
	StatusAlpa  Status = "alpa"
	StatusLibur Status = "libur"
)

// SweepShift is the placeholder shift value written by the absence sweeper,
// which has no real time window to reference.
const SweepShift = "-"
