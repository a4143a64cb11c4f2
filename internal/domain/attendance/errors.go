package attendance

import "errors"

// Attendance domain errors
var (
	// Check-in / leave errors
	ErrAlreadyRecordedToday = errors.New("anda sudah presensi hari ini")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("anda belum melakukan check-in hari ini")
	ErrAlreadyCheckedOut = errors.New("anda sudah melakukan check-out")

	// General errors
	ErrRecordNotFound = errors.New("data presensi tidak ditemukan")
)
