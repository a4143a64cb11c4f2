package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
//
// Per (intern, date) the operations form a small state machine:
// no record -> hadir (CheckIn) -> completed (CheckOut), or
// no record -> izin (RequestLeave), or no record -> alpa (absence sweep).
type AttendanceService interface {
	// CheckIn records the start of an intern's day and computes lateness
	// against the chosen shift window.
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut completes today's open record and computes early-leave minutes.
	// The recorded check-out time is clamped to the shift end.
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// RequestLeave records an izin day. No times or penalty minutes apply.
	RequestLeave(ctx context.Context, req LeaveRequest) (RecordResponse, error)

	// Today retrieves the intern's record for today, or nil.
	Today(ctx context.Context, internID int64) (*RecordResponse, error)

	// History retrieves all records for an intern, newest first.
	History(ctx context.Context, internID int64) ([]RecordResponse, error)

	// List retrieves every record with intern names (admin view).
	List(ctx context.Context) ([]RecordResponse, error)
}
