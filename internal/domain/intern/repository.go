package intern

import "context"

// InternRepository defines data access methods for the intern roster.
type InternRepository interface {
	// Create inserts a new intern and returns it with its assigned ID.
	Create(ctx context.Context, in Intern) (Intern, error)

	// GetByID retrieves a single intern.
	GetByID(ctx context.Context, id int64) (Intern, error)

	// List retrieves all interns ordered by ID descending (newest first).
	List(ctx context.Context) ([]Intern, error)

	// Delete removes an intern. Deletion is refused while attendance history
	// references the intern (ErrHasAttendanceHistory).
	Delete(ctx context.Context, id int64) error
}
