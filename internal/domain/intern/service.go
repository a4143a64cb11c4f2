package intern

import "context"

// InternService defines business logic for roster management.
type InternService interface {
	// Create registers a new intern with active status.
	Create(ctx context.Context, req CreateInternRequest) (InternResponse, error)

	// Get retrieves an intern together with its attendance counters.
	Get(ctx context.Context, id int64) (InternDetailResponse, error)

	// List retrieves the whole roster.
	List(ctx context.Context) ([]InternResponse, error)

	// Delete removes an intern without attendance history.
	Delete(ctx context.Context, id int64) error
}
