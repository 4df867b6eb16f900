package datatable

// EmptyState is the placeholder block
// displayed instead of a table without rows.
type EmptyState struct {
	Message string
}

// ResolveEmptyState returns the EmptyState for a table without rows
// using message or DefaultEmptyMessage if message is empty.
func ResolveEmptyState(message string) *EmptyState {
	if message == "" {
		message = DefaultEmptyMessage
	}
	return &EmptyState{Message: message}
}

func (e *EmptyState) String() string { return e.Message }
