package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name  string
	Email string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-zero fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

// ListUsersOptions holds pagination for listing Users. Zero Limit means no limit.
type ListUsersOptions struct {
	Limit  int
	Offset int
}

// UpdateUserOptions holds the full new state of a User.
type UpdateUserOptions struct {
	ID    int64
	Name  string
	Email string
}
