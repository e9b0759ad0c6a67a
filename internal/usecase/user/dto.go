package user

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string `validate:"required,min=2,max=100"`
	Age   int    `validate:"min=1,max=150"`
	Email string `validate:"required,email"`
}

// UpdateUserRequest represents the request payload for updating an existing
// user. All fields are overwritten, so the same rules apply as on create.
type UpdateUserRequest struct {
	ID    int64
	Name  string `validate:"required,min=2,max=100"`
	Age   int    `validate:"min=1,max=150"`
	Email string `validate:"required,email"`
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID int64
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID int64
}

// ListUsersRequest represents the request payload for listing users.
type ListUsersRequest struct {
	Page     int64
	PageSize int64
}

// ListUsersResponse represents the response payload for user listing.
type ListUsersResponse struct {
	Users      []User
	Pagination *Pagination
}

// Pagination represents pagination information for list responses.
type Pagination struct {
	TotalUsers int64
	Page       int64
	PageSize   int64
	TotalPages int64
}

// User represents a user DTO (Data Transfer Object) for API responses.
type User struct {
	ID    int64
	Name  string
	Age   int
	Email string
}
