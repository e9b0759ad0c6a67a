package user

// User represents a user entity in the system.
type User struct {
	ID    int64  `json:"id"`    // ID is the unique identifier for the user
	Name  string `json:"name"`  // Name is the full name of the user
	Age   int    `json:"age"`   // Age is the user's age in years
	Email string `json:"email"` // Email is the unique email address of the user
}
