package domain

// User represents a user reference attached to tasks and sessions.
type User struct {
	ID    string
	Name  string
	Email string
}

// IsValid checks if the user has valid data.
func (u User) IsValid() bool {
	return u.ID != ""
}

// String returns the user name for display purposes.
func (u User) String() string {
	if u.Name != "" {
		return u.Name
	}
	return u.ID
}
