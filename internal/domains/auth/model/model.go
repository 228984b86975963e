package model

const (
	EntityName = "user"

	// LoginUserID is the fixed id handed to every login, matching the demo frontend.
	LoginUserID = "1"
)

type User struct {
	ID    string
	Name  string
	Email string
}
