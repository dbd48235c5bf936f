package models

// User is a dashboard login (MySQL). Domain records live in the document
// store; the auth subsystem predates it and stays relational.
type User struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
}
