package models

// Registered account
type User struct {
	ID           int         `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Profile      UserProfile `json:"profile"`
}

// Optional profile filled at signup
type UserProfile struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Gender string `json:"gender"`
}
