package domain

import "time"

const (
	ProfileAdministrator = "Administrator"
	ProfileStandardUser  = "StandardUser"
)

// ValidProfile reports whether s is one of the two known profiles.
func ValidProfile(s string) bool {
	return s == ProfileAdministrator || s == ProfileStandardUser
}

// User models an account in the admin application. Password is stored and
// compared as plaintext; a known weakness of this system's trust model.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Login     string    `json:"login"`
	Profile   string    `json:"profile"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Actor returns the authorization identity of this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Name: u.Name, Profile: u.Profile}
}
