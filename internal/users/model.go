package users

import "time"

// User is the identity behind a JWT subject. ID is "<provider>:<sub>".
type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	FullName   string    `json:"fullName"`
	PictureURL string    `json:"pictureUrl"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Profile is the /me payload: the user plus dashboard stats.
type Profile struct {
	User
	ResumeCount int `json:"resumeCount"`
}
