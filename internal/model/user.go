package model

import "time"

// User is an admin account that can manage the panchang dataset. The hashed
// password never leaves the db layer; responses use packets.ProfileResponse.
type User struct {
	ID             int       `db:"id"`
	Email          string    `db:"email"`
	HashedPassword string    `db:"hashed_password"`
	Name           *string   `db:"name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
