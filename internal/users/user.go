package users

import (
	"errors"

	"github.com/2beens/fittrack/pkg"
)

const maxUsernameLength = 50

var ErrUsernameTaken = errors.New("username already taken")

// Profile is the user as shown to its owner. The password hash never leaves the repo.
type Profile struct {
	ID        int          `json:"id"`
	Username  string       `json:"username"`
	Fullname  string       `json:"fullname"`
	Email     string       `json:"email"`
	Weight    *float64     `json:"weight"`
	Height    *float64     `json:"height"`
	DOB       *pkg.Date    `json:"dob"`
	CreatedAt pkg.DateTime `json:"created_at"`
}

type NewUser struct {
	Username     string
	Fullname     string
	Email        string
	PasswordHash string
	Weight       *float64
	Height       *float64
	DOB          *pkg.Date
}

// ProfilePatch fields left unset keep their stored value.
// Weight, height and dob may be nulled.
type ProfilePatch struct {
	Fullname pkg.Optional[string]   `json:"fullname"`
	Email    pkg.Optional[string]   `json:"email"`
	Weight   pkg.Optional[float64]  `json:"weight"`
	Height   pkg.Optional[float64]  `json:"height"`
	DOB      pkg.Optional[pkg.Date] `json:"dob"`
}

type Registration struct {
	Username        string    `json:"username"`
	Fullname        string    `json:"fullname"`
	Email           string    `json:"email"`
	Password        string    `json:"password"`
	ConfirmPassword string    `json:"confirmpassword"`
	Weight          *float64  `json:"weight"`
	Height          *float64  `json:"height"`
	DOB             *pkg.Date `json:"dob"`
}

type PasswordReset struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmpassword"`
}

// ProfileUpdate is a profile patch that may also carry a new password.
type ProfileUpdate struct {
	ProfilePatch
	Password pkg.Optional[string] `json:"password"`
}
