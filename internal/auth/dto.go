package auth

import "github.com/saulo-duarte/quiz-lambda/internal/user"

type LoginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// AuthResult never says whether the username or the password was wrong.
type AuthResult struct {
	User          *user.User `json:"user"`
	Authenticated bool       `json:"authenticated"`
}
