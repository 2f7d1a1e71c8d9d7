package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Password string `json:"password"  validate:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role"      validate:"omitempty,oneof=customer professional admin"`
}

// loginRequest binds the OAuth2-style form body: the username field
// carries the email.
type loginRequest struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type profileUpdateRequest struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}
