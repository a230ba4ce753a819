package request_models

// LoginRequest is the OAuth2-style password form posted to /auth/token.
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
