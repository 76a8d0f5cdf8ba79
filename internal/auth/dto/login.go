package dto

// LoginInput arrives as OAuth2-style form fields, so username carries the
// email address.
type LoginInput struct {
	Email    string `form:"username"`
	Password string `form:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}
