package dto

// LoginReq represents the request body for the /api/users/login endpoint.
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResp is the success body of the signup and login endpoints.
type TokenResp struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

// ErrorResp is the error body shared by all endpoints.
type ErrorResp struct {
	Error string `json:"error"`
}
