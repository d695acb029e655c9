package request

// AuthRequest is the shared body for registration and login.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
