package request_models

// SessionLoginRequest exchanges an identity provider token for a session.
type SessionLoginRequest struct {
	Token string `json:"token" binding:"required"`
}
