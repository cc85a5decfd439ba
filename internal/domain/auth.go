package domain

type Provider string

const (
	ProviderDiscord Provider = "discord"
)

// ExternalIdentity is a user identity as reported by an OAuth provider
type ExternalIdentity struct {
	ID       string
	Username string
	Email    string
}

// AuthPayload is the claim set carried in issued session tokens
type AuthPayload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
