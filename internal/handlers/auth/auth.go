package auth

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"

	"gitlab.com/void-training.net/internal/config"
	"gitlab.com/void-training.net/internal/core/ports/primary"
	"gitlab.com/void-training.net/internal/core/services/auth"
	"gitlab.com/void-training.net/internal/domain"
	"gitlab.com/void-training.net/internal/handlers"
	"gitlab.com/void-training.net/internal/handlers/response"
)

var discordEndpoint = oauth2.Endpoint{
	AuthURL:  "https://discord.com/oauth2/authorize",
	TokenURL: "https://discord.com/api/oauth2/token",
}

const discordUserInfoURL = "https://discord.com/api/users/@me"

// DiscordUser decodes the Discord users/@me response
type DiscordUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Handler struct {
	providerHandler map[domain.Provider]auth.IAuthService
	oauthConfig     *oauth2.Config
	jwtProvider     primary.JWTService
	logger          primary.Logger
}

func NewHandler(cfg *config.DiscordConfig, jwtProvider primary.JWTService, logger primary.Logger) *Handler {
	return &Handler{
		providerHandler: make(map[domain.Provider]auth.IAuthService),
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.OAuthRedirectURL,
			Scopes:       []string{"identify", "email"},
			Endpoint:     discordEndpoint,
		},
		jwtProvider: jwtProvider,
		logger:      logger,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router, discordAuth auth.IAuthService) {
	h.providerHandler[domain.ProviderDiscord] = discordAuth
	router.HandleFunc("/auth/discord", h.DiscordLoginHandler).Methods("GET")
	router.HandleFunc("/auth/discord/callback", h.DiscordCallbackHandler).Methods("GET")

	mw := handlers.New()
	router.Handle("/auth/session", mw.JWTMiddleware(http.HandlerFunc(h.SessionHandler))).Methods("GET")
}

// DiscordLoginHandler redirects the user to Discord OAuth2 login
func (h *Handler) DiscordLoginHandler(w http.ResponseWriter, r *http.Request) {
	// TODO: issue a per-request state value and check it in the callback
	url := h.oauthConfig.AuthCodeURL("randomstate")
	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

// DiscordCallbackHandler handles the Discord OAuth2 callback
func (h *Handler) DiscordCallbackHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	code := r.URL.Query().Get("code")
	if code == "" {
		http.Error(w, "No code in URL", http.StatusBadRequest)
		return
	}

	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		h.logger.Error("Failed to exchange OAuth code", "error", err)
		http.Error(w, "Failed to get token", http.StatusInternalServerError)
		return
	}

	client := h.oauthConfig.Client(ctx, token)
	resp, err := client.Get(discordUserInfoURL)
	if err != nil {
		h.logger.Error("Failed to fetch Discord user info", "error", err)
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}
	defer resp.Body.Close()

	var discordUser DiscordUser
	if err := json.NewDecoder(resp.Body).Decode(&discordUser); err != nil {
		http.Error(w, "Failed to decode user info", http.StatusInternalServerError)
		return
	}

	tokenStr, err := h.providerHandler[domain.ProviderDiscord].Login(ctx, &domain.ExternalIdentity{
		ID:       discordUser.ID,
		Username: discordUser.Username,
		Email:    discordUser.Email,
	})
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    err.Error(),
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	response.WriteSuccess(w, domain.LoginResponse{Token: tokenStr})
}

// SessionHandler returns the claims of the presented session token
func (h *Handler) SessionHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := handlers.BearerToken(r)
	payload, err := h.jwtProvider.DecodeTokenPayload(r.Context(), tokenString)
	if err != nil {
		response.WriteError(w, response.ErrorMessage{
			Message:    "Invalid token",
			StatusCode: http.StatusUnauthorized,
		})
		return
	}

	response.WriteSuccess(w, payload)
}
