package client

import (
	"context"
	"fmt"
	"net/http"
)

type tokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Login exchanges credentials for a token pair and persists it.
func (a *API) Login(ctx context.Context, username, password string) error {
	creds := map[string]string{
		"username": username,
		"password": password,
	}

	var pair tokenPair
	if err := a.send(ctx, http.MethodPost, "/auth/login", nil, creds, &pair); err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	return a.tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken)
}

// Logout revokes the refresh token server-side and clears the local
// pair either way.
func (a *API) Logout(ctx context.Context) error {
	_, refresh, err := a.tokens.Tokens(ctx)
	if err != nil {
		return err
	}

	if refresh != "" {
		body := map[string]string{"refreshToken": refresh}
		if err := a.send(ctx, http.MethodPost, "/auth/logout", nil, body, nil); err != nil {
			a.log.Warn("logout request failed, clearing local tokens anyway")
		}
	}

	return a.tokens.Clear(ctx)
}

// refresh trades the stored refresh token for a new pair. A mutex
// keeps concurrent 401s from racing multiple refresh calls; whoever
// waited re-reads the pair the winner stored.
func (a *API) refresh(ctx context.Context) error {
	a.refreshMu.Lock()
	defer a.refreshMu.Unlock()

	_, refresh, err := a.tokens.Tokens(ctx)
	if err != nil {
		return err
	}
	if refresh == "" {
		return ErrUnauthorized
	}

	body := map[string]string{"refreshToken": refresh}

	var pair tokenPair
	if err := a.send(ctx, http.MethodPost, "/auth/refresh", nil, body, &pair); err != nil {
		if clearErr := a.tokens.Clear(ctx); clearErr != nil {
			return clearErr
		}
		return fmt.Errorf("token refresh failed: %w", err)
	}

	return a.tokens.SetTokens(ctx, pair.AccessToken, pair.RefreshToken)
}
