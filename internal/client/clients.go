package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/yukimo/studytrack.git/internal/config"

	"go.uber.org/zap"
)

var (
	// ErrUnauthorized means the request failed 401 even after one
	// token refresh; the caller should send the user back to login.
	ErrUnauthorized = errors.New("unauthorized")
)

// TokenStore persists the auth token pair between runs.
type TokenStore interface {
	Tokens(ctx context.Context) (access, refresh string, err error)
	SetTokens(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

// API is the client for the study-tracker backend. All record and
// subject storage lives behind it; the client machine only keeps the
// timer slot and preferences locally.
type API struct {
	base   string
	http   *http.Client
	tokens TokenStore
	log    *zap.Logger

	// refreshMu serializes the 401-refresh so concurrent fetches for
	// one aggregation trigger a single refresh call.
	refreshMu sync.Mutex
}

func New(cfg config.APIConfig, tokens TokenStore, log *zap.Logger) *API {
	return &API{
		base:   strings.TrimRight(cfg.BaseURL, "/") + "/api",
		http:   &http.Client{Timeout: cfg.Timeout},
		tokens: tokens,
		log:    log,
	}
}

type apiError struct {
	Status int
	Body   string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api responded %d: %s", e.Status, e.Body)
}

// do sends one authenticated request and decodes the JSON response
// into out (which may be nil). On a 401 it refreshes the token pair
// once and retries; a second 401 surfaces as ErrUnauthorized.
func (a *API) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	err := a.send(ctx, method, path, query, body, out)

	var apiErr *apiError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
		if refreshErr := a.refresh(ctx); refreshErr != nil {
			return errors.Join(ErrUnauthorized, refreshErr)
		}
		err = a.send(ctx, method, path, query, body, out)
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return ErrUnauthorized
		}
	}

	return err
}

func (a *API) send(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := a.base + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	access, _, err := a.tokens.Tokens(ctx)
	if err != nil {
		return fmt.Errorf("failed read tokens: %w", err)
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &apiError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed decode response: %w", err)
	}
	return nil
}
