package localdb

import "context"

const (
	keyAccessToken  = "auth.access_token"
	keyRefreshToken = "auth.refresh_token"
)

// Tokens persists the auth token pair across runs.
type Tokens struct {
	store *Store
}

func NewTokens(store *Store) *Tokens {
	return &Tokens{store: store}
}

func (t *Tokens) Tokens(ctx context.Context) (access, refresh string, err error) {
	access, _, err = t.store.Get(ctx, keyAccessToken)
	if err != nil {
		return "", "", err
	}
	refresh, _, err = t.store.Get(ctx, keyRefreshToken)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (t *Tokens) SetTokens(ctx context.Context, access, refresh string) error {
	if err := t.store.Set(ctx, keyAccessToken, access); err != nil {
		return err
	}
	return t.store.Set(ctx, keyRefreshToken, refresh)
}

func (t *Tokens) Clear(ctx context.Context) error {
	return t.store.Delete(ctx, keyAccessToken, keyRefreshToken)
}
