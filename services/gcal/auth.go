package gcal

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"github.com/martinbaumann-sky/BaumannCo/utils"
)

// Connector owns the OAuth2 client configuration and the stored credentials.
type Connector struct {
	OAuth *oauth2.Config
	Store TokenStore
}

func NewConnector(clientID, clientSecret, redirectURL string, store TokenStore) *Connector {
	return &Connector{
		OAuth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{calendar.CalendarScope},
		},
		Store: store,
	}
}

// Authorized reports whether credentials are stored.
func (c *Connector) Authorized() bool {
	tok, err := c.Store.Load()
	return err == nil && tok != nil
}

// AuthURL builds the consent URL for offline calendar access.
func (c *Connector) AuthURL() string {
	return c.OAuth.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
}

// Exchange trades the OAuth callback code for tokens and persists them.
func (c *Connector) Exchange(ctx context.Context, code string) error {
	tok, err := c.OAuth.Exchange(ctx, code)
	if err != nil {
		return &utils.UpstreamError{Op: "oauth code exchange", Err: err}
	}
	return c.Store.Save(tok)
}

// TokenSource returns a source backed by the stored credentials that
// persists every renewed token before it is used, so a refresh is never an
// invisible side effect. Returns ErrNotAuthorized when nothing is stored.
func (c *Connector) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	tok, err := c.Store.Load()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		return nil, utils.ErrNotAuthorized
	}
	return &persistingTokenSource{
		src:   c.OAuth.TokenSource(ctx, tok),
		store: c.Store,
		last:  tok,
	}, nil
}

type persistingTokenSource struct {
	src   oauth2.TokenSource
	store TokenStore
	mu    sync.Mutex
	last  *oauth2.Token
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != p.last.AccessToken {
		// Concurrent requests may race to persist a refreshed token;
		// the last writer wins and tokens are idempotent to overwrite.
		if err := p.store.Save(tok); err != nil {
			return nil, err
		}
		p.last = tok
	}
	return tok, nil
}
