// Package devicecode authenticates against the Microsoft identity
// platform using the OAuth2 device authorization grant. Tokens are
// cached in a JSON file so later runs can refresh silently instead of
// prompting the user again.
package devicecode

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"golang.org/x/oauth2"

	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/domain"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/core/ports/driven"
	"github.com/fr3asikx/OWUI-Ollama-Onenote-Import/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.TokenProvider = (*Provider)(nil)

// DefaultTenant is the multi-tenant authority.
const DefaultTenant = "common"

const authorityBase = "https://login.microsoftonline.com/"

// Config holds configuration for the device-code provider.
type Config struct {
	// ClientID is the Azure AD application (client) ID (required).
	ClientID string

	// TenantID is the Azure AD tenant, or "common" for multi-tenant
	// apps (the default).
	TenantID string

	// Scopes are the fully qualified permission scopes to request.
	Scopes []string

	// CachePath is the token cache file. Defaults to
	// ~/.onenote-import/token_cache.json.
	CachePath string

	// Out receives the user-facing sign-in instructions.
	// Defaults to os.Stderr.
	Out io.Writer
}

// Provider acquires Graph access tokens via the device-code flow.
// Acquisition order: cached access token, silent refresh, interactive
// device-code prompt. The cache is persisted only after a successful
// acquisition.
type Provider struct {
	oauth     oauth2.Config
	cachePath string
	out       io.Writer

	mu    sync.Mutex
	token *oauth2.Token
}

// NewProvider creates a device-code token provider, loading any cached
// token from a previous run.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("%w: client ID is required", domain.ErrInvalidInput)
	}
	if cfg.TenantID == "" {
		cfg.TenantID = DefaultTenant
	}
	if cfg.Out == nil {
		cfg.Out = os.Stderr
	}

	cachePath := cfg.CachePath
	if cachePath == "" {
		var err error
		cachePath, err = defaultCachePath()
		if err != nil {
			return nil, err
		}
	}

	token, err := loadCache(cachePath)
	if err != nil {
		return nil, fmt.Errorf("load token cache: %w", err)
	}

	authority := authorityBase + cfg.TenantID
	return &Provider{
		oauth: oauth2.Config{
			ClientID: cfg.ClientID,
			Scopes:   cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:       authority + "/oauth2/v2.0/authorize",
				TokenURL:      authority + "/oauth2/v2.0/token",
				DeviceAuthURL: authority + "/oauth2/v2.0/devicecode",
			},
		},
		cachePath: cachePath,
		out:       cfg.Out,
		token:     token,
	}, nil
}

// GetToken returns a valid Graph access token, refreshing or prompting
// the user as needed. The device-code prompt blocks until the user
// completes sign-in in a browser or the flow expires.
func (p *Provider) GetToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token.Valid() {
		return p.token.AccessToken, nil
	}

	// Silent acquisition first.
	if p.token != nil && p.token.RefreshToken != "" {
		token, err := p.oauth.TokenSource(ctx, p.token).Token()
		if err == nil {
			p.token = token
			p.persist()
			return token.AccessToken, nil
		}
		logger.Warn("silent token refresh failed: %v", err)
	}

	resp, err := p.oauth.DeviceAuth(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: start device flow: %w", domain.ErrAuthFailed, err)
	}

	fmt.Fprintf(p.out, "To sign in, use a web browser to open %s and enter the code %s to authenticate.\n",
		resp.VerificationURI, resp.UserCode)

	token, err := p.oauth.DeviceAccessToken(ctx, resp)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrAuthFailed, err)
	}

	p.token = token
	p.persist()
	return token.AccessToken, nil
}

// persist saves the cache, logging instead of failing: a broken cache
// only costs the user a re-prompt on the next run.
func (p *Provider) persist() {
	if err := saveCache(p.cachePath, p.token); err != nil {
		logger.Warn("persist token cache: %v", err)
	}
}
