package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session holds the tokens issued by the hosted store's auth endpoint.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// refreshLeeway: refresh when the access token expires within this window.
const refreshLeeway = time.Minute

// Client keeps a store session alive: it persists tokens to disk and
// refreshes the access token before it expires. Configuration only;
// login itself is handled by the identity provider.
type Client struct {
	baseURL   string
	apiKey    string
	storePath string
	http      *http.Client

	mu      sync.Mutex
	current Session
}

func NewClient(baseURL, apiKey, storePath string) *Client {
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		storePath: storePath,
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// Load restores a persisted session from disk. A missing file is not an
// error: the client simply starts without a session.
func (c *Client) Load() error {
	data, err := os.ReadFile(c.storePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return json.Unmarshal(data, &c.current)
}

// Set installs a new session and persists it.
func (c *Client) Set(s Session) error {
	c.mu.Lock()
	c.current = s
	c.mu.Unlock()
	return c.persist(s)
}

func (c *Client) persist(s Session) error {
	if c.storePath == "" {
		return nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(c.storePath, data, 0600)
}

// Token returns a valid access token, refreshing it first when it is
// missing or about to expire.
func (c *Client) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()

	if current.AccessToken != "" && !expiresWithin(current.AccessToken, refreshLeeway) {
		return current.AccessToken, nil
	}

	if current.RefreshToken == "" {
		return "", errors.New("no session to refresh")
	}

	refreshed, err := c.refresh(ctx, current.RefreshToken)
	if err != nil {
		return "", err
	}

	if err := c.Set(refreshed); err != nil {
		return "", err
	}

	return refreshed.AccessToken, nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (Session, error) {
	body, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return Session{}, err
	}

	url := c.baseURL + "/auth/v1/token?grant_type=refresh_token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return Session{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Session{}, err
	}

	if resp.StatusCode != http.StatusOK {
		return Session{}, fmt.Errorf("token refresh failed: %s", string(raw))
	}

	var s Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return Session{}, err
	}
	if s.AccessToken == "" {
		return Session{}, errors.New("refresh response missing access token")
	}

	return s, nil
}

// expiresWithin reads the unverified exp claim. Verification belongs to
// the store; this side only needs to know when to refresh. Tokens that
// cannot be decoded are treated as expired.
func expiresWithin(token string, leeway time.Duration) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return true
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return time.Until(exp.Time) < leeway
}
