package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

const (
	twitchTokenURL   = "https://id.twitch.tv/oauth2/token"
	twitchStreamsURL = "https://api.twitch.tv/helix/streams"

	liveCacheSize = 256
	liveCacheTTL  = 60 * time.Second
)

// TwitchService answers live-status lookups against the Helix API using an
// app access token. The service is optional: constructed without
// credentials it reports every channel as offline without erroring, which
// matches how callers degrade.
type TwitchService struct {
	clientID     string
	clientSecret string
	httpClient   *http.Client
	cache        *lru.Cache

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

type cachedStatus struct {
	status    LiveStatus
	fetchedAt time.Time
}

func NewTwitchService(clientID, clientSecret string) *TwitchService {
	cache, _ := lru.New(liveCacheSize)
	return &TwitchService{
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{Timeout: 5 * time.Second},
		cache:        cache,
	}
}

// Enabled reports whether credentials were configured.
func (t *TwitchService) Enabled() bool {
	return t.clientID != "" && t.clientSecret != ""
}

// Status implements LiveChecker. Results are cached briefly so leaderboard
// polling does not hammer the Helix API.
func (t *TwitchService) Status(ctx context.Context, login string) (LiveStatus, error) {
	if !t.Enabled() {
		return LiveStatus{}, nil
	}

	login = strings.ToLower(login)
	if cached, ok := t.cache.Get(login); ok {
		entry := cached.(cachedStatus)
		if time.Since(entry.fetchedAt) < liveCacheTTL {
			return entry.status, nil
		}
	}

	status, err := t.fetchStatus(ctx, login)
	if err != nil {
		return LiveStatus{}, err
	}

	t.cache.Add(login, cachedStatus{status: status, fetchedAt: time.Now()})
	return status, nil
}

func (t *TwitchService) fetchStatus(ctx context.Context, login string) (LiveStatus, error) {
	token, err := t.token(ctx)
	if err != nil {
		return LiveStatus{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s?user_login=%s", twitchStreamsURL, url.QueryEscape(login)), nil)
	if err != nil {
		return LiveStatus{}, err
	}
	req.Header.Set("Client-Id", t.clientID)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return LiveStatus{}, fmt.Errorf("helix streams request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return LiveStatus{}, fmt.Errorf("helix streams request returned %d", resp.StatusCode)
	}

	var payload struct {
		Data []struct {
			Type        string `json:"type"`
			ViewerCount int    `json:"viewer_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return LiveStatus{}, fmt.Errorf("failed to decode helix response: %w", err)
	}

	// No stream objects means the channel is offline.
	if len(payload.Data) == 0 {
		return LiveStatus{}, nil
	}
	return LiveStatus{
		IsLive:      payload.Data[0].Type == "live",
		ViewerCount: payload.Data[0].ViewerCount,
	}, nil
}

// token returns a valid app access token, refreshing through the client
// credentials grant when the cached one is near expiry.
func (t *TwitchService) token(ctx context.Context) (string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.accessToken != "" && time.Until(t.tokenExpiry) > time.Minute {
		return t.accessToken, nil
	}

	form := url.Values{}
	form.Set("client_id", t.clientID)
	form.Set("client_secret", t.clientSecret)
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, twitchTokenURL,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token request returned %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	t.accessToken = payload.AccessToken
	t.tokenExpiry = time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)
	return t.accessToken, nil
}
