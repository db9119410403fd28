// apiintegrations/jamfpro/auth.go
package jamfpro

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deploymenttheory/go-jamfpro-oapi/headers"
	"github.com/deploymenttheory/go-jamfpro-oapi/response"
)

// OAuthResponse is the body returned by the OAuth token endpoint.
type OAuthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope,omitempty"`
	Error       string `json:"error,omitempty"`
}

// TokenResponse is the body returned by the basic auth token endpoint.
type TokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// Token returns a bearer token valid for at least the buffer period, requesting a new one
// when needed.
func (j *Integration) Token(ctx context.Context) (string, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.token != "" && time.Until(j.tokenExpiry) > j.bufferPeriod {
		return j.token, nil
	}

	j.Sugar.Debugw("Token missing or close to expiry, requesting a new one", "auth_method", j.AuthMethodDescriptor, "expiry", j.tokenExpiry)

	var err error
	switch j.AuthMethodDescriptor {
	case AuthMethodOAuth2:
		err = j.oauthToken(ctx)
	case AuthMethodBasic:
		err = j.basicToken(ctx)
	default:
		err = fmt.Errorf("unsupported auth method %q", j.AuthMethodDescriptor)
	}
	if err != nil {
		j.Sugar.Errorw("Failed to obtain token", "auth_method", j.AuthMethodDescriptor, "error", err)
		return "", err
	}

	if time.Until(j.tokenExpiry) <= j.bufferPeriod {
		return "", fmt.Errorf("token lifetime %s is shorter than the refresh buffer %s", time.Until(j.tokenExpiry).Round(time.Second), j.bufferPeriod)
	}
	return j.token, nil
}

// InvalidateToken revokes the current token on the server and forgets it.
func (j *Integration) InvalidateToken(ctx context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.token == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.BaseDomain+TokenInvalidateEndpoint, nil)
	if err != nil {
		return err
	}
	headers.SetAuthorization(req, j.token)

	resp, err := j.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return response.HandleAPIErrorResponse(resp, j.Sugar)
	}

	j.token = ""
	j.tokenExpiry = time.Time{}
	j.Sugar.Infow("Token invalidated")
	return nil
}

func (j *Integration) oauthToken(ctx context.Context) error {
	data := url.Values{}
	data.Set("client_id", j.clientID)
	data.Set("client_secret", j.clientSecret)
	data.Set("grant_type", "client_credentials")

	j.Sugar.Debugw("Attempting to obtain OAuth token", "client_id", j.clientID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.BaseDomain+OAuthTokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := j.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response.HandleAPIErrorResponse(resp, j.Sugar)
	}

	oauthResp := &OAuthResponse{}
	if err := json.NewDecoder(resp.Body).Decode(oauthResp); err != nil {
		return fmt.Errorf("failed to decode OAuth response: %w", err)
	}
	if oauthResp.Error != "" {
		return fmt.Errorf("error obtaining OAuth token: %s", oauthResp.Error)
	}
	if oauthResp.AccessToken == "" {
		return fmt.Errorf("empty access token received")
	}

	expiresIn := time.Duration(oauthResp.ExpiresIn) * time.Second
	j.token = oauthResp.AccessToken
	j.tokenExpiry = time.Now().Add(expiresIn)

	j.Sugar.Infow("OAuth token obtained successfully",
		"access_token", headers.RedactSensitiveHeaderData(j.hideSensitiveData, "AccessToken", oauthResp.AccessToken),
		"expires_in", expiresIn,
		"expiration_time", j.tokenExpiry,
	)
	return nil
}

func (j *Integration) basicToken(ctx context.Context) error {
	j.Sugar.Debugw("Attempting to obtain token for user", "username", j.username)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.BaseDomain+BearerTokenEndpoint, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(j.username, j.password)

	resp, err := j.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response.HandleAPIErrorResponse(resp, j.Sugar)
	}

	tokenResp := &TokenResponse{}
	if err := json.NewDecoder(resp.Body).Decode(tokenResp); err != nil {
		return fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.Token == "" {
		return fmt.Errorf("empty token received")
	}

	j.token = tokenResp.Token
	j.tokenExpiry = tokenResp.Expires
	j.Sugar.Infow("Token obtained successfully", "expiry", j.tokenExpiry, "duration", time.Until(j.tokenExpiry))
	return nil
}
