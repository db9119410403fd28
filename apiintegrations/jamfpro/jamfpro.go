// apiintegrations/jamfpro/jamfpro.go
/* Package jamfpro binds the HTTP client to a Jamf Pro tenant: URL building, request encoding and
headers, and bearer tokens obtained through OAuth client credentials or basic authentication. */
package jamfpro

import (
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// OAuthTokenEndpoint issues tokens for API client credentials.
	OAuthTokenEndpoint = "/api/oauth/token"
	// BearerTokenEndpoint exchanges a username and password for a token.
	BearerTokenEndpoint = "/api/v1/auth/token"
	// TokenInvalidateEndpoint revokes the current token.
	TokenInvalidateEndpoint = "/api/v1/auth/invalidate-token"

	AuthMethodOAuth2 = "oauth2"
	AuthMethodBasic  = "basic"
)

// Integration implements the client's APIIntegration for one Jamf Pro tenant.
type Integration struct {
	BaseDomain           string
	AuthMethodDescriptor string
	Sugar                *zap.SugaredLogger

	clientID          string
	clientSecret      string
	username          string
	password          string
	bufferPeriod      time.Duration
	hideSensitiveData bool
	http              *http.Client

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time
}

// BuildWithOAuth returns an integration authenticating with API client credentials.
func BuildWithOAuth(jamfBaseDomain string, sugar *zap.SugaredLogger, bufferPeriod time.Duration, clientID, clientSecret string, hideSensitiveData bool, client *http.Client) (*Integration, error) {
	if clientID == "" || clientSecret == "" {
		return nil, errors.New("oauth2 requires a client id and client secret")
	}
	integration := newIntegration(jamfBaseDomain, AuthMethodOAuth2, sugar, bufferPeriod, hideSensitiveData, client)
	integration.clientID = clientID
	integration.clientSecret = clientSecret
	return integration, nil
}

// BuildWithBasicAuth returns an integration exchanging a username and password for bearer tokens.
func BuildWithBasicAuth(jamfBaseDomain string, sugar *zap.SugaredLogger, bufferPeriod time.Duration, username, password string, hideSensitiveData bool, client *http.Client) (*Integration, error) {
	if username == "" || password == "" {
		return nil, errors.New("basic auth requires a username and password")
	}
	integration := newIntegration(jamfBaseDomain, AuthMethodBasic, sugar, bufferPeriod, hideSensitiveData, client)
	integration.username = username
	integration.password = password
	return integration, nil
}

func newIntegration(baseDomain, method string, sugar *zap.SugaredLogger, bufferPeriod time.Duration, hide bool, client *http.Client) *Integration {
	if sugar == nil {
		sugar = zap.NewNop().Sugar()
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Integration{
		BaseDomain:           strings.TrimSuffix(baseDomain, "/"),
		AuthMethodDescriptor: method,
		Sugar:                sugar,
		bufferPeriod:         bufferPeriod,
		hideSensitiveData:    hide,
		http:                 client,
	}
}

// Domain returns the tenant's base URL, e.g. https://example.jamfcloud.com.
func (j *Integration) Domain() string {
	return j.BaseDomain
}

// GetAuthMethodDescriptor returns "oauth2" or "basic".
func (j *Integration) GetAuthMethodDescriptor() string {
	return j.AuthMethodDescriptor
}

// SetHTTPClient replaces the client used for token requests.
func (j *Integration) SetHTTPClient(client *http.Client) {
	j.http = client
}
