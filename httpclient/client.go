// httpclient/client.go
/* Package httpclient is the transport beneath the collection resources. A Client sends requests to
one API integration, retries idempotent requests on transient failures and rate limits, caps
concurrent requests, and decodes responses into caller supplied values. */
package httpclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/deploymenttheory/go-jamfpro-oapi/concurrency"
	"github.com/deploymenttheory/go-jamfpro-oapi/cookiejar"
	"github.com/deploymenttheory/go-jamfpro-oapi/logger"
	"github.com/deploymenttheory/go-jamfpro-oapi/proxy"
	"github.com/deploymenttheory/go-jamfpro-oapi/redirecthandler"
	"go.uber.org/zap"
)

// APIIntegration binds the client to one API: where requests go, how bodies are encoded and
// how requests are authorized.
type APIIntegration interface {
	Domain() string
	GetAuthMethodDescriptor() string
	SetRequestHeaders(ctx context.Context, req *http.Request) error
	MarshalRequest(body any, method, endpoint string) ([]byte, error)
}

// httpClientSetter is implemented by integrations that make their own token requests.
type httpClientSetter interface {
	SetHTTPClient(client *http.Client)
}

// Client sends requests through an APIIntegration.
type Client struct {
	config    ClientConfig
	http      *http.Client
	redirects *redirecthandler.RedirectHandler

	Integration APIIntegration
	Sugar       *zap.SugaredLogger
	Concurrency *concurrency.ConcurrencyHandler
}

// BuildClient creates a new HTTP client with the provided configuration.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {
	if populateDefaultValues {
		SetDefaultValuesClientConfig(&config)
	}
	if err := validateClientConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := config.Logger
	if log == nil {
		var err error
		exportPath := ""
		if config.ExportLogs {
			exportPath = config.LogExportPath
		}
		log, err = logger.BuildLogger(logger.Options{
			Level:             logger.ParseLogLevelFromString(config.LogLevel),
			Encoding:          config.LogOutputFormat,
			ConsoleSeparator:  config.LogConsoleSeparator,
			ExportPath:        exportPath,
			HideSensitiveData: config.HideSensitiveData,
		})
		if err != nil {
			return nil, err
		}
	}

	log.Infow("Initializing new HTTP client", "domain", config.Integration.Domain(), "auth_method", config.Integration.GetAuthMethodDescriptor())

	httpClient := &http.Client{Timeout: config.CustomTimeout}

	proxyOpts := proxy.Options{URL: config.ProxyURL, Username: config.ProxyUsername, Password: config.ProxyPassword, AuthToken: config.ProxyAuthToken}
	if err := proxy.SetupProxy(httpClient, proxyOpts, log); err != nil {
		return nil, err
	}

	if err := cookiejar.SetupCookieJar(httpClient, config.CookieJarEnabled, config.Integration.Domain(), config.CustomCookies, log); err != nil {
		return nil, err
	}

	redirects, err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log)
	if err != nil {
		log.Errorw("Failed to set up redirect handler", "error", err)
		return nil, err
	}

	if setter, ok := config.Integration.(httpClientSetter); ok {
		setter.SetHTTPClient(httpClient)
	}

	client := &Client{
		config:      config,
		http:        httpClient,
		redirects:   redirects,
		Integration: config.Integration,
		Sugar:       log,
		Concurrency: concurrency.NewConcurrencyHandler(config.MaxConcurrentRequests, 0, log),
	}

	log.Debugw("New API client initialized",
		"auth_method", config.Integration.GetAuthMethodDescriptor(),
		"log_level", config.LogLevel,
		"log_encoding", config.LogOutputFormat,
		"hide_sensitive_data", config.HideSensitiveData,
		"cookie_jar_enabled", config.CookieJarEnabled,
		"max_retry_attempts", config.MaxRetryAttempts,
		"max_concurrent_requests", config.MaxConcurrentRequests,
		"follow_redirects", config.FollowRedirects,
		"max_redirects", config.MaxRedirects,
		"proxy_configured", config.ProxyURL != "",
		"total_retry_duration", config.TotalRetryDuration,
		"custom_timeout", config.CustomTimeout,
	)

	return client, nil
}

// Config returns a copy of the configuration the client was built with.
func (c *Client) Config() ClientConfig {
	return c.config
}
