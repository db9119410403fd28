// proxy/proxy.go
package proxy

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Options describes an outbound proxy. Username and Password take precedence over AuthToken.
type Options struct {
	URL       string
	Username  string
	Password  string
	AuthToken string
}

// SetupProxy routes the client's requests through the proxy in opts. An empty URL leaves the
// client untouched.
func SetupProxy(httpClient *http.Client, opts Options, log *zap.SugaredLogger) error {
	if opts.URL == "" {
		return nil
	}

	proxyURL, err := url.Parse(opts.URL)
	if err != nil || proxyURL.Host == "" {
		log.Errorw("Failed to parse proxy URL", "proxy_url", opts.URL, "error", err)
		return fmt.Errorf("invalid proxy URL %q", opts.URL)
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = http.ProxyURL(proxyURL)

	switch {
	case opts.Username != "" && opts.Password != "":
		credentials := base64.StdEncoding.EncodeToString([]byte(opts.Username + ":" + opts.Password))
		transport.ProxyConnectHeader = http.Header{"Proxy-Authorization": []string{"Basic " + credentials}}
	case opts.AuthToken != "":
		transport.ProxyConnectHeader = http.Header{"Proxy-Authorization": []string{"Bearer " + opts.AuthToken}}
	}

	httpClient.Transport = transport
	log.Infow("Proxy configured", "proxy_url", proxyURL.Redacted())
	return nil
}
