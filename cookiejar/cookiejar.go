// cookiejar/cookiejar.go

/* Package cookiejar sets up the client's cookie jar. Jamf Cloud pins a session to one web app node
through load balancer cookies, so the jar can be seeded with those before the first request. */
package cookiejar

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"github.com/deploymenttheory/go-jamfpro-oapi/logger"
	"go.uber.org/zap"
	"golang.org/x/net/publicsuffix"
)

// SetupCookieJar gives client a public-suffix aware cookie jar when enabled and seeds it with
// customCookies for baseURL.
func SetupCookieJar(client *http.Client, enableCookieJar bool, baseURL string, customCookies map[string]string, log *zap.SugaredLogger) error {
	if !enableCookieJar {
		return nil
	}

	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Errorw("Failed to create cookie jar", "error", err)
		return fmt.Errorf("setupCookieJar failed: %w", err)
	}
	client.Jar = jar

	if len(customCookies) == 0 {
		return nil
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parsing cookie url %q: %w", baseURL, err)
	}
	cookies := make([]*http.Cookie, 0, len(customCookies))
	for name, value := range customCookies {
		cookies = append(cookies, &http.Cookie{Name: name, Value: value, Path: "/"})
	}
	jar.SetCookies(u, cookies)
	log.Debugw("Custom cookies set", "url", u.String(), "cookies", RedactSensitiveCookies(jar.Cookies(u)))
	return nil
}

// RedactSensitiveCookies returns copies of cookies with credential values replaced.
func RedactSensitiveCookies(cookies []*http.Cookie) []*http.Cookie {
	out := make([]*http.Cookie, len(cookies))
	for i, cookie := range cookies {
		c := *cookie
		if logger.IsSensitiveKey(c.Name) || c.Name == "SessionID" || c.Name == "JSESSIONID" {
			c.Value = "REDACTED"
		}
		out[i] = &c
	}
	return out
}

// CookiesFromHeader parses the Set-Cookie headers of a response.
func CookiesFromHeader(header http.Header) []*http.Cookie {
	resp := http.Response{Header: header}
	return resp.Cookies()
}
