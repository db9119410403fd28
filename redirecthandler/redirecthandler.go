// redirecthandler/redirecthandler.go
package redirecthandler

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/deploymenttheory/go-jamfpro-oapi/status"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// permanentRedirectTTL bounds how long a 301 or 308 target is reused without asking the server.
const permanentRedirectTTL = 30 * time.Minute

// RedirectHandler decides which redirects the client follows. Writes are never replayed against
// a redirect target, credentials are stripped when the host changes, and permanent redirects are
// remembered so later requests go straight to the new location.
type RedirectHandler struct {
	Logger             *zap.SugaredLogger
	MaxRedirects       int
	SensitiveHeaders   mapset.Set[string]
	PermanentRedirects *cache.Cache
}

// NewRedirectHandler creates a new instance of RedirectHandler.
func NewRedirectHandler(logger *zap.SugaredLogger, maxRedirects int) *RedirectHandler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &RedirectHandler{
		Logger:             logger,
		MaxRedirects:       maxRedirects,
		SensitiveHeaders:   mapset.NewSet(http.CanonicalHeaderKey("Authorization"), http.CanonicalHeaderKey("Cookie")),
		PermanentRedirects: cache.New(permanentRedirectTTL, 2*permanentRedirectTTL),
	}
}

// AddSensitiveHeader adds a header to strip on cross-host redirects.
func (r *RedirectHandler) AddSensitiveHeader(header string) {
	r.SensitiveHeaders.Add(http.CanonicalHeaderKey(header))
}

// WithRedirectHandling applies the redirect handling policy to an http.Client.
func (r *RedirectHandler) WithRedirectHandling(client *http.Client) {
	client.CheckRedirect = r.checkRedirect
}

// RewriteURL returns the cached permanent redirect target for u, or u itself.
func (r *RedirectHandler) RewriteURL(u *url.URL) *url.URL {
	target, ok := r.PermanentRedirects.Get(u.String())
	if !ok {
		return u
	}
	parsed, err := url.Parse(target.(string))
	if err != nil {
		r.Logger.Errorw("Failed to parse cached redirect", "url", target, "error", err)
		r.PermanentRedirects.Delete(u.String())
		return u
	}
	r.Logger.Debugw("Using cached permanent redirect", "original_url", u.String(), "redirect_url", parsed.String())
	return parsed
}

// checkRedirect is installed as http.Client.CheckRedirect. req is the request about to be sent
// to the new location; via holds the requests already made, oldest first.
func (r *RedirectHandler) checkRedirect(req *http.Request, via []*http.Request) error {
	previous := via[len(via)-1]

	if previous.Method == http.MethodPost || previous.Method == http.MethodPatch {
		r.Logger.Warnw("Redirect attempted on non-idempotent method, not following", "method", previous.Method, "url", previous.URL.String())
		return http.ErrUseLastResponse
	}

	if len(via) > r.MaxRedirects {
		r.Logger.Warnw("Maximum redirects reached", "max_redirects", r.MaxRedirects)
		return &MaxRedirectsError{MaxRedirects: r.MaxRedirects}
	}

	for _, earlier := range via {
		if earlier.URL.String() == req.URL.String() {
			r.Logger.Errorw("Redirect loop detected", "url", req.URL.String(), "redirect_count", len(via))
			return &RedirectLoopError{URL: req.URL.String()}
		}
	}

	if req.URL.Host != previous.URL.Host {
		r.secureRequest(req)
	}

	if resp := req.Response; resp != nil {
		if status.IsPermanentRedirect(resp.StatusCode) {
			r.PermanentRedirects.SetDefault(previous.URL.String(), req.URL.String())
		}
		if resp.StatusCode == http.StatusSeeOther {
			adjustForSeeOther(req)
		}
	}

	r.Logger.Infow("Redirecting request", "original_url", previous.URL.String(), "new_url", req.URL.String(), "redirect_count", len(via))
	return nil
}

// secureRequest removes sensitive headers from a request bound for another host.
func (r *RedirectHandler) secureRequest(req *http.Request) {
	for header := range r.SensitiveHeaders.Iter() {
		req.Header.Del(header)
	}
}

// adjustForSeeOther turns the follow-up of a 303 into a bodiless GET.
func adjustForSeeOther(req *http.Request) {
	req.Method = http.MethodGet
	req.Body = nil
	req.GetBody = nil
	req.ContentLength = 0
	req.Header.Del("Content-Type")
}

// RedirectLoopError is returned when a redirect points back at a URL already visited.
type RedirectLoopError struct {
	URL string
}

func (e *RedirectLoopError) Error() string {
	return fmt.Sprintf("redirect loop detected at %s", e.URL)
}

// MaxRedirectsError is returned when the redirect chain exceeds MaxRedirects.
type MaxRedirectsError struct {
	MaxRedirects int
}

func (e *MaxRedirectsError) Error() string {
	return fmt.Sprintf("maximum redirects reached: %d", e.MaxRedirects)
}

// SetupRedirectHandler configures the HTTP client for redirect handling. With followRedirects
// unset the client returns the first redirect response as is.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log *zap.SugaredLogger) (*RedirectHandler, error) {
	if !followRedirects {
		client.CheckRedirect = func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse }
		return nil, nil
	}
	if maxRedirects < 1 {
		log.Errorw("Invalid maxRedirects value", "max_redirects", maxRedirects)
		return nil, fmt.Errorf("invalid maxRedirects value: %d", maxRedirects)
	}

	handler := NewRedirectHandler(log, maxRedirects)
	handler.WithRedirectHandling(client)
	log.Infow("Redirect handling enabled", "max_redirects", maxRedirects)
	return handler, nil
}
