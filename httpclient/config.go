// httpclient/config.go
package httpclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cast"
	"go.uber.org/zap"
)

const (
	DefaultLogLevelString           = "LogLevelInfo"
	DefaultLogOutputFormatString    = "json"
	DefaultLogConsoleSeparator      = "\t"
	DefaultMaxRetryAttempts         = 3
	DefaultMaxConcurrentRequests    = 5
	DefaultCustomTimeout            = 10 * time.Second
	DefaultTokenRefreshBufferPeriod = 5 * time.Minute
	DefaultTotalRetryDuration       = 5 * time.Minute
	DefaultMaxRedirects             = 5
)

// ClientConfig holds the client options. Integration and Logger are set in code; everything
// else can also come from a JSON file or the environment.
type ClientConfig struct {
	Integration APIIntegration     `json:"-" validate:"required"`
	Logger      *zap.SugaredLogger `json:"-"`

	LogLevel            string `json:"log_level" validate:"oneof=LogLevelDebug LogLevelInfo LogLevelWarn LogLevelError LogLevelDPanic LogLevelPanic LogLevelFatal LogLevelNone"`
	LogOutputFormat     string `json:"log_output_format" validate:"oneof=json console"`
	LogConsoleSeparator string `json:"log_console_separator"`
	ExportLogs          bool   `json:"export_logs"`
	LogExportPath       string `json:"log_export_path" validate:"required_if=ExportLogs true"`
	HideSensitiveData   bool   `json:"hide_sensitive_data"`

	CookieJarEnabled bool              `json:"cookie_jar_enabled"`
	CustomCookies    map[string]string `json:"custom_cookies"`

	MaxRetryAttempts         int           `json:"max_retry_attempts" validate:"gte=0"`
	MaxConcurrentRequests    int           `json:"max_concurrent_requests" validate:"gte=1"`
	CustomTimeout            time.Duration `json:"custom_timeout" validate:"gte=0"`
	TokenRefreshBufferPeriod time.Duration `json:"token_refresh_buffer_period" validate:"gte=0"`
	TotalRetryDuration       time.Duration `json:"total_retry_duration" validate:"gte=0"`
	FollowRedirects          bool          `json:"follow_redirects"`
	MaxRedirects             int           `json:"max_redirects" validate:"gte=0"`

	ProxyURL       string `json:"proxy_url" validate:"omitempty,url"`
	ProxyUsername  string `json:"proxy_username"`
	ProxyPassword  string `json:"proxy_password" validate:"required_with=ProxyUsername"`
	ProxyAuthToken string `json:"proxy_auth_token"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// setting reads one configuration key. The same keys are used in JSON files and, upper-cased,
// in the environment.
type setting struct {
	key   string
	apply func(config *ClientConfig, value any) error
}

var settings = []setting{
	{"log_level", func(c *ClientConfig, v any) (err error) { c.LogLevel, err = cast.ToStringE(v); return }},
	{"log_output_format", func(c *ClientConfig, v any) (err error) { c.LogOutputFormat, err = cast.ToStringE(v); return }},
	{"log_console_separator", func(c *ClientConfig, v any) (err error) { c.LogConsoleSeparator, err = cast.ToStringE(v); return }},
	{"export_logs", func(c *ClientConfig, v any) (err error) { c.ExportLogs, err = cast.ToBoolE(v); return }},
	{"log_export_path", func(c *ClientConfig, v any) (err error) { c.LogExportPath, err = cast.ToStringE(v); return }},
	{"hide_sensitive_data", func(c *ClientConfig, v any) (err error) { c.HideSensitiveData, err = cast.ToBoolE(v); return }},
	{"cookie_jar_enabled", func(c *ClientConfig, v any) (err error) { c.CookieJarEnabled, err = cast.ToBoolE(v); return }},
	{"custom_cookies", func(c *ClientConfig, v any) (err error) { c.CustomCookies, err = toCookieMap(v); return }},
	{"max_retry_attempts", func(c *ClientConfig, v any) (err error) { c.MaxRetryAttempts, err = cast.ToIntE(v); return }},
	{"max_concurrent_requests", func(c *ClientConfig, v any) (err error) { c.MaxConcurrentRequests, err = cast.ToIntE(v); return }},
	{"custom_timeout", func(c *ClientConfig, v any) (err error) { c.CustomTimeout, err = cast.ToDurationE(v); return }},
	{"token_refresh_buffer_period", func(c *ClientConfig, v any) (err error) { c.TokenRefreshBufferPeriod, err = cast.ToDurationE(v); return }},
	{"total_retry_duration", func(c *ClientConfig, v any) (err error) { c.TotalRetryDuration, err = cast.ToDurationE(v); return }},
	{"follow_redirects", func(c *ClientConfig, v any) (err error) { c.FollowRedirects, err = cast.ToBoolE(v); return }},
	{"max_redirects", func(c *ClientConfig, v any) (err error) { c.MaxRedirects, err = cast.ToIntE(v); return }},
	{"proxy_url", func(c *ClientConfig, v any) (err error) { c.ProxyURL, err = cast.ToStringE(v); return }},
	{"proxy_username", func(c *ClientConfig, v any) (err error) { c.ProxyUsername, err = cast.ToStringE(v); return }},
	{"proxy_password", func(c *ClientConfig, v any) (err error) { c.ProxyPassword, err = cast.ToStringE(v); return }},
	{"proxy_auth_token", func(c *ClientConfig, v any) (err error) { c.ProxyAuthToken, err = cast.ToStringE(v); return }},
}

// toCookieMap accepts a JSON object or a "name=value; name=value" string.
func toCookieMap(v any) (map[string]string, error) {
	if s, ok := v.(string); ok {
		out := map[string]string{}
		for _, pair := range strings.Split(s, ";") {
			name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
			if ok && name != "" {
				out[name] = value
			}
		}
		return out, nil
	}
	return cast.ToStringMapStringE(v)
}

func applySettings(config *ClientConfig, lookup func(key string) (any, bool)) error {
	for _, s := range settings {
		value, ok := lookup(s.key)
		if !ok {
			continue
		}
		if err := s.apply(config, value); err != nil {
			return fmt.Errorf("config key %s: %w", s.key, err)
		}
	}
	return nil
}

// LoadConfigFromFile loads client options from a JSON file. Durations may be strings such as
// "30s" or integer nanoseconds. Missing keys get their defaults.
func LoadConfigFromFile(path string) (*ClientConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("could not unmarshal JSON: %w", err)
	}

	config := &ClientConfig{}
	err = applySettings(config, func(key string) (any, bool) {
		v, ok := raw[key]
		return v, ok
	})
	if err != nil {
		return nil, err
	}

	SetDefaultValuesClientConfig(config)
	return config, nil
}

// LoadConfigFromEnv loads client options from environment variables named after the upper-cased
// configuration keys, e.g. MAX_RETRY_ATTEMPTS. Unset variables get their defaults.
func LoadConfigFromEnv() (*ClientConfig, error) {
	config := &ClientConfig{}
	err := applySettings(config, func(key string) (any, bool) {
		v, ok := os.LookupEnv(strings.ToUpper(key))
		return v, ok
	})
	if err != nil {
		return nil, err
	}

	SetDefaultValuesClientConfig(config)
	return config, nil
}

// SetDefaultValuesClientConfig fills unset options with their defaults.
func SetDefaultValuesClientConfig(config *ClientConfig) {
	if config.LogLevel == "" {
		config.LogLevel = DefaultLogLevelString
	}
	if config.LogOutputFormat == "" {
		config.LogOutputFormat = DefaultLogOutputFormatString
	}
	if config.LogConsoleSeparator == "" {
		config.LogConsoleSeparator = DefaultLogConsoleSeparator
	}
	if config.MaxRetryAttempts == 0 {
		config.MaxRetryAttempts = DefaultMaxRetryAttempts
	}
	if config.MaxConcurrentRequests == 0 {
		config.MaxConcurrentRequests = DefaultMaxConcurrentRequests
	}
	if config.CustomTimeout == 0 {
		config.CustomTimeout = DefaultCustomTimeout
	}
	if config.TokenRefreshBufferPeriod == 0 {
		config.TokenRefreshBufferPeriod = DefaultTokenRefreshBufferPeriod
	}
	if config.TotalRetryDuration == 0 {
		config.TotalRetryDuration = DefaultTotalRetryDuration
	}
	if config.MaxRedirects == 0 {
		config.MaxRedirects = DefaultMaxRedirects
	}
}

// validateClientConfig checks the struct tags and the cross-field rules they cannot express.
func validateClientConfig(config ClientConfig) error {
	if err := validate.Struct(config); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			msgs := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q (value %v)", fe.Field(), fe.Tag(), fe.Value()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}

	if config.FollowRedirects && config.MaxRedirects < 1 {
		return errors.New("max redirects cannot be less than 1")
	}
	return nil
}
