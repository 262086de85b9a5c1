package authform

import (
	"strings"
	"time"

	"github.com/dmitrymomot/authform/pkg/cache"
	"github.com/dmitrymomot/authform/pkg/httpserver"
	"github.com/dmitrymomot/authform/pkg/ratelimit"
)

// Config is the service configuration, loaded with config.Load.
type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"authform"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"`

	APIURL        string        `env:"API_URL" envDefault:"http://localhost:5050/api"`
	APITimeout    time.Duration `env:"API_TIMEOUT" envDefault:"10s"`
	APIRetries    int           `env:"API_RETRIES" envDefault:"0"`
	RedirectPath  string        `env:"REDIRECT_PATH" envDefault:"/"`
	MaxBodySize   int64         `env:"MAX_BODY_SIZE" envDefault:"65536"`
	DefaultLocale string        `env:"DEFAULT_LOCALE" envDefault:"en"`

	RateLimitEnabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"`

	Storage   cache.Config
	RateLimit ratelimit.Config
	HTTP      httpserver.Config
}

// APIEndpoint joins path to APIURL.
func (c Config) APIEndpoint(path string) string {
	return strings.TrimRight(c.APIURL, "/") + "/" + strings.TrimLeft(path, "/")
}
