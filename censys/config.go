package censys

import (
	"fmt"
	"sync"
	"time"

	gvalidator "github.com/go-playground/validator/v10"

	"github.com/andyle182810/censys/httpclient"
	"github.com/andyle182810/censys/validator"
)

const (
	APIVersion = 2
	Host       = "search.censys.io"
)

var DefaultBaseURL = fmt.Sprintf("https://%s/api/v%d/hosts", Host, APIVersion)

type Credentials struct {
	ID     string `json:"id"     validate:"required"`
	Secret string `json:"secret" validate:"required"`
}

type Config struct {
	Credentials Credentials `json:"credentials"`
	// BaseURL defaults to DefaultBaseURL.
	BaseURL string `json:"base_url" validate:"omitempty,http_url"`
	// ProxyURL is usually taken from HTTPS_PROXY. Only its scheme, host and
	// port are used.
	ProxyURL string        `json:"proxy_url" validate:"omitempty,proxy_url"`
	Timeout  time.Duration `json:"timeout"   validate:"gte=0"`
}

func NewConfig(id, secret string) Config {
	return Config{
		Credentials: Credentials{
			ID:     id,
			Secret: secret,
		},
		BaseURL:  "",
		ProxyURL: "",
		Timeout:  0,
	}
}

var configValidator = sync.OnceValues(func() (*validator.Validator, error) {
	v := validator.Default()

	if err := v.RegisterCustomValidation("proxy_url", validateProxyURL); err != nil {
		return nil, err
	}

	return v, nil
})

func (c Config) Validate() error {
	v, err := configValidator()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	if err := v.Validate(c); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil
}

func (c Config) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}

	return c.BaseURL
}

func (c Config) timeout() time.Duration {
	if c.Timeout == 0 {
		return httpclient.DefaultTimeout
	}

	return c.Timeout
}

func validateProxyURL(fl gvalidator.FieldLevel) bool {
	_, err := httpclient.ParseProxyURL(fl.Field().String())

	return err == nil
}
