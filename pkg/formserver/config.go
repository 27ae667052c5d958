package formserver

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

// Config is the environment configuration of the form service.
type Config struct {
	FormsFile       string `env:"FORMS_FILE" envDefault:"forms.yaml"`
	TranslationsDir string `env:"TRANSLATIONS_DIR"`
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	LogLevel        string `env:"LOG_LEVEL"`
	LogFormat       string `env:"LOG_FORMAT"`
	Env             string `env:"APP_ENV" envDefault:"development"`
	ServiceName     string `env:"SERVICE_NAME" envDefault:"formkit"`

	HTTP httpserver.Config

	RateLimitEnabled bool               `env:"RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimit        ratelimiter.Config `envPrefix:"RATE_LIMIT_"`
}

// LoadRegistry builds the forms declared in FormsFile.
func (c Config) LoadRegistry() (*form.Registry, error) {
	return form.LoadDefinitionsFile(c.FormsFile)
}

// LoadTranslator loads the built-in translations, overlaid with the files
// in TranslationsDir when it is set.
func (c Config) LoadTranslator(ctx context.Context, log *slog.Logger) (*i18n.Translator, error) {
	adapter := i18n.MultiAdapter{i18n.DefaultAdapter()}
	if c.TranslationsDir != "" {
		adapter = append(adapter, i18n.NewDirectoryAdapter(c.TranslationsDir))
	}

	opts := []i18n.Option{i18n.WithLogger(log)}
	if c.DefaultLanguage != "" {
		opts = append(opts, i18n.WithDefaultLanguage(c.DefaultLanguage))
	}
	return i18n.NewTranslator(ctx, adapter, opts...)
}

// NewLogger builds the service logger writing to w. Env picks the defaults;
// LogLevel and LogFormat override them when set.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(c.Env, c.ServiceName),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor(), i18n.LoggerExtractor()),
	}

	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(strings.ToLower(c.LogFormat)); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}

	return logger.New(opts...), nil
}
