package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by Load when no WithEnvFiles option is given.
// A missing default file is not an error.
const DefaultEnvFile = ".env"

// Option configures Load.
type Option func(*options)

type options struct {
	files    []string
	explicit bool
	prefix   string
}

// WithEnvFiles reads variables from the given dotenv files. Later files win
// over earlier ones, and the process environment wins over all of them.
// Unlike the default file, these must exist.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		for _, f := range files {
			if f != "" {
				o.files = append(o.files, f)
			}
		}
		o.explicit = true
	}
}

// WithPrefix prepends prefix to every variable name, e.g. "FORMKIT_".
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// Load fills v from environment variables according to its `env` struct tags.
//
//	type ServerConfig struct {
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//		FormsFile string `env:"FORMS_FILE,required"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	vars, err := readEnvFiles(o)
	if err != nil {
		return err
	}
	for k, val := range env.ToMap(os.Environ()) {
		vars[k] = val
	}

	if err := env.ParseWithOptions(v, env.Options{
		Environment: vars,
		Prefix:      o.prefix,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

func readEnvFiles(o *options) (map[string]string, error) {
	vars := make(map[string]string)

	files := o.files
	if !o.explicit {
		if _, err := os.Stat(DefaultEnvFile); err != nil {
			return vars, nil
		}
		files = []string{DefaultEnvFile}
	}

	for _, f := range files {
		fileVars, err := godotenv.Read(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrEnvFile, f, err)
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}
	return vars, nil
}
