// Package config loads typed configuration from environment variables and
// dotenv files.
//
// Structs describe their variables with caarlos0/env tags. Load reads the
// optional .env file in the working directory (or the files named with
// WithEnvFiles) through godotenv, overlays the process environment and parses
// the result:
//
//	type Config struct {
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//		FormsFile string `env:"FORMS_FILE,required"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMKIT_")); err != nil {
//		log.Fatal(err)
//	}
//
// The process environment is never modified.
package config
