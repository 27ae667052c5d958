package main

import (
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/formserver"
)

// errInvalidSubmission signals a rejected submission that was already
// reported on stdout.
var errInvalidSubmission = errors.New("invalid submission")

type app struct {
	envFiles []string
	forms    string
	cfg      formserver.Config
	log      *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:           "formkit",
		Short:         "Validate form submissions against YAML form definitions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	cmd.PersistentFlags().StringSliceVar(&a.envFiles, "env-file", nil, "dotenv files to read before the environment (default .env when present)")
	cmd.PersistentFlags().StringVarP(&a.forms, "forms", "f", "", "form definitions file (overrides FORMS_FILE)")

	cmd.AddCommand(newServeCmd(a), newCheckCmd(a), newFormsCmd(a))
	return cmd
}

func (a *app) load(cmd *cobra.Command) error {
	var opts []config.Option
	if len(a.envFiles) > 0 {
		opts = append(opts, config.WithEnvFiles(a.envFiles...))
	}
	if err := config.Load(&a.cfg, opts...); err != nil {
		return err
	}
	if a.forms != "" {
		a.cfg.FormsFile = a.forms
	}

	log, err := a.cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.log = log
	return nil
}
