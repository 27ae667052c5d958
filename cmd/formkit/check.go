package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		name    string
		lang    string
		fromStd bool
	)

	cmd := &cobra.Command{
		Use:   "check --form NAME [key=value...]",
		Short: "Validate one submission",
		Long: `Validates key=value pairs (repeat a key for multiple values) or, with --stdin,
a JSON object against the named form. Prints the converted values or the
errors as JSON and exits with status 1 when the submission is rejected.`,
		Example: `  formkit check -f forms.yaml --form user first_name=Ann email=ann@example.com
  echo '{"seats": 3}' | formkit check -f forms.yaml --form event --stdin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args, fromStd, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.check(cmd, name, lang, input)
		},
	}

	cmd.Flags().StringVar(&name, "form", "", "form name")
	cmd.Flags().StringVar(&lang, "lang", "", "language of error messages (default DEFAULT_LANGUAGE)")
	cmd.Flags().BoolVar(&fromStd, "stdin", false, "read a JSON object from stdin instead of arguments")
	_ = cmd.MarkFlagRequired("form")
	return cmd
}

func readInput(args []string, fromStdin bool, stdin io.Reader) (map[string]any, error) {
	if fromStdin {
		if len(args) > 0 {
			return nil, fmt.Errorf("arguments are not allowed with --stdin")
		}
		return form.DecodeJSON(stdin)
	}

	values := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", arg)
		}
		values.Add(key, value)
	}
	return form.FlattenValues(values), nil
}

func (a *app) check(cmd *cobra.Command, name, lang string, input map[string]any) error {
	ctx := cmd.Context()

	reg, err := a.cfg.LoadRegistry()
	if err != nil {
		return err
	}
	schema, err := reg.Get(name)
	if err != nil {
		return err
	}

	out := json.NewEncoder(cmd.OutOrStdout())
	out.SetIndent("", "  ")

	values, convErr := schema.ConvertMap(input)
	if convErr == nil {
		return out.Encode(map[string]any{"values": values})
	}

	tr, err := a.cfg.LoadTranslator(ctx, a.log)
	if err != nil {
		return err
	}
	if lang == "" {
		lang = tr.DefaultLanguage()
	}
	if err := out.Encode(map[string]any{"errors": tr.TranslateErrors(tr.Resolve(lang), convErr)}); err != nil {
		return err
	}
	return errInvalidSubmission
}
