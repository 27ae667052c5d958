package form

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

// Definitions is the YAML document describing a set of forms.
//
//	forms:
//	  user:
//	    fields:
//	      - {name: first_name, type: string, not_empty: true}
//	      - {name: email, type: email}
//	  password:
//	    fields:
//	      - {name: new_password, type: secure_password}
//	      - {name: new_password_again, type: string}
//	    chained:
//	      - {type: fields_match, fields: [new_password, new_password_again]}
type Definitions struct {
	Forms map[string]FormDefinition `yaml:"forms"`
}

type FormDefinition struct {
	Fields            []FieldDefinition   `yaml:"fields"`
	Chained           []ChainedDefinition `yaml:"chained"`
	AllowExtraFields  bool                `yaml:"allow_extra_fields"`
	FilterExtraFields bool                `yaml:"filter_extra_fields"`
	IgnoreKeyMissing  bool                `yaml:"ignore_key_missing"`
}

type FieldDefinition struct {
	Name      string            `yaml:"name"`
	Type      string            `yaml:"type"`
	NotEmpty  bool              `yaml:"not_empty"`
	Strip     bool              `yaml:"strip"`
	Optional  bool              `yaml:"optional"`
	IfEmpty   any               `yaml:"if_empty"`
	IfMissing any               `yaml:"if_missing"`
	Sanitize  []string          `yaml:"sanitize"`
	Messages  map[string]string `yaml:"messages"`

	// string, int, secure_password
	Min *int `yaml:"min"`
	Max *int `yaml:"max"`

	// date
	Earliest     string   `yaml:"earliest"`
	Latest       string   `yaml:"latest"`
	AfterNow     bool     `yaml:"after_now"`
	TodayOrAfter bool     `yaml:"today_or_after"`
	Layouts      []string `yaml:"layouts"`

	// one_of
	Values     []string `yaml:"values"`
	IgnoreCase bool     `yaml:"ignore_case"`

	// secure_password
	MinNonLetters int  `yaml:"min_non_letters"`
	RejectCommon  bool `yaml:"reject_common"`
}

type ChainedDefinition struct {
	Type     string   `yaml:"type"`
	Fields   []string `yaml:"fields"`
	Required string   `yaml:"required"`
	Present  string   `yaml:"present"`
}

// Registry holds named schemas.
type Registry struct {
	forms map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{forms: make(map[string]*Schema)}
}

// Register adds or replaces a schema.
func (r *Registry) Register(name string, s *Schema) {
	r.forms[name] = s
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*Schema, error) {
	s, ok := r.forms[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
	return s, nil
}

// Names returns registered form names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.forms))
	for name := range r.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// LoadDefinitions parses a YAML document and builds every form it declares.
func LoadDefinitions(r io.Reader) (*Registry, error) {
	var defs Definitions
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&defs); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(ErrInvalidDefinition, err)
	}

	reg := NewRegistry()
	for name, def := range defs.Forms {
		s, err := def.Build()
		if err != nil {
			return nil, fmt.Errorf("form %q: %w", name, err)
		}
		reg.Register(name, s)
	}
	return reg, nil
}

// LoadDefinitionsFile is LoadDefinitions for a file path.
func LoadDefinitionsFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadDefinitions(f)
}

// Build turns the definition into a Schema.
func (d FormDefinition) Build() (*Schema, error) {
	opts := make([]SchemaOption, 0, len(d.Fields)+4)
	for _, fd := range d.Fields {
		c, err := fd.Converter()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithField(fd.Name, c))
	}

	for _, cd := range d.Chained {
		v, err := cd.Validator()
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithChained(v))
	}

	if d.AllowExtraFields {
		opts = append(opts, AllowExtraFields())
	}
	if d.FilterExtraFields {
		opts = append(opts, FilterExtraFields())
	}
	if d.IgnoreKeyMissing {
		opts = append(opts, IgnoreKeyMissing())
	}
	return NewSchema(opts...), nil
}

// Converter builds the converter described by the field definition.
func (d FieldDefinition) Converter() (Converter, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("%w: field without a name", ErrInvalidDefinition)
	}

	base := Base{
		NotEmpty:  d.NotEmpty,
		Strip:     d.Strip,
		IfEmpty:   d.IfEmpty,
		Optional:  d.Optional || d.IfMissing != nil,
		IfMissing: d.IfMissing,
		Messages:  d.Messages,
	}
	if len(d.Sanitize) > 0 {
		fn, err := sanitizer.LookupAll(d.Sanitize...)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q: %w", ErrInvalidDefinition, d.Name, err)
		}
		base.Sanitize = []func(string) string{fn}
	}

	switch d.Type {
	case "bool":
		return Bool{Base: base}, nil
	case "string", "":
		return String{Base: base, Min: deref(d.Min), Max: deref(d.Max)}, nil
	case "int":
		return Int{Base: base, Min: d.Min, Max: d.Max}, nil
	case "date":
		c := Date{
			Base:         base,
			AfterNow:     d.AfterNow,
			TodayOrAfter: d.TodayOrAfter,
			Layouts:      d.Layouts,
		}
		var err error
		if c.Earliest, err = parseBound(d.Earliest); err != nil {
			return nil, fmt.Errorf("%w: field %q: earliest: %w", ErrInvalidDefinition, d.Name, err)
		}
		if c.Latest, err = parseBound(d.Latest); err != nil {
			return nil, fmt.Errorf("%w: field %q: latest: %w", ErrInvalidDefinition, d.Name, err)
		}
		return c, nil
	case "email":
		return Email{Base: base}, nil
	case "one_of":
		if len(d.Values) == 0 {
			return nil, fmt.Errorf("%w: field %q: one_of requires values", ErrInvalidDefinition, d.Name)
		}
		return OneOf{Base: base, Values: d.Values, IgnoreCase: d.IgnoreCase}, nil
	case "uuid":
		return UUID{Base: base}, nil
	case "secure_password":
		return SecurePassword{
			Base:          base,
			MinLength:     deref(d.Min),
			MinNonLetters: d.MinNonLetters,
			RejectCommon:  d.RejectCommon,
		}, nil
	}
	return nil, fmt.Errorf("%w: field %q: unknown type %q", ErrInvalidDefinition, d.Name, d.Type)
}

// Validator builds the chained validator described by the definition.
func (d ChainedDefinition) Validator() (Chained, error) {
	switch d.Type {
	case "fields_match":
		if len(d.Fields) < 2 {
			return nil, fmt.Errorf("%w: fields_match requires at least two fields", ErrInvalidDefinition)
		}
		return FieldsMatch(d.Fields...), nil
	case "require_if_present":
		if d.Required == "" || d.Present == "" {
			return nil, fmt.Errorf("%w: require_if_present requires required and present", ErrInvalidDefinition)
		}
		return RequireIfPresent(d.Required, d.Present), nil
	}
	return nil, fmt.Errorf("%w: unknown chained validator %q", ErrInvalidDefinition, d.Type)
}

func parseBound(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range DefaultDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse %q as a date", s)
}

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
