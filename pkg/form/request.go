package form

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// DefaultMaxMemory is the maximum memory used for parsing multipart forms (10MB).
const DefaultMaxMemory = 10 << 20

// DefaultMaxJSONSize is the maximum size of a JSON body (1MB).
const DefaultMaxJSONSize = 1 << 20

// ReadRequest extracts the raw input mapping from r.
//
// GET, HEAD and DELETE requests read the query string. Other methods read the
// body according to its content type: application/x-www-form-urlencoded,
// multipart/form-data (file parts are ignored) or application/json (a JSON
// object, numbers kept as json.Number).
func ReadRequest(r *http.Request) (map[string]any, error) {
	switch r.Method {
	case http.MethodGet, http.MethodHead, http.MethodDelete:
		return FlattenValues(r.URL.Query()), nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return nil, fmt.Errorf("%w: expected application/x-www-form-urlencoded, multipart/form-data or application/json", ErrMissingContentType)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed content type", ErrInvalidForm)
	}

	switch {
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		return FlattenValues(r.Form), nil

	case mediaType == "multipart/form-data":
		if params["boundary"] == "" {
			return nil, fmt.Errorf("%w: missing boundary in content type", ErrInvalidForm)
		}
		if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
		if r.MultipartForm == nil {
			return map[string]any{}, nil
		}
		return FlattenValues(r.MultipartForm.Value), nil

	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return DecodeJSON(r.Body)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedMediaType, mediaType)
}

// DecodeJSON reads a single JSON object of at most DefaultMaxJSONSize bytes
// from rd. Numbers are kept as json.Number. Oversized input and data after
// the object fail with ErrInvalidForm.
func DecodeJSON(rd io.Reader) (map[string]any, error) {
	body, err := io.ReadAll(io.LimitReader(rd, DefaultMaxJSONSize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read body: %v", ErrInvalidForm, err)
	}
	if len(body) > DefaultMaxJSONSize {
		return nil, fmt.Errorf("%w: body too large (max %d bytes)", ErrInvalidForm, DefaultMaxJSONSize)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var input map[string]any
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", ErrInvalidForm)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrInvalidForm)
	}

	if input == nil {
		input = map[string]any{}
	}
	return input, nil
}

// ConvertRequest reads r with ReadRequest and converts the result.
func (s *Schema) ConvertRequest(r *http.Request) (map[string]any, error) {
	input, err := ReadRequest(r)
	if err != nil {
		return nil, err
	}
	return s.ConvertMap(input)
}

// Bind converts input and decodes the result into dst, a pointer to a struct
// whose fields are tagged with `form:"name"`.
func (s *Schema) Bind(input map[string]any, dst any) error {
	values, err := s.ConvertMap(input)
	if err != nil {
		return err
	}
	return Decode(values, dst)
}

// BindRequest is Bind for the input read from r.
func (s *Schema) BindRequest(r *http.Request, dst any) error {
	input, err := ReadRequest(r)
	if err != nil {
		return err
	}
	return s.Bind(input, dst)
}

// Decode copies converted values into dst by `form` struct tags.
// Types must already match; no weak conversion is attempted.
func Decode(values map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "form",
		Result:  dst,
	})
	if err != nil {
		return errors.Join(ErrBind, err)
	}
	if err := dec.Decode(values); err != nil {
		return errors.Join(ErrBind, err)
	}
	return nil
}

// BindTo is a generic shorthand for Schema.Bind.
func BindTo[T any](s *Schema, input map[string]any) (T, error) {
	var dst T
	err := s.Bind(input, &dst)
	return dst, err
}
