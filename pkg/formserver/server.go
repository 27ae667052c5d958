package formserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/formkit/pkg/clientip"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/httpserver"
	"github.com/dmitrymomot/formkit/pkg/i18n"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/ratelimiter"
	"github.com/dmitrymomot/formkit/pkg/requestid"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Server serves the forms of a Registry.
type Server struct {
	registry   *form.Registry
	translator *i18n.Translator
	log        *slog.Logger
	checks     map[string]httpserver.Check
	limiter    *ratelimiter.Bucket
}

type Option func(*Server)

// WithTranslator renders validation messages in the request language.
// Without it messages stay in English.
func WithTranslator(t *i18n.Translator) Option {
	return func(s *Server) {
		s.translator = t
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRateLimiter throttles submissions per client address and form.
func WithRateLimiter(b *ratelimiter.Bucket) Option {
	return func(s *Server) {
		s.limiter = b
	}
}

// WithHealthCheck adds a named check to GET /health.
func WithHealthCheck(name string, check httpserver.Check) Option {
	return func(s *Server) {
		if name != "" && check != nil {
			s.checks[name] = check
		}
	}
}

func New(registry *form.Registry, opts ...Option) *Server {
	if registry == nil {
		registry = form.NewRegistry()
	}
	s := &Server{
		registry: registry,
		log:      logger.Discard(),
		checks:   make(map[string]httpserver.Check),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router returns the HTTP handler with all routes and middleware mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(clientip.Middleware)
	r.Use(requestid.Middleware)
	if s.translator != nil {
		r.Use(s.translator.Middleware())
	}
	r.Use(requestLogger(s.log))
	r.Use(middleware.Recoverer)

	r.Get("/health", httpserver.HealthCheckHandler(s.log, s.checks))
	r.Route("/forms", func(r chi.Router) {
		r.Get("/", s.listForms)
		r.With(s.rateLimit()).Post("/{name}", s.submitForm)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", http.StatusText(http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", http.StatusText(http.StatusMethodNotAllowed))
	})

	return r
}

func (s *Server) rateLimit() func(http.Handler) http.Handler {
	if s.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return ratelimiter.Middleware(s.limiter, s.limitKey(),
		ratelimiter.WithLimitedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.log.WarnContext(r.Context(), "submission rate limited", logger.Form(chi.URLParam(r, "name")))
			writeError(w, http.StatusTooManyRequests, "rate_limited", http.StatusText(http.StatusTooManyRequests))
		})),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			s.log.ErrorContext(r.Context(), "rate limiter failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "internal_error", http.StatusText(http.StatusInternalServerError))
		}),
	)
}

// limitKey keys submissions by client and form. Unknown forms get no key, so
// they are answered with 404 without creating buckets.
func (s *Server) limitKey() ratelimiter.KeyFunc {
	key := ratelimiter.Composite(ratelimiter.ByClientIP, ratelimiter.ByURLParam("name"))
	return func(r *http.Request) string {
		if _, err := s.registry.Get(chi.URLParam(r, "name")); err != nil {
			return ""
		}
		return key(r)
	}
}

func (s *Server) listForms(w http.ResponseWriter, r *http.Request) {
	names := s.registry.Names()
	resp := formsResponse{Forms: make([]formInfo, 0, len(names))}
	for _, name := range names {
		schema, err := s.registry.Get(name)
		if err != nil {
			continue
		}
		resp.Forms = append(resp.Forms, formInfo{Name: name, Fields: schema.Fields()})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) submitForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	schema, err := s.registry.Get(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "unknown_form", err.Error())
		return
	}

	values, err := schema.ConvertRequest(r)
	switch {
	case err == nil:
		s.log.DebugContext(ctx, "form accepted", logger.Form(name))
		writeJSON(w, http.StatusOK, valuesResponse{Values: values})

	case errors.Is(err, form.ErrUnsupportedMediaType), errors.Is(err, form.ErrMissingContentType):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_media_type", err.Error())

	case errors.Is(err, form.ErrInvalidForm):
		writeError(w, http.StatusBadRequest, "invalid_form", err.Error())

	default:
		verrs := validator.ExtractValidationErrors(err)
		s.log.InfoContext(ctx, "form rejected", logger.Form(name), logger.Fields(verrs.Fields()))
		writeJSON(w, http.StatusUnprocessableEntity, errorsResponse{Errors: s.messages(i18n.GetLocale(ctx), err)})
	}
}

func (s *Server) messages(lang string, err error) map[string][]string {
	if s.translator != nil {
		return s.translator.TranslateErrors(lang, err)
	}
	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		return verrs.Messages(nil)
	}
	return map[string][]string{form.FormErrorField: {err.Error()}}
}
