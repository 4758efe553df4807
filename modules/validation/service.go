package validation

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/rulekit/handler"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// Service exposes the validation engine over HTTP.
type Service struct {
	registry     *validator.Registry
	catalogs     *i18n.Catalogs
	ruleSets     RuleSets
	separator    string
	logger       *slog.Logger
	metrics      *Metrics
	errorHandler handler.ErrorHandler[handler.Context]
}

type Option func(*Service)

// WithRegistry sets the rule registry. It is shared by every request and
// must not be modified while the service runs.
func WithRegistry(r *validator.Registry) Option {
	return func(s *Service) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithCatalogs enables localized messages. Without catalogs every response
// uses the built-in English templates.
func WithCatalogs(c *i18n.Catalogs) Option {
	return func(s *Service) { s.catalogs = c }
}

func WithRuleSets(sets RuleSets) Option {
	return func(s *Service) {
		if sets != nil {
			s.ruleSets = sets
		}
	}
}

// WithSeparator sets the separator of the "text" meta field.
func WithSeparator(sep string) Option {
	return func(s *Service) { s.separator = sep }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records pass and check outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

func WithErrorHandler(h handler.ErrorHandler[handler.Context]) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func NewService(opts ...Option) *Service {
	s := &Service{
		registry:  validator.DefaultRegistry(),
		ruleSets:  RuleSets{},
		separator: validator.DefaultSeparator,
		logger:    logger.Noop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger)
	}
	return s
}

// newValidator returns a session configured for one request in lang.
func (s *Service) newValidator(lang string, extra ...validator.Option) *validator.Validator {
	opts := []validator.Option{
		validator.WithRegistry(s.registry),
		validator.WithLogger(s.logger),
		validator.WithSeparator(s.separator),
	}
	if s.catalogs != nil {
		opts = append(opts, validator.WithMessages(s.catalogs.Messages(lang)))
	}
	return validator.New(append(opts, extra...)...)
}

// catalog returns the effective templates for lang.
func (s *Service) catalog(lang string) validator.Catalog {
	c := validator.DefaultCatalog()
	if s.catalogs != nil {
		c = c.Merge(s.catalogs.Messages(lang))
	}
	return c
}

func sortedKeys(sets RuleSets) []string {
	return slices.Sorted(maps.Keys(sets))
}
