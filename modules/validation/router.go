package validation

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/handler"
	"github.com/dmitrymomot/rulekit/pkg/binder"
)

// Handle returns the routes of the service:
//
//	POST /validate         {"rules": {...}, "data": {...}, "messages": {...}}
//	HEAD /validate/{name}  200 when the rule set exists, 404 otherwise
//	GET  /validate/{name}  query string input against a rule set
//	POST /validate/{name}  JSON or form input against a rule set
//	POST /check            {"value": "...", "rules": "..."}
//	GET  /rules            available rules with their messages
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/validate", handler.Wrap(s.validate,
		handler.WithBinder[handler.Context, ValidateRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, ValidateRequest](s.errorHandler),
		handler.WithDecorators(logged[ValidateRequest](s.logger, "validate")),
	))

	r.Head("/validate/{name}", handler.Wrap(s.ruleSetExists,
		handler.WithBinder[handler.Context, RuleSetRequest](bindRuleSetName),
		handler.WithErrorHandler[handler.Context, RuleSetRequest](s.errorHandler),
	))

	validateRuleSet := handler.Wrap(s.validateRuleSet,
		handler.WithBinders[handler.Context, RuleSetRequest](bindRuleSetName, bindRuleSetData),
		handler.WithErrorHandler[handler.Context, RuleSetRequest](s.errorHandler),
		handler.WithDecorators(logged[RuleSetRequest](s.logger, "validate_rule_set")),
	)
	r.Get("/validate/{name}", validateRuleSet)
	r.Post("/validate/{name}", validateRuleSet)

	r.Post("/check", handler.Wrap(s.check,
		handler.WithBinder[handler.Context, CheckRequest](binder.JSON()),
		handler.WithErrorHandler[handler.Context, CheckRequest](s.errorHandler),
		handler.WithDecorators(logged[CheckRequest](s.logger, "check")),
	))

	r.Get("/rules", handler.Wrap(s.rules,
		handler.WithErrorHandler[handler.Context, struct{}](s.errorHandler),
		handler.WithDecorators(logged[struct{}](s.logger, "rules")),
	))

	return r
}
