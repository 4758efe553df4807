package validation

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/handler"
	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

// ValidateRequest carries ad-hoc rules together with the input.
//
// Messages optionally overrides templates for single fields, keyed
// "field.rule".
type ValidateRequest struct {
	Rules    validator.Rules   `json:"rules"`
	Data     map[string]any    `json:"data"`
	Messages map[string]string `json:"messages,omitempty"`
}

// RuleSetRequest validates input against a configured rule set.
type RuleSetRequest struct {
	Name string
	Data validator.Data
}

// CheckRequest checks one value against a rule string.
type CheckRequest struct {
	Value string `json:"value"`
	Rules string `json:"rules"`
}

// Result is the body of a successful validation.
type Result struct {
	Valid bool `json:"valid"`
}

// RuleInfo describes an available rule and its message in the request
// language.
type RuleInfo struct {
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

// RulesResponse lists rules and rule sets.
type RulesResponse struct {
	Rules    []RuleInfo `json:"rules"`
	RuleSets []string   `json:"rule_sets"`
}

func (s *Service) validate(ctx handler.Context, req ValidateRequest) handler.Response {
	data, err := binder.Values(req.Data)
	if err != nil {
		return handler.JSONError(err)
	}
	return s.run(ctx, "", req.Rules, data, validator.WithFieldMessages(req.Messages))
}

func (s *Service) validateRuleSet(ctx handler.Context, req RuleSetRequest) handler.Response {
	rules, err := s.ruleSets.Get(req.Name)
	if err != nil {
		return handler.JSONError(handler.NewHTTPError(http.StatusNotFound, "rule_set_not_found"))
	}
	return s.run(ctx, req.Name, rules, req.Data)
}

func (s *Service) run(ctx handler.Context, set string, rules validator.Rules, data validator.Data, opts ...validator.Option) handler.Response {
	lang := ctx.Locale()
	v := s.newValidator(lang, opts...)
	start := time.Now()
	ok := v.Validate(rules, data)
	s.metrics.observePass(set, ok, v.Err(), time.Since(start))

	s.logger.DebugContext(ctx, "input validated",
		slog.String("rule_set", set),
		slog.Bool("valid", ok),
		logger.Count("fields", len(rules)),
		logger.Lang(lang),
	)

	if ok {
		return handler.JSON(Result{Valid: true})
	}
	return handler.JSONError(v.Err(), handler.WithJSONMeta(map[string]any{
		"lang":     lang,
		"messages": v.Messages(),
		"text":     v.ErrorsString(),
	}))
}

func (s *Service) check(ctx handler.Context, req CheckRequest) handler.Response {
	v := s.newValidator(ctx.Locale())
	ok, err := v.Check(req.Value, req.Rules)
	s.metrics.observeCheck(ok, err)
	if err != nil {
		var unknown *validator.UnknownRuleError
		if errors.As(err, &unknown) {
			s.logger.DebugContext(ctx, "check with unknown rule", logger.Rule(unknown.Rule))
		}
		return handler.JSONError(err)
	}
	return handler.JSON(Result{Valid: ok})
}

func (s *Service) rules(ctx handler.Context, _ struct{}) handler.Response {
	catalog := s.catalog(ctx.Locale())

	names := append(s.registry.Names(), validator.RuleName)
	slices.Sort(names)
	infos := make([]RuleInfo, 0, len(names))
	for _, name := range names {
		info := RuleInfo{Name: name}
		if name != validator.RuleName {
			info.Message = catalog.Template(name)
		}
		infos = append(infos, info)
	}

	return handler.JSON(RulesResponse{Rules: infos, RuleSets: sortedKeys(s.ruleSets)},
		handler.WithJSONMeta(map[string]any{"lang": ctx.Locale()}))
}

// ruleSetExists answers HEAD requests for a rule set.
func (s *Service) ruleSetExists(_ handler.Context, req RuleSetRequest) handler.Response {
	if _, ok := s.ruleSets[req.Name]; !ok {
		return handler.JSONError(handler.NewHTTPError(http.StatusNotFound, "rule_set_not_found"))
	}
	return handler.EmptyWithStatus(http.StatusOK)
}

// bindRuleSetName reads the rule set name from the route.
func bindRuleSetName(r *http.Request, v any) error {
	req, ok := v.(*RuleSetRequest)
	if !ok {
		return handler.ErrInternalServerError
	}
	req.Name = chi.URLParam(r, "name")
	return nil
}

// bindRuleSetData reads the input from the body or query string.
func bindRuleSetData(r *http.Request, v any) error {
	req, ok := v.(*RuleSetRequest)
	if !ok {
		return handler.ErrInternalServerError
	}
	data, err := binder.Data(r)
	if err != nil {
		return err
	}
	req.Data = data
	return nil
}
