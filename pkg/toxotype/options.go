package toxotype

import "github.com/seqworks/toxotype/internal/model"

type options struct {
	rules    []model.Rule
	rulePath string
}

// Option configures a Typer.
type Option func(*options)

// WithRules supplies the rule table directly, in precedence order.
func WithRules(rules []Rule) Option {
	return func(o *options) {
		o.rules = make([]model.Rule, 0, len(rules))
		for _, r := range rules {
			o.rules = append(o.rules, r.internal())
		}
	}
}

// WithRuleFile loads the rule table from a tab-delimited file.
// Takes precedence over WithRules when both are given.
func WithRuleFile(path string) Option {
	return func(o *options) {
		o.rulePath = path
	}
}

func defaultOptions() options {
	return options{}
}
