package generator

import (
	"sort"
)

// NoRuleGroupFound is produced when a rule names an unknown family. The
// literal survives into payloads so malformed community feeds degrade
// visibly instead of aborting a publish cycle.
const NoRuleGroupFound = "NoRuleGroupFound"

// GenerateFunc synthesizes one value from a rule descriptor.
type GenerateFunc func(r Rule) any

// family holds the named generators of one rule family plus the default
// used for unrecognized or empty rule names.
type family struct {
	rules map[string]GenerateFunc
	def   GenerateFunc
}

// Registry dispatches (family, rule) pairs to generator functions. Every
// family carries a default entry so forward-compatible rule files degrade
// gracefully instead of breaking stream generation.
type Registry struct {
	families   map[string]*family
	onFallback func(group string)
}

// Option configures a Registry.
type Option func(*Registry)

// WithFallbackHook installs a callback invoked whenever generation falls
// back to a family default or an unknown family is requested. The scheduler
// wires this to the fallback counter metric.
func WithFallbackHook(fn func(group string)) Option {
	return func(g *Registry) {
		g.onFallback = fn
	}
}

// NewRegistry builds a registry with all eleven rule families installed.
func NewRegistry(opts ...Option) *Registry {
	g := &Registry{
		families: make(map[string]*family),
	}

	g.install(GroupString, stringRules(), genAlphaDefault)
	g.install(GroupNull, nullRules(), genNull)
	g.install(GroupNumber, numberRules(), genInt)
	g.install(GroupBoolean, booleanRules(), genBoolean)
	g.install(GroupDate, dateRules(), genDateAnytime)
	g.install(GroupLorem, loremRules(), genLoremWord)
	g.install(GroupPerson, personRules(), genFullName)
	g.install(GroupLocation, locationRules(), genCity)
	g.install(GroupFinance, financeRules(), genAmount)
	g.install(GroupAirline, airlineRules(), genAirline)
	g.install(GroupCommerce, commerceRules(), genProductName)

	for _, opt := range opts {
		opt(g)
	}

	return g
}

func (g *Registry) install(group string, rules map[string]GenerateFunc, def GenerateFunc) {
	g.families[group] = &family{rules: rules, def: def}
}

// Generate synthesizes a value for the given rule. Unknown rule names
// within a known family use the family default; an unknown family yields
// the NoRuleGroupFound literal. Generate never returns an error.
func (g *Registry) Generate(rule Rule) any {
	fam, ok := g.families[rule.Group]
	if !ok {
		g.fallback(rule.Group)
		return NoRuleGroupFound
	}

	fn, ok := fam.rules[rule.Rule]
	if !ok {
		if rule.Rule != "" {
			g.fallback(rule.Group)
		}
		fn = fam.def
	}

	return fn(rule)
}

// Knows reports whether the (group, rule) pair maps to a named generator.
// An empty rule name counts as known when the family exists, since it
// resolves to the family default.
func (g *Registry) Knows(group, rule string) bool {
	fam, ok := g.families[group]
	if !ok {
		return false
	}
	if rule == "" {
		return true
	}
	_, ok = fam.rules[rule]
	return ok
}

// Families returns the installed family tags in sorted order.
func (g *Registry) Families() []string {
	out := make([]string, 0, len(g.families))
	for name := range g.families {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Rules returns the named generators of a family in sorted order.
func (g *Registry) Rules(group string) ([]string, bool) {
	fam, ok := g.families[group]
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(fam.rules))
	for name := range fam.rules {
		out = append(out, name)
	}
	sort.Strings(out)
	return out, true
}

func (g *Registry) fallback(group string) {
	if g.onFallback != nil {
		g.onFallback(group)
	}
}
