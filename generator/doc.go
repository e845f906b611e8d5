// Package generator synthesizes random content values from declarative
// generation rules.
//
// A generation rule names a rule family (group) and a specific generator
// within it (rule), plus family-specific options like length bounds, casing,
// numeric ranges, or an enum value set. Eleven families are installed:
// String, Null, Number, Boolean, Date, Lorem, Person, Location, Finance,
// Airline, and Commerce.
//
// # Dispatch
//
// Dispatch is two-level through a registry: family tag first, then rule
// name within the family. The registry is built once at startup, so the
// set of accepted tags is fixed and inspectable (Families, Rules, Knows).
//
//	reg := generator.NewRegistry()
//	value := reg.Generate(generator.Rule{
//	    Group:     generator.GroupString,
//	    Rule:      "alphanumeric",
//	    MinLength: 8,
//	    MaxLength: 12,
//	    Casing:    "upper",
//	})
//
// # Graceful Degradation
//
// Generate never fails. An unrecognized rule name within a known family
// resolves to that family's documented default, so forward-compatible feed
// files degrade instead of breaking stream generation:
//
//   - String: 10-character mixed-case alphabetic string
//   - Null: nil
//   - Number: bounded integer
//   - Boolean: random boolean
//   - Date: date within one year either side of now
//   - Lorem: single word
//   - Person: full name
//   - Location: city name
//   - Finance: money amount string
//   - Airline: carrier object
//   - Commerce: product name
//
// An unknown family yields the NoRuleGroupFound literal. Both fallback
// paths invoke the hook installed with WithFallbackHook, which the
// scheduler wires to a counter metric.
//
// # Randomness
//
// All generators draw from math/rand's shared source. Values are
// intentionally non-deterministic across calls; generators are otherwise
// pure and safe for concurrent use.
package generator
