// Package feed models event feed definitions and loads them from rule
// files.
//
// A feed is a JSON array of rules. Each rule aggregates a topic template
// with {name} placeholders, the event's identity (eventName, eventVersion),
// a payload schema annotated with generation rules, field mappings routing
// payload values into topic parameters, publish timing settings, and
// optional broker message settings.
//
// # Loading
//
// LoadFile parses and validates one feedrules.json; LoadDir discovers
// feeds under a directory (one per subdirectory holding a feedrules.json,
// with feedinfo.json metadata picked up when present). Every rule is
// checked against an embedded JSON Schema before typed decoding, and
// loading fails fast on the first malformed rule with an error naming the
// offending event. Omitted publish settings receive the defaults
// count=20, interval=1, delay=0.
//
// # Field Order
//
// Payload field order in the rule file is significant: synthesized events
// must present fields in declared order. Properties captures the JSON
// object's key order during decoding and exposes it through Keys.
//
// # Shared Helpers
//
// ResolvePath walks dotted field paths (with one optional [0] array index
// per segment) into generated payloads; mappings and partition keys both
// use it. ParseUserProperties parses the space-delimited key:value
// mini-language used by messageSettings.userProperties, honoring quoted
// segments and silently dropping malformed tokens.
package feed
