// Package synthesizer produces (topic, payload) event pairs from feed
// rules.
//
// Payload generation is a recursive walk over the rule's declared payload
// schema: object nodes recurse into their properties, array nodes repeat
// their element shape (rule.count elements, default 2), and scalar nodes go
// through the content generator. Fields without a generation rule fall back
// to the rule family matching their declared type. Output objects preserve
// declared field order exactly.
//
// Topic resolution substitutes {name} placeholders in the rule's topic
// template in two strict phases: field mappings first (reading
// already-generated payload values, with dotted-path lookup), then
// independent generation for the remaining declared topic parameters. A
// parameter satisfied by a mapping is never generated independently, so a
// consumer matching a topic segment against a payload field always sees
// consistent values.
//
// Synthesize never fails. Unknown rules degrade to family defaults,
// missing mapping sources are logged and skipped, and unresolved
// placeholders stay literal in the topic, so one bad field never blocks a
// publish cycle.
package synthesizer
