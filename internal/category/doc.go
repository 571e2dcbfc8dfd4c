// Package category assigns labels to events through an ordered,
// multi-category rule set.
//
// Rules come from a YAML file with a categories list. Each rule has a name,
// a priority (lower evaluates first, missing means last), and a list of
// field patterns matched with OR semantics. An event collects every matching
// rule's name; events nothing matches get the Uncategorized sentinel.
package category
