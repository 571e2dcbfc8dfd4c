// Package query selects and orders event collections: structured predicate
// filtering, glob/regex field search, and stable multi-key sorting.
//
// Filter compiles a small comparison-and-connective expression language
// rather than exposing a general evaluator; an invalid expression is
// surfaced as a filter error and the caller chooses whether to fall back to
// the unfiltered collection.
package query
