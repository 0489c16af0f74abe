package pipeline

import (
	"slices"
	"strings"

	"go.trai.ch/esb/internal/core/domain"
)

// Result is the outcome of one generated artifact.
type Result struct {
	// Kind is the request kind that produced the artifact.
	Kind domain.Kind
	// Source is the routing cache key or the translation catalog path.
	Source string
	// Output is the generated file path. It is empty when the worker was not reached.
	Output string
	// Outcome tells whether the output was written.
	Outcome domain.Outcome
	// Err is set when Outcome is OutcomeFailed.
	Err error
}

// Report collects the results of one generation run.
type Report struct {
	// Routing is the result of the routing task.
	Routing Result
	// TranslationsOutcome is the outcome of the translation task as a whole.
	TranslationsOutcome domain.Outcome
	// Translations holds one result per catalog, sorted by source.
	Translations []Result
}

// Results returns every result, routing first.
func (r *Report) Results() []Result {
	results := make([]Result, 0, len(r.Translations)+1)
	if r.Routing.Outcome != "" {
		results = append(results, r.Routing)
	}
	return append(results, r.Translations...)
}

// Failed returns the failed results.
func (r *Report) Failed() []Result {
	var failed []Result
	for _, result := range r.Results() {
		if !result.Outcome.IsSuccess() {
			failed = append(failed, result)
		}
	}
	return failed
}

// Count returns the number of results with the given outcome.
func (r *Report) Count(outcome domain.Outcome) int {
	n := 0
	for _, result := range r.Results() {
		if result.Outcome == outcome {
			n++
		}
	}
	return n
}

func (r *Report) sortTranslations() {
	slices.SortFunc(r.Translations, func(a, b Result) int {
		return strings.Compare(a.Source, b.Source)
	})
}
