package domain

// Outcome describes how a generation task or a single generated file ended.
type Outcome string

const (
	// OutcomeSkipped indicates the task is disabled by the options.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeCached indicates the source content is unchanged since the last successful run.
	OutcomeCached Outcome = "cached"
	// OutcomeUnchanged indicates the worker produced output identical to the file on disk.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeWritten indicates the output file was created or replaced.
	OutcomeWritten Outcome = "written"
	// OutcomeFailed indicates the task failed and the output was left untouched.
	OutcomeFailed Outcome = "failed"
)

// IsSuccess reports whether the outcome leaves the output up to date.
func (o Outcome) IsSuccess() bool {
	return o != OutcomeFailed
}
