package scheduler

import (
	"context"
	"errors"
)

// ErrNoJobID marks a submission that produced no job identifier. It
// happens before any job runs, so it is reported distinctly from
// runtime failures.
var ErrNoJobID = errors.New("scheduler returned no job id")

// JobState is the scheduler-side lifecycle of a submitted job. Only
// the submitted transition is observed here; later states belong to
// the scheduler's own status commands.
type JobState string

const (
	JobStateSubmitted JobState = "submitted"
	JobStateRunning   JobState = "running"
	JobStateCompleted JobState = "completed"
	JobStateFailed    JobState = "failed"
)

// JobSpec describes one batch job to submit.
type JobSpec struct {
	Script  string   // scheduler definition file
	Name    string   // job name
	LogPath string   // output pattern, %j expands to the job id
	Args    []string // positional arguments passed to the script
}

// Submitter hands a job to the cluster scheduler and returns its id.
type Submitter interface {
	Submit(ctx context.Context, spec JobSpec) (string, error)
}
