package scheduler

import (
	"context"
	"fmt"
	"strings"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/pkg/executor"
)

type implSubmitter struct {
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Submitter backed by sbatch.
func New(exec executor.Executor, log logger.Logger) Submitter {
	return &implSubmitter{
		executor: exec,
		logger:   log,
	}
}

// Submit runs sbatch --parsable and returns the job id printed on
// stdout. An empty or non-numeric id is ErrNoJobID.
func (s *implSubmitter) Submit(ctx context.Context, spec JobSpec) (string, error) {
	args := []string{"--parsable"}
	if spec.Name != "" {
		args = append(args, "--job-name", spec.Name)
	}
	if spec.LogPath != "" {
		args = append(args, "--output", spec.LogPath)
	}
	args = append(args, spec.Script)
	args = append(args, spec.Args...)

	s.logger.Debug(ctx, "sbatch %s", strings.Join(args, " "))

	out, err := s.executor.Execute(ctx, "sbatch", args...)
	if err != nil {
		return "", fmt.Errorf("sbatch submit: %w", err)
	}

	jobID := strings.TrimSpace(out)
	// --parsable prints "jobid;cluster" on federated clusters
	if idx := strings.IndexByte(jobID, ';'); idx >= 0 {
		jobID = jobID[:idx]
	}

	if !isJobID(jobID) {
		return "", fmt.Errorf("%w (sbatch output: %q)", ErrNoJobID, strings.TrimSpace(out))
	}

	s.logger.Info(ctx, "Job %s submitted", jobID)
	return jobID, nil
}

// LogPath expands the %j placeholder once the job id is known.
func LogPath(pattern, jobID string) string {
	return strings.ReplaceAll(pattern, "%j", jobID)
}

func isJobID(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
