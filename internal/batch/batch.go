// Package batch wraps cluster submission of the meeting pipeline. It
// validates inputs and upload credentials on the login node, before
// any compute time is spent.
package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/logger"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/scheduler"
	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/uploader"
)

// ErrAborted is returned when the operator declines to submit without
// an upload credential in place.
var ErrAborted = errors.New("submission aborted")

// Result describes a successful submission.
type Result struct {
	JobID   string
	LogPath string
}

// Runner validates and submits one meeting job.
type Runner struct {
	cfg       *config.Config
	tokens    uploader.TokenStore
	submitter scheduler.Submitter
	logger    logger.Logger

	stdin  io.Reader
	stdout io.Writer
}

func NewRunner(cfg *config.Config, tokens uploader.TokenStore, sub scheduler.Submitter, log logger.Logger) *Runner {
	return &Runner{
		cfg:       cfg,
		tokens:    tokens,
		submitter: sub,
		logger:    log,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
	}
}

// Run submits the pipeline for audioPath. A zero number means an
// unnumbered weekly meeting; an empty date defaults to today. The job
// runs unattended, so a missing upload token needs explicit
// confirmation here rather than failing hours later on a compute node.
func (r *Runner) Run(ctx context.Context, audioPath string, number int, date string) (*Result, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", date)
	}

	absAudio, err := filepath.Abs(audioPath)
	if err != nil {
		return nil, fmt.Errorf("resolve audio path: %w", err)
	}
	if _, err := os.Stat(absAudio); err != nil {
		return nil, fmt.Errorf("audio file not found: %s", audioPath)
	}

	script := r.cfg.ResolvePath(r.cfg.Slurm.Script)
	if _, err := os.Stat(script); err != nil {
		return nil, fmt.Errorf("batch script not found: %s", script)
	}

	if !r.tokens.Present() {
		fmt.Fprintln(r.stdout, "No upload credential found. The job will process the meeting but skip the upload.")
		fmt.Fprint(r.stdout, "Submit anyway? [y/N] ")
		if !r.confirm() {
			return nil, ErrAborted
		}
	}

	logDir := r.cfg.ResolvePath(r.cfg.Slurm.LogDir)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	pattern := filepath.Join(logDir, r.cfg.Slurm.JobName+"_%j.out")

	spec := scheduler.JobSpec{
		Script:  script,
		Name:    r.cfg.Slurm.JobName,
		LogPath: pattern,
		Args:    []string{absAudio, strconv.Itoa(number), date},
	}

	jobID, err := r.submitter.Submit(ctx, spec)
	if err != nil {
		return nil, err
	}

	return &Result{
		JobID:   jobID,
		LogPath: scheduler.LogPath(pattern, jobID),
	}, nil
}

// confirm reads one line from stdin. Anything but an explicit yes,
// including EOF, declines.
func (r *Runner) confirm() bool {
	line, err := bufio.NewReader(r.stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
