// Package diagnostics verifies the host has everything the pipeline
// needs before any meeting is processed.
package diagnostics

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Komputerowe-Projektowanie-Lekow/sknwpl-meetings/internal/config"
)

// Status of a single check. Warn means the pipeline runs but a later
// step will be degraded or skipped.
type Status string

const (
	StatusOK   Status = "ok"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// Check is the outcome of probing one requirement.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Checker probes external tools and configured files. Lookup functions
// are fields so tests can run without the real tools installed.
type Checker struct {
	cfg      *config.Config
	lookPath func(string) (string, error)
	stat     func(string) (os.FileInfo, error)
}

func NewChecker(cfg *config.Config) *Checker {
	return &Checker{
		cfg:      cfg,
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// NewCheckerForTests creates a Checker with injected lookup functions.
func NewCheckerForTests(cfg *config.Config, lookPath func(string) (string, error), stat func(string) (os.FileInfo, error)) *Checker {
	return &Checker{cfg: cfg, lookPath: lookPath, stat: stat}
}

// Run executes every check and returns the results in a fixed order.
func (c *Checker) Run() []Check {
	return []Check{
		c.tool("ffmpeg"),
		c.tool("ffprobe"),
		c.whisper(),
		c.model(),
		c.file("background image", c.cfg.ResolvePath(c.cfg.Paths.Background), StatusFail),
		c.file("batch script", c.cfg.ResolvePath(c.cfg.Slurm.Script), StatusWarn),
		c.file("client secrets", c.cfg.ResolvePath(c.cfg.YouTube.ClientSecrets), StatusWarn),
		c.file("upload token", c.cfg.ResolvePath(c.cfg.YouTube.TokenFile), StatusWarn),
	}
}

// Healthy reports whether no check failed. Warnings do not count.
func Healthy(checks []Check) bool {
	for _, check := range checks {
		if check.Status == StatusFail {
			return false
		}
	}
	return true
}

func (c *Checker) tool(name string) Check {
	path, err := c.lookPath(name)
	if err != nil {
		return Check{Name: name, Status: StatusFail, Detail: "not found in PATH"}
	}
	return Check{Name: name, Status: StatusOK, Detail: path}
}

func (c *Checker) whisper() Check {
	binary := c.cfg.Whisper.BinaryPath
	if strings.ContainsRune(binary, os.PathSeparator) {
		if _, err := c.stat(binary); err != nil {
			return Check{Name: "whisper", Status: StatusFail, Detail: binary + " not found"}
		}
		return Check{Name: "whisper", Status: StatusOK, Detail: binary}
	}
	return c.tool(binary)
}

func (c *Checker) model() Check {
	modelDir := c.cfg.ResolvePath(c.cfg.Whisper.ModelDir)
	if _, err := c.stat(modelDir); err != nil {
		return Check{Name: "speech model", Status: StatusFail, Detail: "model dir " + modelDir + " not found"}
	}

	name := c.cfg.Whisper.Model
	if name == "" || name == "auto" {
		// Model is selected at runtime, only the directory is required
		return Check{Name: "speech model", Status: StatusOK, Detail: modelDir}
	}

	path := filepath.Join(modelDir, fmt.Sprintf("ggml-%s.bin", name))
	if _, err := c.stat(path); err != nil {
		return Check{Name: "speech model", Status: StatusFail, Detail: path + " not found"}
	}
	return Check{Name: "speech model", Status: StatusOK, Detail: path}
}

func (c *Checker) file(name, path string, missing Status) Check {
	if _, err := c.stat(path); err != nil {
		return Check{Name: name, Status: missing, Detail: path + " not found"}
	}
	return Check{Name: name, Status: StatusOK, Detail: path}
}
