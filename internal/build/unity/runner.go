package unity

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"
)

// Outcome classifies a compile attempt. A failed or unavailable compiler is
// an expected condition, not an error: the caller decides whether to fall
// back to placeholder artifacts.
type Outcome int

const (
	// OutcomeBuilt means the engine produced a playable WebGL bundle.
	OutcomeBuilt Outcome = iota
	// OutcomeUnavailable means no engine binary is configured or present.
	OutcomeUnavailable
	// OutcomeFailed means the engine ran but did not produce a valid bundle.
	OutcomeFailed
)

// InvokeResult reports how a compile attempt ended.
type InvokeResult struct {
	Outcome Outcome
	Reason  string
	LogPath string
}

// Runner invokes the Unity editor in batch mode to compile a staged project
// into a WebGL bundle.
type Runner struct {
	unityPath string
	skip      bool
	timeout   time.Duration
}

// NewRunner creates a runner. If skip is true or unityPath is empty the
// runner reports OutcomeUnavailable without launching anything.
func NewRunner(unityPath string, skip bool, timeout time.Duration) *Runner {
	return &Runner{unityPath: unityPath, skip: skip, timeout: timeout}
}

// Compile runs the engine against projectDir and writes the WebGL bundle to
// outputDir. The engine log goes to logPath. The invocation is bounded by the
// runner's timeout on top of whatever deadline ctx already carries.
func (r *Runner) Compile(ctx context.Context, projectDir, outputDir, logPath string) InvokeResult {
	if r.skip {
		return InvokeResult{Outcome: OutcomeUnavailable, Reason: "engine invocation disabled by configuration"}
	}
	if r.unityPath == "" {
		return InvokeResult{Outcome: OutcomeUnavailable, Reason: "no engine binary configured"}
	}
	if _, err := os.Stat(r.unityPath); err != nil {
		return InvokeResult{Outcome: OutcomeUnavailable, Reason: fmt.Sprintf("engine binary not found at %s", r.unityPath)}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.unityPath,
		"-batchmode",
		"-nographics",
		"-quit",
		"-projectPath", projectDir,
		"-executeMethod", "BuildScript.BuildWebGL",
		"-buildDir", outputDir,
		"-logFile", logPath,
	)

	if err := cmd.Run(); err != nil {
		reason := fmt.Sprintf("engine exited with error: %v", err)
		if ctx.Err() == context.DeadlineExceeded {
			reason = fmt.Sprintf("engine timed out after %s", r.timeout)
		}
		return InvokeResult{Outcome: OutcomeFailed, Reason: reason, LogPath: logPath}
	}

	// A zero exit code is not proof of a bundle; verify the entry point.
	if _, err := os.Stat(filepath.Join(outputDir, "index.html")); err != nil {
		return InvokeResult{Outcome: OutcomeFailed, Reason: "engine finished but produced no index.html", LogPath: logPath}
	}

	return InvokeResult{Outcome: OutcomeBuilt, LogPath: logPath}
}
