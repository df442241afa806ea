// Package subshell provides a simplified interface for running commands
// through a POSIX shell.
package subshell

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// Result holds the outcome of one executed command.
type Result struct {
	Cmd      string // the command line as given
	Stdout   string // captured stdout ("" when capture is disabled)
	Stderr   string // captured stderr ("" when capture is disabled)
	ExitCode int
}

// Options control how commands are executed.
type Options struct {
	// CaptureOutput buffers stdout/stderr into the Result. Disable it for
	// commands that prompt for input that cannot be suppressed, like a
	// password prompt.
	CaptureOutput bool
	// Dir sets the working directory, as if `cd` ran before the command.
	Dir string
	// Logger receives debug traces of every executed command. Nil disables
	// tracing.
	Logger *log.Logger
}

// Run executes cmd through `sh -c`. A non-zero exit status is reported in the
// Result, not as an error; the error return covers failures to start the
// process at all.
func Run(cmd string, opts Options) (Result, error) {
	c := exec.Command("sh", "-c", cmd)
	c.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	if opts.CaptureOutput {
		c.Stdout = &stdout
		c.Stderr = &stderr
	} else {
		c.Stdout = os.Stdout
		c.Stderr = os.Stderr
		c.Stdin = os.Stdin
	}

	err := c.Run()
	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return Result{}, err
		}
		exitCode = exitErr.ExitCode()
	}

	res := Result{
		Cmd:      cmd,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
	debugResult(opts, res)
	return res, nil
}

// RunChain runs commands in sequence. `cd ` prefixed commands are handled
// specially: they only change the working directory for subsequent commands
// and synthesize a zero-exit Result so callers do not have to count them.
//
// With failFast set, execution stops after the first command that exits
// non-zero; the caller can identify it from the length of the returned slice
// and the Cmd of its last element.
func RunChain(cmds []string, opts Options, failFast bool) ([]Result, error) {
	results := make([]Result, 0, len(cmds))
	for _, cmd := range cmds {
		if dir, ok := strings.CutPrefix(cmd, "cd "); ok {
			opts.Dir = dir
			if opts.Logger != nil {
				opts.Logger.Debugf("chained command cd'd into: %s", dir)
			}
			results = append(results, Result{Cmd: cmd})
			continue
		}
		res, err := Run(cmd, opts)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if failFast && res.ExitCode != 0 {
			if opts.Logger != nil {
				opts.Logger.Errorf("command in critical chain returned an error: %s", cmd)
			}
			break
		}
	}
	return results, nil
}

func debugResult(opts Options, res Result) {
	if opts.Logger == nil {
		return
	}
	opts.Logger.Debugf("executed: %s", res.Cmd)
	if opts.Dir != "" {
		opts.Logger.Debugf("  |- executed in directory: %s", opts.Dir)
	}
	if res.Stdout != "" {
		opts.Logger.Debugf("  |- STDOUT: %s", res.Stdout)
	}
	if res.Stderr != "" {
		opts.Logger.Debugf("  |- STDERR: %s", res.Stderr)
	}
}
