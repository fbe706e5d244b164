// Package shell runs package build commands as child processes.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/nexon/internal/core/domain"
	"go.trai.ch/nexon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.BuildExecutor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute splits the command line into words, runs it and waits for it to complete.
// Output is copied to stdout and stderr and logged line by line.
func (e *Executor) Execute(
	ctx context.Context,
	cmd domain.BuildCommand,
	env []string,
	stdout, stderr io.Writer,
) error {
	args, err := shellquote.Split(cmd.Line)
	if err != nil {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrBuildFailed, "unparseable command line"), "command", cmd.Line),
			"package", cmd.Package.String())
	}
	if len(args) == 0 {
		return nil
	}

	stdoutLog := &logWriter{logger: e.logger, level: "info"}
	stderrLog := &logWriter{logger: e.logger, level: "error"}
	defer func() {
		_ = stdoutLog.Close()
		_ = stderrLog.Close()
	}()

	cmdEnv := resolveEnvironment(os.Environ(), env)

	name := args[0]
	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, args[1:]...) //nolint:gosec // build commands come from package specs
	c.Args[0] = name
	c.Dir = cmd.Dir
	c.Env = cmdEnv
	c.Stdout = io.MultiWriter(stdoutLog, writerOrDiscard(stdout))
	c.Stderr = io.MultiWriter(stderrLog, writerOrDiscard(stderr))

	if err := c.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "command", cmd.Line)
	}
	return nil
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if w.level == "info" {
		w.logger.Info(msg)
	} else {
		w.logger.Error(zerr.New(msg))
	}
}

// resolveEnvironment overlays the build environment on the process environment.
// The result is sorted so child processes see a deterministic environment.
func resolveEnvironment(sysEnv, buildEnv []string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(buildEnv))
	for _, entries := range [][]string{sysEnv, buildEnv} {
		for _, entry := range entries {
			if k, v, ok := strings.Cut(entry, "="); ok && k != "" {
				envMap[k] = v
			}
		}
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

// lookPath searches for an executable in the directories named by PATH in env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
