package worker

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Transpiler     = (*Process)(nil)
	_ ports.WorkerLauncher = (*Launcher)(nil)
)

// Launcher starts worker processes from the configured worker command.
type Launcher struct {
	logger ports.Logger
}

// NewLauncher creates a Launcher logging worker diagnostics to logger.
func NewLauncher(logger ports.Logger) *Launcher {
	return &Launcher{logger: logger}
}

// Launch implements ports.WorkerLauncher.
func (l *Launcher) Launch(ctx context.Context, opts domain.Options) (ports.Transpiler, error) {
	return Start(ctx, opts.WorkerCommand, opts.Path("."), l.logger)
}

// Process is a worker subprocess speaking the protocol over its stdin and stdout.
// Its stderr is forwarded to the logger.
type Process struct {
	*Client

	cmd     *exec.Cmd
	stderr  *logWriter
	exited  chan struct{}
	waitErr error
}

// Start launches command in dir. The process outlives ctx; it is stopped by Close.
func Start(ctx context.Context, command, dir string, logger ports.Logger) (*Process, error) {
	args, err := shellquote.Split(command)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommand.Error()), "command", command)
	}
	if len(args) == 0 {
		return nil, zerr.With(domain.ErrInvalidCommand, "command", command)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cmd := exec.Command(args[0], args[1:]...) //nolint:gosec // user provided command
	cmd.Dir = dir

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWorkerSpawnFailed.Error())
	}

	// exec copies stdout into the pipe and Wait returns only once the copy is
	// done, so closing the writer after Wait never truncates a response.
	stdoutReader, stdoutWriter := io.Pipe()
	cmd.Stdout = stdoutWriter

	stderr := &logWriter{logger: logger, prefix: "worker: "}
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrWorkerSpawnFailed.Error()), "command", command)
	}

	p := &Process{
		Client: NewClient(stdoutReader, stdin, logger),
		cmd:    cmd,
		stderr: stderr,
		exited: make(chan struct{}),
	}

	go func() {
		p.waitErr = cmd.Wait()
		_ = stderr.Close()
		_ = stdoutWriter.Close()
		close(p.exited)
	}()

	logger.Debug("started worker: " + command)

	return p, nil
}

// Close closes the worker's stdin and waits for it to exit. If ctx ends first
// the process is killed.
func (p *Process) Close(ctx context.Context) error {
	closeErr := p.Client.Close(ctx)

	select {
	case <-p.exited:
	case <-ctx.Done():
		_ = p.cmd.Process.Kill()
		<-p.exited
		return zerr.Wrap(ctx.Err(), "killed worker after shutdown timeout")
	}

	var exitErr *exec.ExitError
	if p.waitErr != nil && !errors.As(p.waitErr, &exitErr) {
		return zerr.Wrap(p.waitErr, "worker exited abnormally")
	}
	if exitErr != nil {
		return zerr.With(zerr.Wrap(exitErr, "worker exited with failure"), "exit_code", exitErr.ExitCode())
	}

	return closeErr
}

// Exited is closed once the worker process has terminated.
func (p *Process) Exited() <-chan struct{} {
	return p.exited
}
