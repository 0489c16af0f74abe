// Package symfony runs the Symfony console of the bridged project.
package symfony

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/esb/internal/core/domain"
	"go.trai.ch/esb/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Console = (*Console)(nil)

// Console implements ports.Console by executing the configured console command.
type Console struct {
	logger ports.Logger
}

// NewConsole creates a new Console.
func NewConsole(logger ports.Logger) *Console {
	return &Console{logger: logger}
}

// QueryRouting returns the router dump. PHP serializes an empty route
// collection as an array, which is normalized to an empty JSON object.
func (c *Console) QueryRouting(ctx context.Context, opts domain.Options) (string, error) {
	out, err := c.run(ctx, opts, "debug:router", "--format=json")
	if err != nil {
		return "", err
	}

	content := strings.TrimSpace(string(out))
	if !strings.HasPrefix(content, "{") {
		return "{}", nil
	}
	return content, nil
}

// DumpTranslations runs the BazingaJsTranslationBundle dump into the output folder.
func (c *Console) DumpTranslations(ctx context.Context, opts domain.Options) error {
	_, err := c.run(ctx, opts, "bazinga:js-translation:dump", opts.Path(opts.OutputFolder))
	return err
}

// QueryParameter returns a container parameter. Missing, null and empty values yield nil.
func (c *Console) QueryParameter(ctx context.Context, opts domain.Options, name string) (*string, error) {
	out, err := c.run(ctx, opts, "debug:container", "--parameter="+name, "--format=json")
	if err != nil {
		return nil, err
	}

	var params map[string]json.RawMessage
	if err := json.Unmarshal(out, &params); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConsoleOutputInvalid.Error()), "parameter", name)
	}

	raw, ok := params[name]
	if !ok {
		return nil, nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConsoleOutputInvalid.Error()), "parameter", name)
	}

	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return &v, nil
	default:
		s := string(raw)
		return &s, nil
	}
}

// HasService reports whether the container knows the service id.
// A console that runs but rejects the id means the service is absent.
func (c *Console) HasService(ctx context.Context, opts domain.Options, id string) (bool, error) {
	_, err := c.run(ctx, opts, "debug:container", id, "--format=json")
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

// run executes the console with args and the environment matching the build mode.
func (c *Console) run(ctx context.Context, opts domain.Options, args ...string) ([]byte, error) {
	argv, err := shellquote.Split(opts.ConsoleCommand)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommand.Error()), "command", opts.ConsoleCommand)
	}
	if len(argv) == 0 {
		return nil, zerr.With(domain.ErrInvalidCommand, "command", opts.ConsoleCommand)
	}

	// A relative script path such as bin/console is resolved against the project root.
	if !filepath.IsAbs(argv[0]) && strings.ContainsRune(argv[0], '/') {
		argv[0] = opts.Path(argv[0])
	}

	argv = append(argv, args...)
	argv = append(argv, "--env="+opts.ConsoleEnv())

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = opts.Path(".")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	command := shellquote.Join(argv...)
	c.logger.Debug("running " + command)

	if err := cmd.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrConsoleFailed.Error()), "command", command)
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return nil, wrapped
	}

	return stdout.Bytes(), nil
}
