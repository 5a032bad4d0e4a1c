package ansible

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/imamik/provkit/internal/features"
)

// maxLineSize bounds a single streamed output line (1 MiB).
const maxLineSize = 1 << 20

// Runner invokes ansible-playbook and streams its combined output line by
// line to a caller-supplied sink. Execution is synchronous: Run blocks until
// the child exits and the child's exit code is the only success signal.
type Runner struct {
	// Program is the binary to invoke. Defaults to ansible-playbook;
	// overridable in tests.
	Program string

	// Playbook is the playbook file argument.
	Playbook string

	// Dir is the working directory for the child. Empty means inherit.
	Dir string

	// Env holds additional environment entries (e.g. SSH_AUTH_SOCK=...).
	// ANSIBLE_NOCOLOR=1 is always set.
	Env []string
}

// NewRunner returns a Runner for the given playbook file.
func NewRunner(playbook string) *Runner {
	if playbook == "" {
		playbook = DefaultPlaybook
	}
	return &Runner{Program: Program, Playbook: playbook}
}

// Run executes the playbook with the given extra variables. Each cleaned
// output line (stdout and stderr merged) is passed to sink before Run
// returns. The returned code is the child's exit code; a non-zero code is
// reported through the code, not the error. The error covers spawn and I/O
// failures only. Cancelling the context kills the child.
func (r *Runner) Run(ctx context.Context, vars []features.Var, sink func(line string)) (int, error) {
	program := r.Program
	if program == "" {
		program = Program
	}

	// #nosec G204 - program is a fixed tool name, args are assembled key=value pairs
	cmd := exec.CommandContext(ctx, program, Args(r.Playbook, vars)...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "ANSIBLE_NOCOLOR=1")
	cmd.Env = append(cmd.Env, r.Env...)

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return -1, fmt.Errorf("failed to start %s: %w (is Ansible installed?)", program, err)
	}

	drained := make(chan struct{})
	go func() {
		defer close(drained)
		scanner := bufio.NewScanner(pr)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			if line, ok := CleanLine(scanner.Text()); ok && sink != nil {
				sink(line)
			}
		}
	}()

	err := cmd.Wait()
	pw.Close()
	<-drained
	pr.Close()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if ctx.Err() != nil {
				return exitErr.ExitCode(), ctx.Err()
			}
			return exitErr.ExitCode(), nil
		}
		return -1, fmt.Errorf("waiting for %s: %w", program, err)
	}
	return 0, nil
}
