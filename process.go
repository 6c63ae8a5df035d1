package pdfpress

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"sync"

	"github.com/pressworks/pdfpress/enginelog"
)

// engineProcess is one running engine instance with its three redirected
// streams. One instance exists per conversion call; it is never reused.
type engineProcess struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout io.ReadCloser
	stderr io.ReadCloser
}

// launch starts the engine with the assembled argument vector. The vector is
// passed to the OS as argv, with no shell in between. Start failures surface
// as *LaunchError; a missing or non-executable binary also carries
// [ErrUnavailable] in the chain.
func launch(ctx context.Context, inv *Invocation) (*engineProcess, error) {
	path := inv.Path()
	resolved, err := exec.LookPath(path)
	if err != nil {
		return nil, &LaunchError{Path: path, Err: fmt.Errorf("%w: %w", ErrUnavailable, err)}
	}

	args := inv.Args()
	cmd := exec.CommandContext(ctx, resolved, args[1:]...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, &LaunchError{Path: path, Err: fmt.Errorf("stdin pipe: %w", err)}
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, &LaunchError{Path: path, Err: fmt.Errorf("stdout pipe: %w", err)}
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, &LaunchError{Path: path, Err: fmt.Errorf("stderr pipe: %w", err)}
	}

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Path: path, Err: err}
	}
	return &engineProcess{cmd: cmd, stdin: stdin, stdout: stdout, stderr: stderr}, nil
}

// pump drives all three pipes concurrently until the engine exits:
// the input payload is written to stdin and the pipe closed (closed
// immediately when input is nil), stdout is streamed to output as bytes
// arrive, and stderr is parsed line by line through enginelog. The three
// transfers must not serialize: OS pipe buffers are bounded, and the engine
// interleaves reading stdin with writing both output streams, so a blocking
// single-threaded order can deadlock once any buffer fills.
//
// stdin and stdout each get a goroutine; stderr is parsed on the calling
// goroutine. All transfers are joined before the process is waited on.
func (p *engineProcess) pump(ctx context.Context, input io.Reader, output io.Writer) (*enginelog.Result, error) {
	var wg sync.WaitGroup
	var copyErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		if input != nil {
			// A write failure here means the engine stopped reading,
			// which the structured log will explain; the error itself
			// carries no extra information.
			_, _ = io.Copy(p.stdin, input)
		}
		_ = p.stdin.Close()
	}()
	go func() {
		defer wg.Done()
		_, copyErr = io.Copy(output, p.stdout)
		if copyErr != nil {
			// The sink failed, but stdout still needs a reader: with the
			// pipe buffer full the engine would block mid-write and never
			// reach its fin line. Drain the rest and report the first error.
			_, _ = io.Copy(io.Discard, p.stdout)
		}
	}()

	res, parseErr := enginelog.Parse(p.stderr)
	// The parser stops at the fin line; keep draining so the engine cannot
	// block on a full stderr buffer while flushing its output.
	_, _ = io.Copy(io.Discard, p.stderr)

	wg.Wait()
	// Exit status is deliberately not consulted: an unsuccessful engine run
	// reports itself through fin|failure, and a crash without a fin line
	// already reads as failure.
	_ = p.cmd.Wait()

	if err := ctx.Err(); err != nil {
		return res, err
	}
	if parseErr != nil {
		return res, fmt.Errorf("pdfpress: read engine log: %w", parseErr)
	}
	if copyErr != nil {
		return res, fmt.Errorf("pdfpress: write output: %w", copyErr)
	}
	return res, nil
}
