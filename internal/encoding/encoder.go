package encoding

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Encoder encodes a single job.
type Encoder interface {
	Encode(ctx context.Context, job Job) error
}

// EncoderFunc adapts a function to the Encoder interface.
type EncoderFunc func(ctx context.Context, job Job) error

func (f EncoderFunc) Encode(ctx context.Context, job Job) error { return f(ctx, job) }

// Preview writes the command line each job would run instead of running it.
type Preview struct {
	mu     sync.Mutex
	w      io.Writer
	binary string
}

// NewPreview returns a dry-run encoder that renders commands for binary.
func NewPreview(w io.Writer, binary string) *Preview {
	if binary == "" {
		binary = "HandBrakeCLI"
	}
	return &Preview{w: w, binary: binary}
}

func (p *Preview) Encode(ctx context.Context, job Job) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, err := fmt.Fprintln(p.w, CommandLine(p.binary, job)); err != nil {
		return fmt.Errorf("write preview: %w", err)
	}
	return nil
}

// CommandLine renders binary and the job's arguments as a POSIX shell command.
func CommandLine(binary string, job Job) string {
	args := append([]string{binary}, HandBrakeArgs(job)...)
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = shellQuote(arg)
	}
	return strings.Join(quoted, " ")
}

func shellQuote(s string) string {
	if s == "" {
		return "''"
	}
	if !strings.ContainsAny(s, " \t\n'\"\\$`!*?[](){};&|<>#~") {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
