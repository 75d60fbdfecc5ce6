package winget

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single winget invocation.
const DefaultTimeout = 60 * time.Second

var (
	// ErrQuery is returned when winget exits unsuccessfully.
	ErrQuery = errors.New("winget query failed")

	// ErrNotInstalled is returned when the winget executable cannot be found.
	ErrNotInstalled = errors.New("winget executable not found")
)

// Querier issues package queries and returns the raw output lines.
type Querier interface {
	// Show returns the output of "winget show" for id.
	Show(ctx context.Context, id string) ([]string, error)
	// Versions returns the output of "winget show --versions" for id.
	Versions(ctx context.Context, id string) ([]string, error)
}

// Client runs the winget executable.
type Client struct {
	path    string
	timeout time.Duration
	source  string
}

// Option configures a Client.
type Option func(*Client)

// WithPath overrides the executable looked up on PATH.
func WithPath(path string) Option {
	return func(c *Client) { c.path = path }
}

// WithTimeout sets the per-invocation timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithSource restricts queries to one winget source (e.g. "winget").
func WithSource(source string) Option {
	return func(c *Client) { c.source = source }
}

// NewClient creates a Client. The executable defaults to "winget".
func NewClient(opts ...Option) *Client {
	c := &Client{path: "winget", timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Show implements Querier.
func (c *Client) Show(ctx context.Context, id string) ([]string, error) {
	return c.run(ctx, c.showArgs(id))
}

// Versions implements Querier.
func (c *Client) Versions(ctx context.Context, id string) ([]string, error) {
	return c.run(ctx, append(c.showArgs(id), "--versions"))
}

func (c *Client) showArgs(id string) []string {
	args := []string{"show", "--id", id, "--exact", "--accept-source-agreements", "--disable-interactivity"}
	if c.source != "" {
		args = append(args, "--source", c.source)
	}
	return args
}

func (c *Client) run(ctx context.Context, args []string) ([]string, error) {
	bin, err := exec.LookPath(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotInstalled, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrQuery, strings.Join(args, " "), ctx.Err())
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = lastLine(SplitLines(stdout.String()))
		}
		return nil, fmt.Errorf("%w: %s: %v: %s", ErrQuery, strings.Join(args, " "), err, msg)
	}
	return SplitLines(stdout.String()), nil
}

// SplitLines splits command output into lines, normalizing CRLF endings.
// Carriage returns inside a line (spinner frames) are kept for the parser.
func SplitLines(s string) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(s))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines
}

func lastLine(lines []string) string {
	for i := len(lines) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(lines[i]); s != "" {
			return s
		}
	}
	return ""
}

// Ensure Client implements Querier.
var _ Querier = (*Client)(nil)
