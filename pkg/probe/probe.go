// Package probe answers "is this tool installed, and which version" by
// running the tool's version command. Results are cached per binary for the
// process lifetime; a failed probe means "not available", never an error.
package probe

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	goversion "github.com/hashicorp/go-version"

	"github.com/cachesweep/cachesweep/internal/logger"
)

// DefaultTimeout bounds a single probe subprocess.
const DefaultTimeout = 10 * time.Second

// versionRe extracts the first dotted version token from command output.
var versionRe = regexp.MustCompile(`v?(\d+\.\d+(?:\.\d+)?(?:[-+][0-9A-Za-z.-]+)?)`)

// ToolInfo describes a probed external tool.
type ToolInfo struct {
	Binary     string
	Path       string
	RawVersion string
	Version    *goversion.Version // nil when the output had no parseable version
}

// Prober runs and memoizes external tool probes.
type Prober struct {
	timeout time.Duration

	mu   sync.Mutex
	memo map[string]*ToolInfo // keyed by binary name, nil entry = probe failed
}

// New creates a prober with the given per-subprocess timeout. A non-positive
// timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Prober {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Prober{
		timeout: timeout,
		memo:    make(map[string]*ToolInfo),
	}
}

// Available reports whether the binary is on PATH.
func (p *Prober) Available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

// Probe locates the binary and runs its version command (args default to
// "--version"). The second return value is false when the tool is missing
// or the command failed.
func (p *Prober) Probe(ctx context.Context, binary string, args ...string) (*ToolInfo, bool) {
	p.mu.Lock()
	if cached, ok := p.memo[binary]; ok {
		p.mu.Unlock()
		return cached, cached != nil
	}
	p.mu.Unlock()

	info := p.probe(ctx, binary, args...)

	p.mu.Lock()
	p.memo[binary] = info
	p.mu.Unlock()

	return info, info != nil
}

// AtLeast reports whether the tool is available and its version is at least
// min. An unparseable version fails the gate.
func (p *Prober) AtLeast(ctx context.Context, binary, min string, args ...string) bool {
	info, ok := p.Probe(ctx, binary, args...)
	if !ok || info.Version == nil {
		return false
	}
	minVer, err := goversion.NewVersion(min)
	if err != nil {
		return false
	}
	return info.Version.GreaterThanOrEqual(minVer)
}

// Run executes the binary with the given args under the probe timeout and
// returns combined trimmed stdout. Used by cleaners that shell out for the
// actual cleanup (docker, brew).
func (p *Prober) Run(ctx context.Context, binary string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, binary, args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (p *Prober) probe(ctx context.Context, binary string, args ...string) *ToolInfo {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil
	}

	if len(args) == 0 {
		args = []string{"--version"}
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, args...).CombinedOutput()
	if err != nil {
		logger.Debug("Tool probe failed", logger.Fields{"binary": binary, "error": err.Error()})
		return nil
	}

	raw := strings.TrimSpace(string(out))
	info := &ToolInfo{
		Binary:     binary,
		Path:       path,
		RawVersion: raw,
	}
	if m := versionRe.FindStringSubmatch(raw); m != nil {
		if v, err := goversion.NewVersion(m[1]); err == nil {
			info.Version = v
		}
	}
	return info
}
