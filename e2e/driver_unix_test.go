//go:build e2e && unix

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const ringSize = 1 << 20 // 1 MiB of scrollback

var binPath = "lookup_e2e"

// Keys as a terminal sends them
const (
	KeyEnter    = "\r"
	KeyAltEnter = "\x1b\r"
	KeyEsc      = "\x1b"
	KeyCtrlC    = "\x03"
	KeyDown     = "\x1b[B"
	KeyUp       = "\x1b[A"
	KeyQuit     = "q"
)

// ANSI escape sequences stripped before matching plain text
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?<]*[ -/]*[@-~])|` + // CSI
		`(?:\x1b\][^\x07]*\x07)|` + // OSC
		`(?:\x1b[\(\)][A-Za-z])|` + // charset
		`(?:\x1b=|\x1b>)|` + // keypad mode
		`\r`,
)

// ring keeps the last ringSize bytes written to it
type ring struct {
	mu   sync.Mutex
	buf  []byte
	head int
	full bool
}

func newRing() *ring {
	return &ring{buf: make([]byte, ringSize)}
}

func (r *ring) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range p {
		r.buf[r.head] = b
		r.head = (r.head + 1) % ringSize
		if r.head == 0 {
			r.full = true
		}
	}
	return len(p), nil
}

func (r *ring) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.full {
		return string(r.buf[:r.head])
	}
	out := make([]byte, 0, ringSize)
	out = append(out, r.buf[r.head:]...)
	out = append(out, r.buf[:r.head]...)
	return string(out)
}

// TUITestFramework runs lookup in a pseudo terminal and records what it draws
type TUITestFramework struct {
	t         *testing.T
	pty       *os.File
	cmd       *exec.Cmd
	out       *ring
	workspace string
	exited    chan error
}

// NewTUITest creates a new TUI test framework instance
func NewTUITest(t *testing.T) *TUITestFramework {
	return &TUITestFramework{t: t, out: newRing()}
}

// StartApp launches lookup with args on a 120x40 pty
func (tf *TUITestFramework) StartApp(args ...string) error {
	dir, err := os.MkdirTemp("", "lookup-e2e-")
	if err != nil {
		return err
	}
	tf.workspace = dir

	tf.cmd = exec.Command(binPath, args...)
	tf.cmd.Dir = dir
	tf.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+dir,            // isolate $HOME
		"XDG_CONFIG_HOME="+dir, // no user config.toml
	)

	f, err := pty.StartWithSize(tf.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("failed to start on pty: %w", err)
	}
	tf.pty = f

	tf.exited = make(chan error, 1)
	go func() {
		// EIO once the child closes its side
		_, _ = io.Copy(tf.out, f)
	}()
	go func() {
		tf.exited <- tf.cmd.Wait()
	}()
	return nil
}

// SendKeys writes raw keystrokes
func (tf *TUITestFramework) SendKeys(keys string) error {
	tf.t.Helper()
	_, err := tf.pty.Write([]byte(keys))
	return err
}

// Type sends text one rune at a time
func (tf *TUITestFramework) Type(text string) error {
	tf.t.Helper()
	for _, r := range text {
		if err := tf.SendKeys(string(r)); err != nil {
			return err
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func (tf *TUITestFramework) Enter() error { return tf.SendKeys(KeyEnter) }
func (tf *TUITestFramework) Down() error { return tf.SendKeys(KeyDown) }
func (tf *TUITestFramework) Back() error { return tf.SendKeys(KeyEsc) }
func (tf *TUITestFramework) Quit() error { return tf.SendKeys(KeyQuit) }
func (tf *TUITestFramework) SendCtrlC() error { return tf.SendKeys(KeyCtrlC) }

// Wait returns the exit code once the process ends
func (tf *TUITestFramework) Wait(timeout time.Duration) (int, error) {
	tf.t.Helper()
	select {
	case err := <-tf.exited:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, err
	case <-time.After(timeout):
		tf.DumpTailOnFail(tf.t, "wait-timeout", 4096)
		return -1, fmt.Errorf("app did not exit within %s", timeout)
	}
}

// Ready waits for the first frame showing text
func (tf *TUITestFramework) Ready(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 5*time.Second)
}

// SeePlain waits for text to appear once escape sequences are stripped
func (tf *TUITestFramework) SeePlain(text string) bool {
	tf.t.Helper()
	return tf.OutputContainsPlain(text, 3*time.Second)
}

// OutputContainsPlain waits up to timeout for text in the stripped output
func (tf *TUITestFramework) OutputContainsPlain(text string, timeout time.Duration) bool {
	tf.t.Helper()
	return tf.WaitFor(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), text)
	}, timeout)
}

// WaitFor polls the raw output until pred holds or timeout passes
func (tf *TUITestFramework) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	tf.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(tf.Snapshot()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Snapshot returns everything drawn so far
func (tf *TUITestFramework) Snapshot() string {
	return tf.out.String()
}

// SnapshotPlain is Snapshot without escape sequences
func (tf *TUITestFramework) SnapshotPlain() string {
	return ansiRe.ReplaceAllString(tf.Snapshot(), "")
}

// DumpTailOnFail saves the last n bytes of plain output for debugging
func (tf *TUITestFramework) DumpTailOnFail(t *testing.T, name string, n int) {
	s := tf.SnapshotPlain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	p := filepath.Join(t.TempDir(), name+".txt")
	_ = os.WriteFile(p, []byte(s), 0644)
	t.Logf("Saved tail to %s", p)
}

// Cleanup closes the pty and kills the process if it is still running
func (tf *TUITestFramework) Cleanup() {
	if tf.pty != nil {
		_ = tf.pty.Close()
		tf.pty = nil
	}
	if tf.cmd != nil && tf.cmd.Process != nil {
		_ = tf.cmd.Process.Kill()
		tf.cmd = nil
	}
	if tf.workspace != "" {
		_ = os.RemoveAll(tf.workspace)
		tf.workspace = ""
	}
}
