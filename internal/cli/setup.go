// Package cli wires configuration, console UI and the operation log together
// and runs the interactive editing menu on top of them.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/zoro11031/textedit/internal/config"
	"github.com/zoro11031/textedit/internal/oplog"
	"github.com/zoro11031/textedit/internal/textfile"
	"github.com/zoro11031/textedit/internal/ui"
)

// Prompter reads a line of input from the user
type Prompter interface {
	PromptInput(prompt, defaultValue string) (string, error)
}

// Options controls how a Context is built
type Options struct {
	ConfigPath string // empty selects ~/.textedit.conf
	LogPath    string // overrides LOG_FILE when set
}

// Context holds all dependencies needed by the menu and commands
type Context struct {
	Config *config.Config
	UI     *ui.UI
	Log    *oplog.Registry
	Prompt Prompter
}

// NewContext creates a Context with all dependencies initialized
func NewContext(opts Options) (*Context, error) {
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logPath, err := cfg.LogPath(opts.LogPath)
	if err != nil {
		return nil, err
	}

	uiInstance := ui.New()
	uiInstance.SetNonInteractive(!isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()))

	return &Context{
		Config: cfg,
		UI:     uiInstance,
		Log:    oplog.NewRegistry(logPath),
		Prompt: newPrompter(uiInstance, os.Stdin),
	}, nil
}

// newPrompter uses survey prompts on a terminal and reads plain lines from
// stdin otherwise
func newPrompter(u *ui.UI, stdin io.Reader) Prompter {
	if u.IsNonInteractive() {
		return u.NewLinePrompter(stdin)
	}
	return u
}

// OpenEditor opens path and wraps it so every operation is logged
func (c *Context) OpenEditor(path string) (textfile.Editor, error) {
	m, err := textfile.Open(path)
	if err != nil {
		return nil, err
	}
	return textfile.WithLogging(m, c.Log), nil
}

// Close releases the operation log sinks
func (c *Context) Close() error {
	return c.Log.Close()
}
