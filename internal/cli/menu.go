package cli

import (
	"errors"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/zoro11031/textedit/internal/common"
	"github.com/zoro11031/textedit/internal/config"
	"github.com/zoro11031/textedit/internal/textfile"
)

// state of the interactive menu
type state int

const (
	stateSelectingFile state = iota
	stateReady
	stateExited
)

// Menu choices
const (
	choiceRead   = "1"
	choiceWrite  = "2"
	choiceAppend = "3"
	choiceChange = "4"
	choiceExit   = "exit"
)

// Menu provides the interactive editing loop
type Menu struct {
	ctx         *Context
	editor      textfile.Editor
	initialPath string
}

// NewMenu creates a new Menu instance
func NewMenu(ctx *Context) *Menu {
	return &Menu{ctx: ctx}
}

// SetInitialPath makes the first file selection try path before prompting
func (m *Menu) SetInitialPath(path string) {
	m.initialPath = path
}

// Show runs the menu until the user exits. Operation failures are reported
// and never end the loop; only a failing prompt does.
func (m *Menu) Show() error {
	m.ctx.UI.Info("Program launched")
	m.ctx.UI.Infof("Log path: %s", m.ctx.Log.Path())

	st := stateSelectingFile
	for st != stateExited {
		var err error
		switch st {
		case stateSelectingFile:
			st, err = m.selectFile()
		case stateReady:
			st, err = m.prompt()
		}
		if err != nil {
			if !isEndOfInput(err) {
				return err
			}
			st = stateExited
		}
	}

	m.ctx.UI.Print("Bye!")
	return nil
}

// isEndOfInput reports whether err means the user closed input or pressed Ctrl-C
func isEndOfInput(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, io.EOF)
}

// selectFile asks for a path until one exists
func (m *Menu) selectFile() (state, error) {
	for {
		path := common.NormalizePath(m.initialPath)
		m.initialPath = ""

		if path == "" {
			input, err := m.ctx.Prompt.PromptInput("Enter file path (example, my_notes.txt):", "")
			if err != nil {
				return stateSelectingFile, err
			}
			path = common.NormalizePath(input)
		}

		if err := common.ValidateFilePath(path); err != nil {
			m.ctx.UI.Errorf("File path rejected: %v", err)
			continue
		}

		editor, err := m.ctx.OpenEditor(path)
		if err != nil {
			m.ctx.UI.Errorf("Error: %v", err)
			m.ctx.UI.Info("Try another file path.")
			continue
		}

		m.editor = editor
		m.ctx.UI.Successf("Successfully connected to '%s'", path)
		if err := m.ctx.Config.Set(config.KeyLastFile, path); err != nil {
			m.ctx.UI.Warningf("Failed to remember last file: %v", err)
		}
		return stateReady, nil
	}
}

// prompt displays the menu, reads one choice and performs it
func (m *Menu) prompt() (state, error) {
	m.displayMenu()

	choice, err := m.ctx.Prompt.PromptInput("Your choice:", "")
	if err != nil {
		return stateReady, err
	}

	next, err := m.handleChoice(strings.TrimSpace(choice))
	if err != nil {
		if isEndOfInput(err) {
			return stateReady, err
		}
		m.reportFailure(err)
		return stateReady, nil
	}
	return next, nil
}

// displayMenu displays the action menu
func (m *Menu) displayMenu() {
	m.ctx.UI.Header("ACTION MENU")
	m.ctx.UI.Infof("Current file: %s", m.editor.Path())
	m.ctx.UI.Print("")
	m.ctx.UI.Option(choiceRead, "Read file")
	m.ctx.UI.Option(choiceWrite, "Rewrite file")
	m.ctx.UI.Option(choiceAppend, "Add to file")
	m.ctx.UI.Option(choiceChange, "Change file/file path")
	m.ctx.UI.Option(choiceExit, "Exit")
	m.ctx.UI.Print("")
}

// handleChoice processes the user's menu choice and returns the next state
func (m *Menu) handleChoice(choice string) (state, error) {
	switch choice {
	case choiceRead:
		return stateReady, m.readFile()
	case choiceWrite:
		return stateReady, m.rewriteFile()
	case choiceAppend:
		return stateReady, m.appendFile()
	case choiceChange:
		return stateSelectingFile, nil
	case choiceExit:
		return stateExited, nil
	default:
		m.ctx.UI.Errorf("Wrong choice %q, try again", choice)
		return stateReady, nil
	}
}

func (m *Menu) readFile() error {
	content, err := m.editor.Read()
	if err != nil {
		return err
	}

	m.ctx.UI.Separator()
	m.ctx.UI.Print("  FILE CONTENTS")
	m.ctx.UI.Separator()
	m.ctx.UI.Content(content)
	return nil
}

func (m *Menu) rewriteFile() error {
	text, err := m.ctx.Prompt.PromptInput("Enter text for RECORD (old content will be deleted):", "")
	if err != nil {
		return err
	}

	if err := m.editor.Write(text); err != nil {
		return err
	}
	m.ctx.UI.Success("Successfully recorded.")
	return nil
}

func (m *Menu) appendFile() error {
	text, err := m.ctx.Prompt.PromptInput("Enter text for ADDING (at the end of the file):", "")
	if err != nil {
		return err
	}

	// Each addition starts on its own line
	if err := m.editor.Append("\n" + text); err != nil {
		return err
	}
	m.ctx.UI.Success("Successfully recorded.")
	return nil
}

// reportFailure tells the user an operation failed
func (m *Menu) reportFailure(err error) {
	m.ctx.UI.Print("")
	if errors.Is(err, textfile.ErrCorrupted) {
		m.ctx.UI.Errorf("OPERATION FAILED: %v", err)
		m.ctx.UI.Infof("(Error details are recorded in the log: %s)", m.ctx.Log.Path())
		return
	}
	m.ctx.UI.Errorf("UNEXPECTED ERROR: %v", err)
}
