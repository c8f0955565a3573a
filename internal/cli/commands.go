package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/zoro11031/textedit/internal/config"
)

// ErrNotConfirmed is returned when the user declines to overwrite a file
var ErrNotConfirmed = errors.New("overwrite not confirmed")

// RunRead prints the contents of path
func RunRead(ctx *Context, path string) error {
	editor, err := ctx.OpenEditor(path)
	if err != nil {
		return err
	}

	content, err := editor.Read()
	if err != nil {
		return err
	}
	ctx.UI.Content(content)
	return nil
}

// RunWrite replaces the contents of path with text. Unless force is set the
// user must confirm first.
func RunWrite(ctx *Context, path, text string, force bool) error {
	editor, err := ctx.OpenEditor(path)
	if err != nil {
		return err
	}

	if !force {
		confirm, err := ctx.UI.PromptYesNo(fmt.Sprintf("Overwrite '%s'? Old content will be deleted", path), false)
		if err != nil {
			return err
		}
		if !confirm {
			return ErrNotConfirmed
		}
	}

	if err := editor.Write(text); err != nil {
		return err
	}
	ctx.UI.Successf("Successfully recorded to '%s'", path)
	return nil
}

// RunAppend adds text at the end of path, on a new line when newline is set
func RunAppend(ctx *Context, path, text string, newline bool) error {
	editor, err := ctx.OpenEditor(path)
	if err != nil {
		return err
	}

	if newline {
		text = "\n" + text
	}
	if err := editor.Append(text); err != nil {
		return err
	}
	ctx.UI.Successf("Successfully added to '%s'", path)
	return nil
}

// ShowStatus prints where configuration, log and last file live
func ShowStatus(ctx *Context) {
	ctx.UI.Header("textedit Status")

	ctx.UI.Infof("Configuration file: %s", describePath(ctx.Config.FilePath()))
	ctx.UI.Infof("Log file: %s", describePath(ctx.Log.Path()))

	if last, err := ctx.Config.Get(config.KeyLastFile); err == nil && last != "" {
		ctx.UI.Infof("Last file: %s", describePath(last))
	} else {
		ctx.UI.Info("Last file: (none)")
	}

	settings := ctx.Config.GetAll()
	if len(settings) == 0 {
		return
	}
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ctx.UI.Print("")
	ctx.UI.Info("Settings:")
	for _, key := range keys {
		ctx.UI.Print(fmt.Sprintf("  %s=%s", key, settings[key]))
	}
}

func describePath(path string) string {
	if _, err := os.Stat(path); err != nil {
		return path + " (missing)"
	}
	return path
}

// ShowHistory prints the operation log. A positive tail limits the output to
// the last tail lines.
func ShowHistory(ctx *Context, tail int) error {
	file, err := os.Open(ctx.Log.Path())
	if err != nil {
		if os.IsNotExist(err) {
			ctx.UI.Infof("No operations recorded yet in %s", ctx.Log.Path())
			return nil
		}
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	// ReadString has no line length limit, unlike bufio.Scanner
	var lines []string
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
			if tail > 0 && len(lines) > tail {
				lines = lines[1:]
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read log file: %w", err)
		}
	}

	for _, line := range lines {
		ctx.UI.Content(line)
	}
	return nil
}
