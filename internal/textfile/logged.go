package textfile

// Editor is the set of operations the interactive menu and commands use
type Editor interface {
	Path() string
	Read() (string, error)
	Write(content string) error
	Append(content string) error
}

// Observer runs an operation and records its outcome under op.
// It must return the error of fn unchanged.
type Observer interface {
	Observe(op string, fn func() error) error
}

// LoggedEditor records the outcome of every operation of an Editor
type LoggedEditor struct {
	editor   Editor
	observer Observer
}

// WithLogging wraps e so that each operation is passed through obs
func WithLogging(e Editor, obs Observer) *LoggedEditor {
	return &LoggedEditor{editor: e, observer: obs}
}

// Path returns the path of the wrapped editor
func (l *LoggedEditor) Path() string {
	return l.editor.Path()
}

// Read reads the file and records the outcome
func (l *LoggedEditor) Read() (string, error) {
	var content string
	err := l.observer.Observe(OpRead, func() error {
		var err error
		content, err = l.editor.Read()
		return err
	})
	return content, err
}

// Write overwrites the file and records the outcome
func (l *LoggedEditor) Write(content string) error {
	return l.observer.Observe(OpWrite, func() error {
		return l.editor.Write(content)
	})
}

// Append appends to the file and records the outcome
func (l *LoggedEditor) Append(content string) error {
	return l.observer.Observe(OpAppend, func() error {
		return l.editor.Append(content)
	})
}
