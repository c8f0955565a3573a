package config

import "github.com/zoro11031/textedit/internal/oplog"

// Configuration key constants
const (
	// KeyLogFile is the path of the operation log
	KeyLogFile = "LOG_FILE"

	// KeyLastFile is the last file successfully opened from the menu
	KeyLastFile = "LAST_FILE"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyLogFile: oplog.DefaultFileName,
}
