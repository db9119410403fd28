package logger

import (
	"os"
	"path/filepath"
	"time"
)

// EnsureLogFilePath prepares path for log export. A directory, existing or not, gets a
// timestamped file name appended; an existing file is used as is; an empty path means a
// timestamped file in the working directory. Missing directories are created.
func EnsureLogFilePath(logPath string) (string, error) {
	name := "oapi_" + time.Now().Format("20060102_150405") + ".log"

	if logPath == "" {
		logPath = filepath.Join(".", name)
	} else {
		info, err := os.Stat(logPath)
		switch {
		case os.IsNotExist(err) && filepath.Ext(logPath) == ".log":
		case os.IsNotExist(err), err == nil && info.IsDir():
			logPath = filepath.Join(logPath, name)
		case err != nil:
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return "", err
	}
	return logPath, nil
}
