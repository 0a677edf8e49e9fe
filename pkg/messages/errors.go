package messages

// Error and info message constants for the reference host.
const (
	ErrMsgFailedToReadFile      = "failed to read file"
	ErrMsgFailedToScanFile      = "failed to scan file"
	ErrMsgFailedToCheckPath     = "failed to check path"
	ErrMsgFailedToFindPyFiles   = "failed to find Python files in directory"
	ErrMsgFailedToGetWorkingDir = "failed to get current working directory"
	ErrMsgViolationsFound       = "%d import style violations found"

	InfoMsgNoPyFilesFound = "no Python files found in directory"
)
