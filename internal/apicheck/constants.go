package apicheck

// Worker configuration constants.
const (
	workerChannelMultiplier = 2
)

// File permission constants.
const (
	directoryPermission = 0o750
	filePermission      = 0o600
)
