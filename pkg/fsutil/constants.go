package fsutil

// File and directory permission constants used consistently across the
// application.
const (
	FileModeDefault = 0o644 // -rw-r--r--: regular files
	FileModeSecure  = 0o640 // -rw-r-----: downloaded artifacts
	FileModeExec    = 0o755 // -rwxr-xr-x: executable files

	DirModeDefault = 0o755 // drwxr-xr-x: regular directories
	DirModeSecure  = 0o750 // drwxr-x---: scratch and download directories
	DirModePrivate = 0o700 // drwx------: cache directories
)
