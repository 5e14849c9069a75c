package fsutil

import (
	"fmt"
	"os"
)

// BackupSuffix is appended to a target path to form its backup location
// while new content is being installed.
const BackupSuffix = ".immbackup"

// UniqueBackupPath returns the first backup path derived from target that
// is not already in use on disk, as either a file or a directory. The
// sequence tried is <target>.immbackup, <target>.immbackup1,
// <target>.immbackup2 and so on.
func UniqueBackupPath(target string) string {
	candidate := target + BackupSuffix
	for n := 1; pathExists(candidate); n++ {
		candidate = fmt.Sprintf("%s%s%d", target, BackupSuffix, n)
	}
	return candidate
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
