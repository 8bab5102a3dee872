package repository

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/google/uuid"
)

var safeAccountName = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// AccountFileName maps a username to its catalog file name. Names that are
// safe as a path element are used as is, anything else gets a stable UUID so
// two accounts never share a file and nothing escapes the data directory.
func AccountFileName(account string) string {
	if safeAccountName.MatchString(account) && account != "." && account != ".." {
		return account + ".json"
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("eventtracker:"+account)).String() + ".json"
}

// writeFileAtomic replaces path with data so readers see either the old or the
// new content, never a partial write.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err = tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
