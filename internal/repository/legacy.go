package repository

import (
	"bufio"
	"context"
	"errors"
	"os"
	"strings"
)

// LegacyFile reads the pre-catalog flat log, one record per line.
type LegacyFile struct {
	path string
}

func NewLegacyFile(path string) *LegacyFile {
	return &LegacyFile{path: path}
}

func (lf *LegacyFile) Lines(ctx context.Context) ([]string, error) {
	f, err := os.Open(lf.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		return nil, errors.New("opening legacy file error: " + err.Error())
	}
	defer f.Close()

	out := make([]string, 0)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if p := LegacyPayload(sc.Text()); p != "" {
			out = append(out, p)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.New("reading legacy file error: " + err.Error())
	}
	return out, nil
}

// LegacyPayload extracts the date part of a log line. Lines like
// "[12:00] 01.02.2023" keep what follows the last ']'.
func LegacyPayload(line string) string {
	if i := strings.LastIndex(line, "]"); i >= 0 {
		return strings.TrimSpace(line[i+1:])
	}
	return strings.TrimSpace(line)
}
