package review

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// CheckReportIgnored returns an error when a previously written report exists
// but is not listed in gitignorePath, since it would otherwise end up staged.
func CheckReportIgnored(gitignorePath, reportPath string) error {
	if _, err := os.Stat(reportPath); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	notIgnored := fmt.Errorf("'%s' exists but is not in your .gitignore file. Please consider adding it to avoid including it in the context of future analyses", reportPath)

	f, err := os.Open(gitignorePath)
	if err != nil {
		return notIgnored
	}
	defer f.Close()

	name := filepath.ToSlash(filepath.Clean(reportPath))
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		pattern := strings.TrimSpace(scanner.Text())
		if pattern == "" || strings.HasPrefix(pattern, "#") {
			continue
		}
		pattern = strings.TrimPrefix(pattern, "/")
		if pattern == name || pattern == filepath.Base(name) {
			return nil
		}
		if ok, _ := filepath.Match(pattern, filepath.Base(name)); ok {
			return nil
		}
	}
	return notIgnored
}
