// Package dotenv injects secrets from a local .env file into the process
// environment. The file is optional, `#` lines are comments, blank lines are
// ignored, and malformed lines are skipped rather than aborting the load.
// Variables already present in the environment are never overwritten.
package dotenv

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultFilename is the secrets file looked up at the project root.
const DefaultFilename = ".env"

// maxLineBytes caps a single secrets line. Anything longer is treated as
// malformed rather than failing the load.
const maxLineBytes = 1024 * 1024

// Result reports what a Load call did to the process environment.
type Result struct {
	// Applied lists the keys written into the environment, in file order.
	Applied []string
	// Skipped lists the keys left untouched because the environment already
	// defined them.
	Skipped []string
	// Warnings carries one message per malformed line.
	Warnings []string
}

// Load reads the secrets file at path and sets each well-formed KEY=VALUE
// pair as an environment variable unless the key is already set. A missing
// file is not an error; the zero Result is returned.
//
// Load is idempotent: a second call finds every previously applied key
// already present and skips it.
func Load(path string) (Result, error) {
	file, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return Result{}, nil
	}
	if err != nil {
		return Result{}, fmt.Errorf("open secrets file: %w", err)
	}
	defer file.Close()

	var res Result
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// godotenv owns quoting and escape semantics for a single entry;
		// feeding it one line at a time keeps a bad line from aborting the
		// rest of the file. A line without a separator comes back as a
		// single entry under an empty key, not as an error.
		entries, err := godotenv.Unmarshal(line)
		if err != nil || len(entries) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s:%d: skipping malformed line", path, lineNo))
			continue
		}

		for key, value := range entries {
			if key == "" {
				res.Warnings = append(res.Warnings, fmt.Sprintf("%s:%d: skipping malformed line", path, lineNo))
				continue
			}
			if _, exists := os.LookupEnv(key); exists {
				res.Skipped = append(res.Skipped, key)
				continue
			}
			if err := os.Setenv(key, value); err != nil {
				return res, fmt.Errorf("set %s: %w", key, err)
			}
			res.Applied = append(res.Applied, key)
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			res.Warnings = append(res.Warnings, fmt.Sprintf("%s:%d: skipping oversized line and the rest of the file", path, lineNo+1))
			return res, nil
		}
		return res, fmt.Errorf("read secrets file: %w", err)
	}

	return res, nil
}
