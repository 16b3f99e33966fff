// Package source supplies raw unified-diff text to the viewer: from a
// reader (stdin), a file on disk, or a git working tree. The viewer treats
// whatever arrives here as authoritative external input.
package source

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// ReadAll reads diff text from the given reader until EOF.
func ReadAll(r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading diff: %w", err)
	}
	return string(b), nil
}

// ReadFile reads diff text from a file.
func ReadFile(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading diff file: %w", err)
	}
	return string(b), nil
}

// GitDiff returns the combined staged and unstaged diff for a working tree.
func GitDiff(workdir string) (string, error) {
	cmd := exec.Command("git", "diff", "HEAD")
	cmd.Dir = workdir
	output, err := cmd.Output()
	if err != nil {
		// No HEAD yet, try just staged/unstaged
		cmd = exec.Command("git", "diff")
		cmd.Dir = workdir
		output, err = cmd.Output()
		if err != nil {
			return "", fmt.Errorf("git diff: %w", err)
		}
	}
	return string(output), nil
}
