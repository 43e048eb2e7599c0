// Package gitinit initializes version control in a freshly scaffolded
// project by invoking the external git binary. The caller reports failures
// as warnings: the scaffolded tree is complete and stays valid without a
// repository.
package gitinit

import (
	"fmt"
	"os/exec"
	"strings"
)

// Init runs "git init" with dir as the working directory. gitPath is the
// binary to invoke, resolved from configuration once at startup; an empty
// value falls back to "git".
func Init(dir, gitPath string) error {
	if gitPath == "" {
		gitPath = "git"
	}
	if _, err := exec.LookPath(gitPath); err != nil {
		return fmt.Errorf("%s is required but not found in PATH", gitPath)
	}

	cmd := exec.Command(gitPath, "init")
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("initializing repository: %w\n%s", err, strings.TrimSpace(string(output)))
	}
	return nil
}
