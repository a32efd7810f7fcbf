package executor

import (
	"fmt"
	"os/exec"
	"runtime"
)

// ExecLauncher implements ProcessLauncher over os/exec. Processes are
// started detached; the launcher never waits for them.
type ExecLauncher struct{}

// Launch starts path with args and releases the process handle.
func (ExecLauncher) Launch(path string, args []string) error {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", path, err)
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}

// ExecOpener implements FileOpener and URLOpener by delegating to the
// platform open command (open, xdg-open, or rundll32).
type ExecOpener struct {
	launcher ProcessLauncher
}

// NewExecOpener creates an opener that launches through the given
// ProcessLauncher, or an ExecLauncher when nil.
func NewExecOpener(launcher ProcessLauncher) *ExecOpener {
	if launcher == nil {
		launcher = ExecLauncher{}
	}
	return &ExecOpener{launcher: launcher}
}

// OpenFile opens path with its default handler.
func (o *ExecOpener) OpenFile(path string) error {
	cmd, args := openCommand(path)
	return o.launcher.Launch(cmd, args)
}

// OpenURL opens url in the default browser.
func (o *ExecOpener) OpenURL(url string) error {
	cmd, args := openCommand(url)
	return o.launcher.Launch(cmd, args)
}

// openCommand returns the platform open command for a target.
func openCommand(target string) (string, []string) {
	switch runtime.GOOS {
	case "darwin":
		return "open", []string{target}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", target}
	default:
		return "xdg-open", []string{target}
	}
}
