package docx

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// CopyTemplate copies a template file to the target path, overwriting any
// existing file, so the copy can be opened and edited without touching the
// template. Errors are returned, not swallowed.
func CopyTemplate(src, dst string, logger *Logger) error {
	if logger == nil {
		logger = DefaultLogger()
	}
	in, err := os.Open(src)
	if err != nil {
		return NewDocumentError("copy template", src, err)
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return NewDocumentError("copy template", dst, err)
		}
	}
	out, err := os.Create(dst)
	if err != nil {
		return NewDocumentError("copy template", dst, err)
	}
	defer out.Close()

	n, err := io.Copy(out, in)
	if err != nil {
		return NewDocumentError("copy template", dst, err)
	}
	if err := out.Close(); err != nil {
		return NewDocumentError("copy template", dst, err)
	}
	logger.Debug("copied template %s to %s (%d bytes)", src, dst, n)
	return nil
}

// wordProcessorCommand picks the platform's opener when no executable is
// configured.
func wordProcessorCommand(executable, path string) *exec.Cmd {
	if executable != "" {
		return exec.Command(executable, path)
	}
	switch runtime.GOOS {
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		return exec.Command("open", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// OpenInWordProcessor launches the host word processor on the given file,
// fire-and-forget: the process is started but not waited on. Launch failures
// are logged and returned so callers can decide on policy.
func OpenInWordProcessor(path, executable string, logger *Logger) error {
	if logger == nil {
		logger = DefaultLogger()
	}
	if _, err := os.Stat(path); err != nil {
		err = NewDocumentError("open in word processor", path, err)
		logger.Error("%v", err)
		return err
	}
	cmd := wordProcessorCommand(executable, path)
	if err := cmd.Start(); err != nil {
		err = NewDocumentError("open in word processor", path, fmt.Errorf("failed to launch %s: %w", cmd.Path, err))
		logger.Error("%v", err)
		return err
	}
	logger.Info("opened %s in word processor (pid %d)", path, cmd.Process.Pid)
	return nil
}
