package desktop

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	osDarwin  = "darwin"
	osWindows = "windows"
	osLinux   = "linux"
)

// Command constants
const (
	openCommand     = "open"
	explorerCommand = "explorer"
	xdgOpenCommand  = "xdg-open"
	cmdCommand      = "cmd"
	startCommand    = "start"
)

const (
	macSelectFlag      = "-R"
	windowsSelectParam = "/select,"
	windowsCmdFlag     = "/c"
)

var linuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// RevealInFileManager opens the system file manager with the given file
// highlighted where the platform supports selection.
func RevealInFileManager(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case osDarwin:
		return exec.Command(openCommand, macSelectFlag, absPath).Run()
	case osWindows:
		return exec.Command(explorerCommand, windowsSelectParam, absPath).Run()
	case osLinux:
		return revealLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// revealLinux opens the parent directory. File selection is not
// standardized across Linux file managers.
func revealLinux(path string) error {
	dir := filepath.Dir(path)

	if err := exec.Command(xdgOpenCommand, dir).Run(); err == nil {
		return nil
	}
	for _, fm := range linuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}
	return fmt.Errorf("no suitable file manager found")
}

// OpenWithDefaultApp opens the file with whatever the OS associates with it.
func OpenWithDefaultApp(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case osDarwin:
		return exec.Command(openCommand, absPath).Run()
	case osWindows:
		return exec.Command(cmdCommand, windowsCmdFlag, startCommand, "", absPath).Run()
	case osLinux:
		return exec.Command(xdgOpenCommand, absPath).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// LaunchProgram starts an icon's program with its configured arguments
// without waiting for it to exit. Non-executable targets (documents,
// folders) fall back to the default-app association.
func LaunchProgram(path string, args []string) error {
	cmd := exec.Command(path, args...)
	if err := cmd.Start(); err != nil {
		if len(args) == 0 {
			return OpenWithDefaultApp(path)
		}
		return fmt.Errorf("failed to launch %s: %w", path, err)
	}
	// Detach: the child outlives us and we never collect its status.
	go cmd.Wait()
	return nil
}

// OpenURL opens a website link in the default browser.
func OpenURL(url string) error {
	switch runtime.GOOS {
	case osDarwin:
		return exec.Command(openCommand, url).Run()
	case osWindows:
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Run()
	case osLinux:
		return exec.Command(xdgOpenCommand, url).Run()
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}
