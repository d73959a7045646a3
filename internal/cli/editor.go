package cli

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditorLauncher opens files in the user's editor
type EditorLauncher struct {
	DefaultEditor string
}

// NewEditorLauncher uses $VISUAL, then $EDITOR, then vi
func NewEditorLauncher() *EditorLauncher {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	return &EditorLauncher{DefaultEditor: editor}
}

// Command builds the editor invocation for path; the editor value may carry
// its own arguments, as in "code --wait".
func (e *EditorLauncher) Command(path string) *exec.Cmd {
	parts := strings.Fields(e.DefaultEditor)
	if len(parts) == 0 {
		parts = []string{"vi"}
	}
	editorCmd := exec.Command(parts[0], append(parts[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr
	return editorCmd
}

// OpenFile opens a file in the configured editor and waits for it to exit
func (e *EditorLauncher) OpenFile(path string) error {
	if err := e.Command(path).Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}
