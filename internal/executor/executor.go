package executor

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gubarz/mdtoc/internal/config"
)

// ============================================================================
// Shell Runner Interface
// ============================================================================

// ShellRunner defines the interface for shell command execution
type ShellRunner interface {
	RunShell(command string) (string, error)
}

// shellRunner runs commands through the configured shell
type shellRunner struct {
	shell string
}

// RunShell executes a shell command and returns stdout
func (r *shellRunner) RunShell(command string) (string, error) {
	cmd := exec.Command(r.shell, "-c", command)
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("shell error: %w: %s", err, stderr.String())
	}

	return strings.TrimSpace(stdout.String()), nil
}

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard using system commands
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	cmd := c.findClipboardCommand()
	if cmd == nil {
		// No clipboard tool found, just print
		fmt.Fprintln(c.fallback, text)
		return nil
	}
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// findClipboardCommand returns the appropriate clipboard command for the system
func (c *systemClipboard) findClipboardCommand() *exec.Cmd {
	switch {
	case commandExists("wl-copy"):
		return exec.Command("wl-copy")
	case commandExists("xclip"):
		return exec.Command("xclip", "-selection", "clipboard")
	case commandExists("xsel"):
		return exec.Command("xsel", "--clipboard", "--input")
	case commandExists("pbcopy"):
		return exec.Command("pbcopy")
	default:
		return nil
	}
}

// commandExists checks if a command is available in PATH
func commandExists(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ============================================================================
// Executor
// ============================================================================

// Executor delivers generated text and runs the post-write hook
type Executor struct {
	out       io.Writer
	runner    ShellRunner
	clipboard Clipboard
}

// NewExecutor creates an executor writing printed output to out
func NewExecutor(out io.Writer) *Executor {
	return &Executor{
		out:       out,
		runner:    &shellRunner{shell: config.GetShell()},
		clipboard: &systemClipboard{fallback: out},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (e *Executor) WithClipboard(c Clipboard) *Executor {
	e.clipboard = c
	return e
}

// WithRunner sets a custom shell runner (useful for testing)
func (e *Executor) WithRunner(r ShellRunner) *Executor {
	e.runner = r
	return e
}

// ============================================================================
// Post-write Hook
// ============================================================================

// BuildHookCommand substitutes $file in the hook template. The path is
// single-quoted for the shell.
func BuildHookCommand(template, file string) string {
	quoted := "'" + strings.ReplaceAll(file, "'", `'\''`) + "'"
	return strings.ReplaceAll(template, "$file", quoted)
}

// RunHook runs the hook template against file. An empty template is a no-op.
func (e *Executor) RunHook(template, file string) (string, error) {
	if strings.TrimSpace(template) == "" {
		return "", nil
	}
	out, err := e.runner.RunShell(BuildHookCommand(template, file))
	if err != nil {
		return "", fmt.Errorf("post hook: %w", err)
	}
	return out, nil
}

// ============================================================================
// Output Handling
// ============================================================================

// OutputMode represents how generated text should be handled
type OutputMode string

const (
	OutputPrint OutputMode = "print"
	OutputCopy  OutputMode = "copy"
)

// OutputWithMode handles text output with an explicit mode
func (e *Executor) OutputWithMode(text string, mode OutputMode) error {
	switch mode {
	case OutputCopy:
		return e.clipboard.Copy(text)
	default: // print
		_, err := fmt.Fprintln(e.out, text)
		return err
	}
}
