package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

type Confirmer struct {
	In            io.Reader
	Out           io.Writer
	IsInteractive func() bool
}

func DefaultConfirmer() Confirmer {
	return Confirmer{
		In:  os.Stdin,
		Out: os.Stdout,
		IsInteractive: func() bool {
			info, err := os.Stdin.Stat()
			if err != nil {
				return false
			}
			return (info.Mode() & os.ModeCharDevice) != 0
		},
	}
}

// ConfirmDelete asks before a profile is removed. force skips the question.
func (c Confirmer) ConfirmDelete(name string, force bool) (bool, error) {
	return c.ask(fmt.Sprintf("Delete profile %q? This cannot be undone. (y/n): ", name),
		force, "use -y to delete without confirmation")
}

// ConfirmImport asks before a batch of count icons is written into a profile.
func (c Confirmer) ConfirmImport(name string, count int, force bool) (bool, error) {
	return c.ask(fmt.Sprintf("Import %d icon(s) into profile %q? (y/n): ", count, name),
		force, "use -y to import without confirmation")
}

func (c Confirmer) ask(question string, force bool, hint string) (bool, error) {
	if force {
		return true, nil
	}
	if c.IsInteractive == nil || !c.IsInteractive() {
		return false, fmt.Errorf("non-interactive stdin: %s", hint)
	}
	if c.Out != nil {
		fmt.Fprint(c.Out, question)
	}
	reader := bufio.NewReader(c.In)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y", nil
}
