package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var ErrNoClipboard = errors.New("no clipboard tool found")

// Clipboard copies text for the user.
type Clipboard interface {
	Copy(text string) error
}

type tool struct {
	name string
	args []string
}

// CommandClipboard pipes text into the first clipboard tool that succeeds.
type CommandClipboard struct {
	tools []tool
	run   func(name string, args []string, input string) error
}

func NewCommandClipboard() *CommandClipboard {
	return &CommandClipboard{
		tools: []tool{
			{name: "wl-copy"},
			{name: "xclip", args: []string{"-selection", "clipboard"}},
			{name: "pbcopy"},
		},
		run: runTool,
	}
}

func (c *CommandClipboard) Copy(text string) error {
	var errs []string
	for _, t := range c.tools {
		err := c.run(t.name, t.args, text)
		if err == nil {
			return nil
		}
		errs = append(errs, fmt.Sprintf("%s: %v", t.name, err))
	}
	return fmt.Errorf("%w (%s)", ErrNoClipboard, strings.Join(errs, "; "))
}

func runTool(name string, args []string, input string) error {
	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(input)
	return cmd.Run()
}
