package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// console writes styled prompts and messages for the line-based parts of the
// interactive flow. Colors are dropped when out is not a terminal.
type console struct {
	in  *bufio.Reader
	out io.Writer

	headingStyle lipgloss.Style
	successStyle lipgloss.Style
	infoStyle    lipgloss.Style
	noteStyle    lipgloss.Style
	failureStyle lipgloss.Style
	promptStyle  lipgloss.Style
}

func newConsole(in io.Reader, out io.Writer) *console {
	r := lipgloss.NewRenderer(out)
	return &console{
		in:           bufio.NewReader(in),
		out:          out,
		headingStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FDCB6E")),
		successStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00B894")),
		infoStyle:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00CEC9")),
		noteStyle:    r.NewStyle().Italic(true),
		failureStyle: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#D63031")),
		promptStyle:  r.NewStyle().Foreground(lipgloss.Color("#00CEC9")),
	}
}

func (c *console) println(s string) {
	_, _ = fmt.Fprintln(c.out, s)
}

func (c *console) heading(s string) { c.println(c.headingStyle.Render(s)) }
func (c *console) success(s string) { c.println(c.successStyle.Render(s)) }
func (c *console) info(s string)    { c.println(c.infoStyle.Render(s)) }
func (c *console) note(s string)    { c.println(c.noteStyle.Render(s)) }
func (c *console) failure(s string) { c.println(c.failureStyle.Render(s)) }

func (c *console) farewell() {
	c.println("")
	c.info("Thank you for using schedo!")
}

// ask prints prompt and reads one line without its line ending.
// At end of input it returns whatever was read along with io.EOF.
func (c *console) ask(prompt string) (string, error) {
	_, _ = fmt.Fprint(c.out, c.promptStyle.Render(prompt))
	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if errors.Is(err, io.EOF) {
		_, _ = fmt.Fprintln(c.out)
	}
	return line, err
}

func isYes(answer string) bool {
	return strings.ToLower(strings.TrimSpace(answer)) == "y"
}

func isDone(name string) bool {
	return strings.ToLower(strings.TrimSpace(name)) == "done"
}
