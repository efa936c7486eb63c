package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// confirm asks prompt on out and reads one answer from in. Only an explicit
// yes (y, yes, j, ja) counts; EOF declines.
func confirm(in io.Reader, out io.Writer, prompt string) bool {
	fmt.Fprintf(out, "%s ", prompt)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(out)
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "j", "ja":
		return true
	default:
		return false
	}
}
