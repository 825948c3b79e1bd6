package record

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// TerminationKeyword aborts the whole run when entered at any prompt.
const TerminationKeyword = "quit"

// InteractiveSource collects one raw tuple per call from terminal prompts.
type InteractiveSource struct {
	in  *bufio.Reader
	out io.Writer
}

// NewInteractiveSource creates an InteractiveSource reading from in and
// writing its prompts to out.
func NewInteractiveSource(in io.Reader, out io.Writer) *InteractiveSource {
	return &InteractiveSource{in: bufio.NewReader(in), out: out}
}

// Next prompts for the record fields in fixed order (email, name, source
// reference, optional context) and returns them as a tuple in canonical
// order. Entering the termination keyword at any prompt returns
// ErrTerminated.
func (s *InteractiveSource) Next() ([]string, error) {
	email, err := s.Ask("\nrecipient email: ")
	if err != nil {
		return nil, err
	}
	name, err := s.Ask("recipient name: ")
	if err != nil {
		return nil, err
	}
	source, err := s.Ask("research source link: ")
	if err != nil {
		return nil, err
	}
	context, err := s.Ask("optional additional context (press ENTER to skip): ")
	if err != nil {
		return nil, err
	}
	return []string{name, email, source, context}, nil
}

// Ask writes a single prompt and returns the trimmed reply. The termination
// keyword (and end of input) yields ErrTerminated.
func (s *InteractiveSource) Ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		// Closed stdin ends the run the same way the keyword does.
		return "", ErrTerminated
	}

	reply := strings.TrimSpace(line)
	if strings.EqualFold(reply, TerminationKeyword) {
		return "", ErrTerminated
	}
	return reply, nil
}
