package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Service asks the user yes/no questions. Reader and writer are injected so
// commands can prompt on stdio and tests can script answers.
type Service struct {
	reader io.Reader
	writer io.Writer
}

func NewService(reader io.Reader, writer io.Writer) *Service {
	return &Service{
		reader: reader,
		writer: writer,
	}
}

// Confirm prints msg with a (Y/n) or (y/N) suffix and reads one line.
// defaultYes decides what an empty answer means; confirmAll skips the prompt
// entirely and answers yes.
func (s *Service) Confirm(msg string, defaultYes bool, confirmAll bool) (bool, error) {
	if confirmAll {
		return true, nil
	}

	suffix := "(y/N)"
	if defaultYes {
		suffix = "(Y/n)"
	}

	if _, err := fmt.Fprintf(s.writer, "%s %s ", strings.TrimSpace(msg), suffix); err != nil {
		return false, err
	}

	scanner := bufio.NewScanner(s.reader)
	input := ""
	if scanner.Scan() {
		input = scanner.Text()
	} else if err := scanner.Err(); err != nil {
		return false, err
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if defaultYes {
		return input != "n", nil
	}
	return input == "y", nil
}
