package manage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrBlankPassword    = errors.New("blank passwords are not allowed")
)

// readLine prints prompt and reads one trimmed line. A final line without a
// newline is accepted.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptPassword reads a password twice without echo and checks both match.
func promptPassword(fd int, w io.Writer) (string, error) {
	first, err := readSecret(fd, "Password: ", w)
	if err != nil {
		return "", err
	}
	second, err := readSecret(fd, "Password (again): ", w)
	if err != nil {
		return "", err
	}

	if first != second {
		return "", ErrPasswordMismatch
	}
	if strings.TrimSpace(first) == "" {
		return "", ErrBlankPassword
	}
	return first, nil
}

func readSecret(fd int, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}
