package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
// In tests you can replace it with a stub to avoid touching the terminal.
var readPassword = term.ReadPassword

// readLine prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
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

// promptPassword prints a password prompt to w and reads the SMTP password
// from the user's terminal without echo. A newline is printed after the
// read to keep the UI tidy.
func promptPassword(w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, "SMTP password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

// promptAll drives the fully interactive mode (-i): every SMTP setting is
// read from the terminal, the password without echo.
func promptAll(cfg *Config) error {
	return promptInto(cfg, bufio.NewReader(os.Stdin), os.Stdout, func() (string, error) {
		return promptPassword(os.Stdout)
	})
}

// promptInto contains the prompting logic with injectable input/output so
// it can be tested without a terminal.
func promptInto(cfg *Config, reader *bufio.Reader, w io.Writer, password func() (string, error)) error {
	var err error

	if cfg.Domain, err = readLine(reader, "Your domain: ", w); err != nil {
		return err
	}
	if cfg.SMTPServer, err = readLine(reader, "SMTP host: ", w); err != nil {
		return err
	}

	port, err := readLine(reader, "SMTP port: ", w)
	if err != nil {
		return err
	}
	if cfg.SMTPPort, err = strconv.Atoi(port); err != nil {
		return fmt.Errorf("invalid SMTP port %q: %w", port, err)
	}

	if cfg.SMTPUser, err = readLine(reader, "SMTP user: ", w); err != nil {
		return err
	}
	if cfg.SMTPPass, err = password(); err != nil {
		return err
	}

	return nil
}
