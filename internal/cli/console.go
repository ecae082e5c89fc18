package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	apperrors "bank-account-manager/internal/errors"
	"bank-account-manager/internal/services"
)

// ErrRetriesExhausted is returned by Ask when every attempt was rejected
var ErrRetriesExhausted = stderrors.New("too many invalid attempts")

// Console reads answers line by line and prints to the operator
type Console struct {
	scanner    *bufio.Scanner
	out        io.Writer
	maxRetries int
}

// NewConsole creates a console allowing maxRetries attempts per question
func NewConsole(in io.Reader, out io.Writer, maxRetries int) *Console {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Console{
		scanner:    bufio.NewScanner(in),
		out:        out,
		maxRetries: maxRetries,
	}
}

func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// ReadLine prints the prompt and returns the next line without surrounding
// whitespace. It returns io.EOF once the input is exhausted.
func (c *Console) ReadLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// Ask repeats the prompt until check accepts the answer. A rejected answer
// prints the check's error response; after the last attempt Ask prints
// VALIDATION_009 and returns ErrRetriesExhausted.
func (c *Console) Ask(ctx context.Context, prompt string, check func(string) *apperrors.ErrorResponse) (string, error) {
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		answer, err := c.ReadLine(prompt)
		if err != nil {
			return "", err
		}

		rejection := check(answer)
		if rejection == nil {
			return answer, nil
		}
		c.PrintError(rejection)
	}

	c.PrintError(apperrors.NewErrorResponse(apperrors.ValidationRetriesExhausted, services.CorrelationID(ctx)))
	return "", ErrRetriesExhausted
}

// Choose lists numbered options and returns the index of the selected one
func (c *Console) Choose(ctx context.Context, options ...string) (int, error) {
	for i, option := range options {
		c.Printf("%d. %s\n", i+1, option)
	}

	prompt := fmt.Sprintf("Select type (1-%d): ", len(options))
	answer, err := c.Ask(ctx, prompt, func(answer string) *apperrors.ErrorResponse {
		if selectionIndex(answer, len(options)) < 0 {
			return apperrors.NewErrorResponse(apperrors.ValidationInvalidSelection, services.CorrelationID(ctx),
				apperrors.WithDetails(fmt.Sprintf("choose a number between 1 and %d", len(options))))
		}
		return nil
	})
	if err != nil {
		return -1, err
	}
	return selectionIndex(answer, len(options)), nil
}

func selectionIndex(answer string, count int) int {
	for i := 0; i < count; i++ {
		if answer == fmt.Sprint(i+1) {
			return i
		}
	}
	return -1
}

// PrintError prints a response as a single [CODE] line
func (c *Console) PrintError(response *apperrors.ErrorResponse) {
	c.Println(response.String())
}

// Pause waits for the operator to press Enter
func (c *Console) Pause() error {
	_, err := c.ReadLine("Press Enter to continue....")
	return err
}
