package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	apperrors "bank-account-manager/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("terminal detached")
}

func TestConsole_ReadLine(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader("  ACC001 \r\nlast"), out, 3)

	line, err := console.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "ACC001", line)

	line, err = console.ReadLine("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = console.ReadLine("> ")
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, "> > > ", out.String())
}

func TestConsole_ReadLine_ReaderError(t *testing.T) {
	console := NewConsole(failingReader{}, io.Discard, 3)

	_, err := console.ReadLine("> ")

	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Contains(t, err.Error(), "terminal detached")
}

func TestConsole_Ask(t *testing.T) {
	onlyYes := func(answer string) *apperrors.ErrorResponse {
		if answer != "yes" {
			return apperrors.NewErrorResponse(apperrors.ValidationInvalidSelection, "")
		}
		return nil
	}

	t.Run("accepts after a rejection", func(t *testing.T) {
		out := &bytes.Buffer{}
		console := NewConsole(strings.NewReader("no\nyes\n"), out, 3)

		answer, err := console.Ask(context.Background(), "? ", onlyYes)

		require.NoError(t, err)
		assert.Equal(t, "yes", answer)
		assert.Equal(t, 1, strings.Count(out.String(), "[VALIDATION_008]"))
	})

	t.Run("gives up after the last attempt", func(t *testing.T) {
		out := &bytes.Buffer{}
		console := NewConsole(strings.NewReader("no\nno\nyes\n"), out, 2)

		_, err := console.Ask(context.Background(), "? ", onlyYes)

		assert.ErrorIs(t, err, ErrRetriesExhausted)
		assert.Contains(t, out.String(), "[VALIDATION_009]")
	})

	t.Run("at least one attempt", func(t *testing.T) {
		console := NewConsole(strings.NewReader("yes\n"), io.Discard, 0)

		answer, err := console.Ask(context.Background(), "? ", onlyYes)

		require.NoError(t, err)
		assert.Equal(t, "yes", answer)
	})
}

func TestConsole_Choose(t *testing.T) {
	out := &bytes.Buffer{}
	console := NewConsole(strings.NewReader("0\n2\n"), out, 3)

	choice, err := console.Choose(context.Background(), "Deposit", "Withdrawal")

	require.NoError(t, err)
	assert.Equal(t, 1, choice)
	assert.Contains(t, out.String(), "1. Deposit\n2. Withdrawal\nSelect type (1-2): ")
	assert.Contains(t, out.String(), "choose a number between 1 and 2")
}
