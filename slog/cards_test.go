package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/edhgrab"
	"github.com/fwojciec/edhgrab/mock"
	edhslog "github.com/fwojciec/edhgrab/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCardService_FindCardByName(t *testing.T) {
	t.Parallel()

	t.Run("logs lookup with name and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CardService{
			FindCardByNameFn: func(ctx context.Context, name string) (*edhgrab.CardDetails, error) {
				return &edhgrab.CardDetails{Name: name, ManaCost: "{1}"}, nil
			},
		}

		svc := edhslog.NewLoggingCardService(inner, logger)
		details, err := svc.FindCardByName(context.Background(), "Sol Ring")

		require.NoError(t, err)
		assert.Equal(t, "{1}", details.ManaCost)
		output := buf.String()
		assert.Contains(t, output, "card lookup")
		assert.Contains(t, output, "name=\"Sol Ring\"")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.CardService{
			FindCardByNameFn: func(ctx context.Context, name string) (*edhgrab.CardDetails, error) {
				return nil, edhgrab.Errorf(edhgrab.ENOTFOUND, "card %q not found", name)
			},
		}

		svc := edhslog.NewLoggingCardService(inner, logger)
		_, err := svc.FindCardByName(context.Background(), "Fake Card")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "card lookup")
		assert.Contains(t, output, "not found")
	})
}
