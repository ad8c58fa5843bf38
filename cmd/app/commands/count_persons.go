package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	personUseCase "github.com/allisson/persons/internal/person/usecase"
)

// RunCountPersons prints the number of registered persons in text or JSON format.
func RunCountPersons(
	ctx context.Context,
	useCase personUseCase.PersonUseCase,
	logger *slog.Logger,
	out io.Writer,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	count, err := useCase.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count persons: %w", err)
	}

	if format == FormatJSON {
		if err := outputCountJSON(out, count); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(out, "%d person(s) registered\n", count); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	logger.Info("persons counted", slog.Int64("count", count))
	return nil
}

func outputCountJSON(out io.Writer, count int64) error {
	jsonBytes, err := json.MarshalIndent(map[string]int64{"count": count}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := fmt.Fprintln(out, string(jsonBytes)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
