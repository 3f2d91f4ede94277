package core

import (
	"context"
	"errors"

	"github.com/dkeye/Waterdeep/internal/domain"
)

var ErrDialogCanceled = errors.New("dialog canceled")

// PromptRequest describes the join dialog: its title, the confirm button
// label and the colors the user may pick from.
type PromptRequest struct {
	Title   string
	Confirm string
	Colors  []domain.Color
}

type PromptResult struct {
	Name  string
	Color domain.Color
}

// Dialog asks the user for a display name and a color.
// A confirmed result carries a non-empty name and one of req.Colors.
// Cancel is reported as ErrDialogCanceled.
type Dialog interface {
	Prompt(ctx context.Context, req PromptRequest) (PromptResult, error)
}
