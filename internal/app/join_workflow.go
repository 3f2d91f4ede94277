package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

type WorkflowState int32

const (
	StateIdle WorkflowState = iota
	StatePrompting
	StateConfirming
)

func (s WorkflowState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePrompting:
		return "prompting"
	case StateConfirming:
		return "confirming"
	}
	return fmt.Sprintf("WorkflowState(%d)", int32(s))
}

const (
	joinDialogTitle   = "Join game"
	joinDialogConfirm = "Join"
)

// JoinWorkflow drives one game button's join sequence:
// Idle -> Prompting -> Confirming -> Idle.
type JoinWorkflow struct {
	dialog core.Dialog
	join   core.JoinBoundary
	policy core.ColorPolicy

	state atomic.Int32 // Zero by default (StateIdle)
}

func NewJoinWorkflow(dialog core.Dialog, join core.JoinBoundary, policy core.ColorPolicy) *JoinWorkflow {
	if policy == nil {
		policy = AllColors{}
	}
	return &JoinWorkflow{dialog: dialog, join: join, policy: policy}
}

func (w *JoinWorkflow) State() WorkflowState {
	return WorkflowState(w.state.Load())
}

// Start prompts for a name and color and, on confirm, calls the join
// boundary exactly once. Cancel returns nil without joining. A join error is
// returned for display; there is no retry. The workflow is back to Idle when
// Start returns.
func (w *JoinWorkflow) Start(ctx context.Context, game domain.Game) error {
	if !w.state.CompareAndSwap(int32(StateIdle), int32(StatePrompting)) {
		return ErrWorkflowBusy
	}
	defer w.state.Store(int32(StateIdle))

	logger := log.With().
		Str("module", "app.join").
		Str("game", game.ID).
		Logger()

	options := w.policy.Available(game)
	if len(options) == 0 {
		logger.Info().Msg("no colors left to offer")
		return ErrNoColorsAvailable
	}

	res, err := w.dialog.Prompt(ctx, core.PromptRequest{
		Title:   joinDialogTitle,
		Confirm: joinDialogConfirm,
		Colors:  options,
	})
	if errors.Is(err, core.ErrDialogCanceled) {
		logger.Info().Msg("join canceled")
		return nil
	}
	if err != nil {
		logger.Error().Err(err).Msg("join dialog failed")
		return fmt.Errorf("join dialog: %w", err)
	}
	if res.Name == "" {
		logger.Warn().Msg("dialog confirmed without a name")
		return ErrEmptyName
	}
	if !slices.Contains(options, res.Color) {
		logger.Warn().Str("color", res.Color.String()).Msg("dialog returned a color that was not offered")
		return fmt.Errorf("%w: %s", ErrColorNotOffered, res.Color)
	}

	w.state.Store(int32(StateConfirming))
	logger = logger.With().Str("name", res.Name).Str("color", res.Color.String()).Logger()
	if err := w.join.Join(ctx, game.ID, res.Name, res.Color); err != nil {
		logger.Warn().Err(err).Msg("join failed")
		return fmt.Errorf("join game %s: %w", game.ID, err)
	}
	logger.Info().Msg("joined game")
	return nil
}
