package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dkeye/Waterdeep/internal/core"
	"github.com/dkeye/Waterdeep/internal/domain"
)

func testGame() domain.Game {
	return domain.Game{
		ID:      "g-1",
		Name:    "G1",
		Players: []domain.Player{domain.NewPlayer("Bob", domain.Red, true)},
	}
}

func TestJoinWorkflow_ConfirmJoinsOnce(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)
	game := testGame()

	dlg.On("Prompt", mock.Anything, core.PromptRequest{
		Title:   "Join game",
		Confirm: "Join",
		Colors:  domain.AllColors(),
	}).Return(core.PromptResult{Name: "Alice", Color: domain.Blue}, nil).Once()
	join.On("Join", mock.Anything, "g-1", "Alice", domain.Blue).Return(nil).Once()

	require.NoError(t, w.Start(context.Background(), game))
	require.Equal(t, StateIdle, w.State())

	dlg.AssertExpectations(t)
	join.AssertExpectations(t)
	join.AssertNumberOfCalls(t, "Join", 1)
}

func TestJoinWorkflow_NameUsedVerbatim(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, AllColors{})

	dlg.On("Prompt", mock.Anything, mock.Anything).
		Return(core.PromptResult{Name: "  Al ice ", Color: domain.Green}, nil).Once()
	join.On("Join", mock.Anything, "g-1", "  Al ice ", domain.Green).Return(nil).Once()

	require.NoError(t, w.Start(context.Background(), testGame()))
	join.AssertExpectations(t)
}

func TestJoinWorkflow_CancelDoesNotJoin(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)

	dlg.On("Prompt", mock.Anything, mock.Anything).Return(core.PromptResult{}, core.ErrDialogCanceled).Once()

	require.NoError(t, w.Start(context.Background(), testGame()))
	require.Equal(t, StateIdle, w.State())
	join.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinWorkflow_DialogError(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)
	boom := errors.New("stdin closed")

	dlg.On("Prompt", mock.Anything, mock.Anything).Return(core.PromptResult{}, boom).Once()

	err := w.Start(context.Background(), testGame())
	require.ErrorIs(t, err, boom)
	require.Equal(t, StateIdle, w.State())
	join.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinWorkflow_JoinFailureIsNotRetried(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)
	rejected := errors.New("color taken")

	dlg.On("Prompt", mock.Anything, mock.Anything).Return(core.PromptResult{Name: "Alice", Color: domain.Red}, nil).Once()
	join.On("Join", mock.Anything, "g-1", "Alice", domain.Red).Return(rejected)

	err := w.Start(context.Background(), testGame())
	require.ErrorIs(t, err, rejected)
	require.Equal(t, StateIdle, w.State())
	join.AssertNumberOfCalls(t, "Join", 1)
}

func TestJoinWorkflow_StatesDuringRun(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)

	var promptState, joinState WorkflowState
	dlg.On("Prompt", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { promptState = w.State() }).
		Return(core.PromptResult{Name: "Alice", Color: domain.Blue}, nil).Once()
	join.On("Join", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { joinState = w.State() }).
		Return(nil).Once()

	require.NoError(t, w.Start(context.Background(), testGame()))
	require.Equal(t, StatePrompting, promptState)
	require.Equal(t, StateConfirming, joinState)
	require.Equal(t, StateIdle, w.State())
}

type blockingDialog struct {
	entered chan struct{}
	release chan struct{}
}

func (d *blockingDialog) Prompt(ctx context.Context, _ core.PromptRequest) (core.PromptResult, error) {
	close(d.entered)
	select {
	case <-d.release:
		return core.PromptResult{}, core.ErrDialogCanceled
	case <-ctx.Done():
		return core.PromptResult{}, ctx.Err()
	}
}

func TestJoinWorkflow_BusyRejectsSecondStart(t *testing.T) {
	dlg := &blockingDialog{entered: make(chan struct{}), release: make(chan struct{})}
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)

	done := make(chan error, 1)
	go func() { done <- w.Start(context.Background(), testGame()) }()
	<-dlg.entered

	require.ErrorIs(t, w.Start(context.Background(), testGame()), ErrWorkflowBusy)
	require.Equal(t, StatePrompting, w.State())

	close(dlg.release)
	require.NoError(t, <-done)
	require.Equal(t, StateIdle, w.State())
	join.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinWorkflow_ContextCanceledWhilePrompting(t *testing.T) {
	dlg := &blockingDialog{entered: make(chan struct{}), release: make(chan struct{})}
	w := NewJoinWorkflow(dlg, new(mockJoin), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx, testGame()) }()
	<-dlg.entered
	cancel()

	require.ErrorIs(t, <-done, context.Canceled)
	require.Equal(t, StateIdle, w.State())
}

func TestJoinWorkflow_NoColorsAvailable(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, ExcludeTakenColors{})

	full := domain.Game{ID: "full"}
	for _, c := range domain.AllColors() {
		full.Players = append(full.Players, domain.NewPlayer(c.String(), c, false))
	}

	require.ErrorIs(t, w.Start(context.Background(), full), ErrNoColorsAvailable)
	require.Equal(t, StateIdle, w.State())
	dlg.AssertNotCalled(t, "Prompt", mock.Anything, mock.Anything)
}

func TestJoinWorkflow_ColorNotOffered(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, ExcludeTakenColors{})

	dlg.On("Prompt", mock.Anything, mock.MatchedBy(func(req core.PromptRequest) bool {
		return !containsColor(req.Colors, domain.Red)
	})).Return(core.PromptResult{Name: "Alice", Color: domain.Red}, nil).Once()

	require.ErrorIs(t, w.Start(context.Background(), testGame()), ErrColorNotOffered)
	require.Equal(t, StateIdle, w.State())
	dlg.AssertExpectations(t)
	join.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJoinWorkflow_EmptyNameDoesNotJoin(t *testing.T) {
	dlg := new(mockDialog)
	join := new(mockJoin)
	w := NewJoinWorkflow(dlg, join, nil)

	dlg.On("Prompt", mock.Anything, mock.Anything).Return(core.PromptResult{Name: "", Color: domain.Blue}, nil).Once()

	require.ErrorIs(t, w.Start(context.Background(), testGame()), ErrEmptyName)
	require.Equal(t, StateIdle, w.State())
	join.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflowState_String(t *testing.T) {
	require.Equal(t, "idle", StateIdle.String())
	require.Equal(t, "prompting", StatePrompting.String())
	require.Equal(t, "confirming", StateConfirming.String())
	require.Equal(t, "WorkflowState(9)", WorkflowState(9).String())
}

func containsColor(colors []domain.Color, c domain.Color) bool {
	for _, got := range colors {
		if got == c {
			return true
		}
	}
	return false
}
