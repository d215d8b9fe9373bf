package mapview

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/kidmap/backend/internal/domain"
)

// Request is a popup action sent back by the client on behalf of a user.
// Place is only read by commands that may create a favorite.
type Request struct {
	Command Command
	UserID  string
	PlaceID string
	Place   *domain.PlaceSnapshot
}

// Result describes the favorite after a command ran.
// Favorite is nil when the command left no favorite behind (e.g. un-favoriting).
type Result struct {
	Command    Command
	PlaceID    string
	IsFavorite bool
	Favorite   *domain.Favorite
}

// HandlerFunc executes one command.
type HandlerFunc func(ctx context.Context, req Request) (Result, error)

// Dispatcher routes commands to registered handlers.
// Register all handlers before the dispatcher is shared between goroutines.
type Dispatcher struct {
	handlers map[Command]HandlerFunc
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Command]HandlerFunc)}
}

// Register binds h to cmd, replacing any previous binding.
func (d *Dispatcher) Register(cmd Command, h HandlerFunc) {
	d.handlers[cmd] = h
}

// Dispatch validates req and runs the handler bound to req.Command.
// Unknown commands and requests without a place id fail with domain.ErrValidation.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (Result, error) {
	h, ok := d.handlers[req.Command]
	if !ok {
		return Result{}, fmt.Errorf("mapview.Dispatcher.Dispatch: %w: unknown command %q", domain.ErrValidation, req.Command)
	}
	if strings.TrimSpace(req.PlaceID) == "" {
		return Result{}, fmt.Errorf("mapview.Dispatcher.Dispatch: %w: placeId is required", domain.ErrValidation)
	}
	res, err := h(ctx, req)
	if err != nil {
		return Result{}, fmt.Errorf("mapview.Dispatcher.Dispatch: %s: %w", req.Command, err)
	}
	res.Command = req.Command
	res.PlaceID = req.PlaceID
	return res, nil
}
