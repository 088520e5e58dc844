package app

import (
	"context"
	"unicode"
)

// Key is a logical key, independent of the terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyDelete
	KeyConfirm
	KeyUp
	KeyDown
	KeyCancel
	KeyErase
	KeyRune
)

// Event is one key press. Rune is the raw character for every key that has
// one, so keys like quit and delete can still be typed while adding.
type Event struct {
	Key  Key
	Rune rune
}

// Result tells the loop what to do after an event.
type Result struct {
	Quit bool
}

// Reporter receives errors from actions. Errors never stop the loop.
type Reporter interface {
	Report(err error)
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(err error)

// Report calls f(err).
func (f ReporterFunc) Report(err error) { f(err) }

// Router dispatches events onto a State according to its screen mode.
type Router struct {
	state    *State
	reporter Reporter
}

// NewRouter returns a Router for state. A nil reporter drops errors.
func NewRouter(state *State, reporter Reporter) *Router {
	if reporter == nil {
		reporter = ReporterFunc(func(error) {})
	}
	return &Router{state: state, reporter: reporter}
}

// State returns the routed state.
func (r *Router) State() *State {
	return r.state
}

// Dispatch applies exactly one operation for ev. Any error is passed to the
// reporter and also returned.
func (r *Router) Dispatch(ctx context.Context, ev Event) (Result, error) {
	var (
		res Result
		err error
	)

	switch r.state.Mode() {
	case Browsing:
		res, err = r.browsing(ctx, ev)
	case Adding:
		err = r.adding(ctx, ev)
	}

	if err != nil {
		r.reporter.Report(err)
	}
	return res, err
}

func (r *Router) browsing(ctx context.Context, ev Event) (Result, error) {
	s := r.state
	switch ev.Key {
	case KeyQuit:
		return Result{Quit: true}, nil
	case KeyDelete:
		if s.Selection().IsNewEntry() {
			return Result{}, nil
		}
		return Result{}, s.DeleteSelected(ctx)
	case KeyConfirm:
		if s.Selection().IsNewEntry() {
			return Result{}, s.EnterAddMode()
		}
		return Result{}, s.ToggleCompletion(ctx)
	case KeyUp:
		s.MoveCursorUp()
	case KeyDown:
		s.MoveCursorDown()
	}
	return Result{}, nil
}

func (r *Router) adding(ctx context.Context, ev Event) error {
	s := r.state
	switch ev.Key {
	case KeyConfirm:
		return s.SubmitNewItem(ctx)
	case KeyCancel:
		s.CancelAddMode()
		return nil
	case KeyErase:
		return s.BackspaceInput()
	}

	if ev.Rune != 0 && unicode.IsPrint(ev.Rune) {
		return s.AppendToInput(ev.Rune)
	}
	return nil
}
