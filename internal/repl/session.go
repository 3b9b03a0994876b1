package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/cory-johannsen/cardex/internal/query"
	"github.com/cory-johannsen/cardex/internal/render"
)

// Options controls how a Session presents itself.
type Options struct {
	Prompt string
	Color  bool
	Banner bool
}

// Session answers queries typed on a Console until the user quits or input ends.
type Session struct {
	engine  *query.Engine
	console *Console
	styler  render.Styler
	opts    Options
	logger  *zap.Logger
}

// NewSession creates a Session.
//
// Precondition: engine, console and logger must not be nil.
func NewSession(engine *query.Engine, console *Console, opts Options, logger *zap.Logger) *Session {
	return &Session{
		engine:  engine,
		console: console,
		styler:  render.Styler{Enabled: opts.Color},
		opts:    opts,
		logger:  logger,
	}
}

// Run reads and answers queries.
//
// Postcondition: Returns nil on quit or end of input, ctx.Err() on cancellation
// (including while waiting for a line, which is then not run), or a wrapped error
// when the console fails.
func (s *Session) Run(ctx context.Context) error {
	if s.opts.Banner {
		welcome := s.styler.Colorf(render.Green, "Welcome to the creature search engine. %d creatures loaded.", s.engine.Catalog().Len())
		if err := s.console.WriteLine(welcome); err != nil {
			return fmt.Errorf("writing banner: %w", err)
		}
		if err := s.console.Write(render.Help(s.styler)); err != nil {
			return fmt.Errorf("writing help: %w", err)
		}
	}

	queries := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := s.console.Prompt(ctx, s.opts.Prompt)
		if errors.Is(err, io.EOF) {
			s.logger.Info("session ended", zap.String("reason", "eof"), zap.Int("queries", queries))
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			s.logger.Info("session ended", zap.String("reason", "cancelled"), zap.Int("queries", queries))
			return ctxErr
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		quit, err := s.Handle(line)
		if err != nil {
			return err
		}
		if quit {
			s.logger.Info("session ended", zap.String("reason", "quit"), zap.Int("queries", queries))
			return nil
		}
		queries++
	}
}

// Handle answers a single non-blank line.
//
// Postcondition: quit is true for "quit" and "exit". Query errors are written to
// the console and are not returned; only console write failures are.
func (s *Session) Handle(line string) (quit bool, err error) {
	req := query.Parse(line)
	switch strings.ToLower(req.Label) {
	case "quit", "exit":
		return true, nil
	case "help":
		return false, s.write(render.Help(s.styler))
	}

	res, err := s.engine.Run(req)
	if err != nil {
		return false, s.write(render.Error(err, s.styler))
	}
	return false, s.write(render.Creatures(res.Creatures, s.styler))
}

func (s *Session) write(text string) error {
	if err := s.console.Write(text); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
