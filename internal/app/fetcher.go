package app

import (
	"context"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/bft-labs/brolfetch/internal/domain"
	"github.com/bft-labs/brolfetch/internal/ports"
)

// Fetcher runs the single request, save, confirm sequence.
type Fetcher struct {
	request    domain.RequestDescriptor
	dispatcher ports.RequestDispatcher
	store      ports.ResponseStore
	logger     ports.Logger
	out        io.Writer
}

// NewFetcher creates a fetcher. out receives the confirmation line.
func NewFetcher(
	request domain.RequestDescriptor,
	dispatcher ports.RequestDispatcher,
	store ports.ResponseStore,
	logger ports.Logger,
	out io.Writer,
) *Fetcher {
	return &Fetcher{
		request:    request,
		dispatcher: dispatcher,
		store:      store,
		logger:     logger,
		out:        out,
	}
}

// Run sends the request, saves whatever text comes back and then prints the
// confirmation. Nothing is written when the request fails, and nothing is
// printed when the save fails.
func (f *Fetcher) Run(ctx context.Context) error {
	start := time.Now()

	art, err := f.dispatcher.Dispatch(ctx, f.request)
	if err != nil {
		return fmt.Errorf("dispatch: %w", err)
	}

	if err := f.store.Save(ctx, art.Text); err != nil {
		return fmt.Errorf("save response: %w", err)
	}

	f.logger.Info("response saved",
		ports.String("path", f.store.Path()),
		ports.Int("status", art.StatusCode),
		ports.Int("chars", utf8.RuneCountInString(art.Text)),
		ports.Field{Key: "elapsed", Value: time.Since(start)})

	if _, err := fmt.Fprintf(f.out, "Response saved to %s\n", f.store.Path()); err != nil {
		return fmt.Errorf("write confirmation: %w", err)
	}
	return nil
}
