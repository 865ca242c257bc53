package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/packmate/internal/client/fetch"
	"github.com/dmitrijs2005/packmate/internal/client/models"
	"github.com/dmitrijs2005/packmate/internal/client/ui"
)

const (
	msgAnalyzeFailed = "Failed to analyze receipt"
	msgInvoiceFailed = "Failed to add receipt"
)

// Receipt scans an optional receipt image, lets the user review the
// fields and files the result as an invoice.
func (a *App) Receipt(ctx context.Context, args []string) error {
	path := strings.TrimSpace(strings.Join(args, " "))
	if path == "" {
		var err error
		path, err = a.prompter.Input("Receipt image path (empty to fill in by hand):", "", false)
		if err != nil {
			return err
		}
	}

	var form models.Receipt
	if path != "" {
		tr := viewTracker[models.Receipt](a)
		scanned, err := load(ctx, a, tr, "Analyzing receipt...", func(ctx context.Context) (models.Receipt, error) {
			return a.receipts.Analyze(ctx, form, path)
		})
		switch {
		case errors.Is(err, fetch.ErrStale), errors.Is(err, fetch.ErrClosed):
			return nil
		case err != nil:
			ui.ErrorBanner(a.out, a.palette, msgAnalyzeFailed, "fill in the fields by hand")
		default:
			form = scanned
		}
	}

	form, err := receiptForm(a.prompter, form)
	if err != nil {
		return err
	}

	ok, err := a.prompter.Confirm("Submit receipt?", true)
	if err != nil {
		return err
	}
	if !ok {
		ui.Info(a.out, a.palette, "Receipt discarded.")
		return errFormCancelled
	}

	rctx, cancel := a.requestCtx(ctx)
	err = a.receipts.Submit(rctx, form)
	cancel()
	if err != nil {
		ui.ErrorBanner(a.out, a.palette, msgInvoiceFailed, "")
		return err
	}

	ui.SuccessBanner(a.out, a.palette, "Receipt saved")
	return nil
}
