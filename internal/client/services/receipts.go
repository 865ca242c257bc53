package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/packmate/internal/client/models"
	"github.com/dmitrijs2005/packmate/internal/logging"
)

// ReceiptUploadName is the file name every receipt image is uploaded as.
const ReceiptUploadName = "receipt.jpg"

// ReceiptAPI is the subset of the remote API used by ReceiptService.
type ReceiptAPI interface {
	AnalyzeReceipt(ctx context.Context, filename string, image io.Reader) (models.Receipt, error)
	AddInvoice(ctx context.Context, receipt models.Receipt) error
}

// ReceiptService backs the add-receipt view: scan an image into form
// fields, then submit the edited form as an invoice.
type ReceiptService interface {
	Analyze(ctx context.Context, form models.Receipt, imagePath string) (models.Receipt, error)
	Submit(ctx context.Context, receipt models.Receipt) error
}

type receiptService struct {
	api  ReceiptAPI
	log  logging.Logger
	open func(name string) (io.ReadCloser, error)
}

func NewReceiptService(api ReceiptAPI, log logging.Logger) ReceiptService {
	if log == nil {
		log = logging.Nop()
	}
	return &receiptService{
		api: api,
		log: log,
		open: func(name string) (io.ReadCloser, error) {
			return os.Open(name)
		},
	}
}

// Analyze uploads the image at imagePath and merges the extracted fields
// into form. Fields the server left empty keep the form's values.
func (s *receiptService) Analyze(ctx context.Context, form models.Receipt, imagePath string) (models.Receipt, error) {
	f, err := s.open(imagePath)
	if err != nil {
		return form, fmt.Errorf("open receipt image: %w", err)
	}
	defer f.Close()

	extracted, err := s.api.AnalyzeReceipt(ctx, ReceiptUploadName, f)
	if err != nil {
		s.log.Error(ctx, "analyze receipt failed", "error", err)
		return form, fmt.Errorf("analyze receipt: %w", err)
	}
	return form.Merge(extracted), nil
}

func (s *receiptService) Submit(ctx context.Context, receipt models.Receipt) error {
	if err := s.api.AddInvoice(ctx, receipt); err != nil {
		s.log.Error(ctx, "add invoice failed", "error", err)
		return fmt.Errorf("add invoice: %w", err)
	}
	return nil
}
