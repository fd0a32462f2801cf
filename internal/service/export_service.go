package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ledgerly/ledgerly-backend/internal/domain"
	"github.com/ledgerly/ledgerly-backend/internal/metrics"
	"github.com/ledgerly/ledgerly-backend/internal/repository/storage"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const (
	exportSheet       = "Transactions"
	xlsxContentType   = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	defaultLinkExpiry = 15 * time.Minute
)

// ErrExportArchiveDisabled is returned when no export store is configured
var ErrExportArchiveDisabled = errors.New("Export archive is not configured")

var exportHeader = []interface{}{"Date", "Type", "Description", "Category", "Payment method", "Amount", "Note"}

// ExportService renders transactions as XLSX workbooks
type ExportService struct {
	transactionService *TransactionService
	store              storage.ExportStore
	linkExpiry         time.Duration
	now                func() time.Time
}

// NewExportService creates a new ExportService. store may be nil, which disables archiving.
func NewExportService(transactionService *TransactionService, store storage.ExportStore) *ExportService {
	return &ExportService{
		transactionService: transactionService,
		store:              store,
		linkExpiry:         defaultLinkExpiry,
		now:                time.Now,
	}
}

// Workbook is a rendered export
type Workbook struct {
	Filename string
	Data     []byte
	Rows     int
}

// ExportArchive points to an uploaded workbook
type ExportArchive struct {
	Key       string    `json:"key"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
	Rows      int       `json:"rows"`
}

// BuildWorkbook renders every transaction matching filters, newest first
func (s *ExportService) BuildWorkbook(ctx context.Context, ownerID uuid.UUID, filters domain.TransactionFilters) (*Workbook, error) {
	transactions, err := s.transactionService.ListAll(ctx, ownerID, filters)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("xlsx", "error").Inc()
		return nil, err
	}

	data, err := renderTransactions(transactions)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("xlsx", "error").Inc()
		log.Error().Err(err).Str("owner_id", ownerID.String()).Msg("Failed to render export")
		return nil, err
	}

	metrics.ExportsTotal.WithLabelValues("xlsx", "success").Inc()
	return &Workbook{
		Filename: fmt.Sprintf("transactions-%s.xlsx", s.now().Format("20060102-150405")),
		Data:     data,
		Rows:     len(transactions),
	}, nil
}

// Archive uploads the workbook to the export store and returns a time-limited link
func (s *ExportService) Archive(ctx context.Context, ownerID uuid.UUID, filters domain.TransactionFilters) (*ExportArchive, error) {
	if s.store == nil {
		return nil, ErrExportArchiveDisabled
	}

	workbook, err := s.BuildWorkbook(ctx, ownerID, filters)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("exports/%s/%s", ownerID, workbook.Filename)
	if err := s.store.Put(ctx, key, workbook.Data, xlsxContentType); err != nil {
		metrics.ExportsTotal.WithLabelValues("archive", "error").Inc()
		log.Error().Err(err).Str("owner_id", ownerID.String()).Str("key", key).Msg("Failed to upload export")
		return nil, err
	}

	url, err := s.store.PresignedURL(ctx, key, s.linkExpiry)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("archive", "error").Inc()
		return nil, err
	}

	metrics.ExportsTotal.WithLabelValues("archive", "success").Inc()
	return &ExportArchive{
		Key:       key,
		URL:       url,
		ExpiresAt: s.now().Add(s.linkExpiry).UTC(),
		Rows:      workbook.Rows,
	}, nil
}

func renderTransactions(transactions []*domain.Transaction) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", "G1", bold); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "C", "C", 40); err != nil {
		return nil, err
	}

	for i, tx := range transactions {
		category := domain.UncategorizedName
		if tx.Category != nil {
			category = tx.Category.Name
		}
		note := ""
		if tx.Note != nil {
			note = *tx.Note
		}
		amount, _ := tx.Amount.Float64()

		row := []interface{}{
			tx.Date.String(),
			string(tx.Type),
			tx.Description,
			category,
			tx.PaymentMethod.Label(),
			amount,
			note,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
