package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/billboard-rentals/internal/finance"
	"github.com/nurpe/billboard-rentals/internal/model"
	"github.com/nurpe/billboard-rentals/internal/schedule"
	"github.com/nurpe/billboard-rentals/internal/units"
)

type ContractStore interface {
	Create(ctx context.Context, contract model.Contract) (*model.Contract, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	List(ctx context.Context, status *model.ContractStatus) ([]model.Contract, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type BillboardStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Billboard, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.BillboardStatus) error
}

// PriceResolver is satisfied by pricing.Resolver; tests seed a fake.
type PriceResolver interface {
	ResolveMonthly(size, level, category string, months int) (float64, error)
}

type ExcelGenerator interface {
	ContractsWorkbook(contracts []model.Contract) ([]byte, error)
}

type PDFGenerator interface {
	ContractDocument(doc ContractDocument) ([]byte, error)
}

// ContractDocument bundles everything the printable contract needs.
type ContractDocument struct {
	Contract    model.Contract
	Billboards  []model.Billboard
	CompanyName string
}

type ContractService struct {
	contracts  ContractStore
	billboards BillboardStore
	resolver   PriceResolver
	excel      ExcelGenerator
	pdf        PDFGenerator
	company    string
	log        zerolog.Logger
}

func NewContractService(
	contracts ContractStore,
	billboards BillboardStore,
	resolver PriceResolver,
	excel ExcelGenerator,
	pdf PDFGenerator,
	company string,
	log zerolog.Logger,
) *ContractService {
	return &ContractService{
		contracts:  contracts,
		billboards: billboards,
		resolver:   resolver,
		excel:      excel,
		pdf:        pdf,
		company:    company,
		log:        log,
	}
}

// InstallationInput carries the per-billboard installation price the user
// entered; the face count comes from the billboard record.
type InstallationInput struct {
	BillboardID uuid.UUID
	Price       float64
}

type QuoteInput struct {
	BillboardIDs     []uuid.UUID
	CustomerCategory string
	Months           int
	DiscountType     string
	DiscountValue    float64
	OperatingFeeRate *float64
	Installation     []InstallationInput
	InstallmentCount int
	StartAt          time.Time
}

// BillboardPrice is one billboard's resolved rental line in a quote.
type BillboardPrice struct {
	BillboardID uuid.UUID `json:"billboard_id"`
	Name        string    `json:"name"`
	Size        string    `json:"size"`
	Level       string    `json:"level"`
	Price       float64   `json:"price"`
}

type Quote struct {
	Lines        []BillboardPrice       `json:"lines"`
	Financials   finance.Breakdown      `json:"financials"`
	Installments []schedule.Installment `json:"installments"`
	Validation   schedule.Validation    `json:"validation"`
}

// Quote resolves prices for the requested billboards and derives the full
// financial breakdown plus an evenly-distributed installment preview.
// Re-run on every input change; it never persists anything.
func (s *ContractService) Quote(ctx context.Context, in QuoteInput) (*Quote, error) {
	if len(in.BillboardIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one billboard is required", ErrInvalidInput)
	}
	if in.Months <= 0 {
		return nil, fmt.Errorf("%w: months must be positive", ErrInvalidInput)
	}

	category := in.CustomerCategory
	if category == "" {
		category = units.BaseCategories[0]
	}

	installationPrices := make(map[uuid.UUID]float64, len(in.Installation))
	for _, item := range in.Installation {
		installationPrices[item.BillboardID] = item.Price
	}

	lines := make([]BillboardPrice, 0, len(in.BillboardIDs))
	details := make([]finance.InstallationDetail, 0, len(in.Installation))
	baseTotal := 0.0
	for _, id := range in.BillboardIDs {
		board, err := s.billboards.GetByID(ctx, id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, fmt.Errorf("%w: billboard %s", ErrNotFound, id)
			}
			return nil, err
		}

		price, err := s.resolver.ResolveMonthly(board.Size, board.Level, category, in.Months)
		if err != nil {
			return nil, err
		}
		baseTotal += price
		lines = append(lines, BillboardPrice{
			BillboardID: board.ID,
			Name:        board.Name,
			Size:        units.CanonicalizeSize(board.Size),
			Level:       units.CanonicalizeLevel(board.Level),
			Price:       price,
		})

		if instPrice, ok := installationPrices[id]; ok {
			details = append(details, finance.InstallationDetail{
				BillboardID: id.String(),
				Price:       instPrice,
				Faces:       board.Faces,
			})
		}
	}

	breakdown := finance.Compute(finance.Input{
		BaseTotal:        baseTotal,
		DiscountType:     in.DiscountType,
		DiscountValue:    in.DiscountValue,
		Installation:     details,
		OperatingFeeRate: in.OperatingFeeRate,
	})

	count := in.InstallmentCount
	if count <= 0 {
		count = 1
	}
	start := in.StartAt
	if start.IsZero() {
		start = time.Now()
	}
	installments := schedule.DistributeEvenly(breakdown.FinalTotal, count, schedule.MonthlyFrom(start))

	return &Quote{
		Lines:        lines,
		Financials:   breakdown,
		Installments: installments,
		Validation:   schedule.Validate(installments, breakdown.FinalTotal),
	}, nil
}

type CreateContractInput struct {
	QuoteInput
	Number       string
	CustomerID   *uuid.UUID
	CustomerName string
	AdType       string
	EndAt        time.Time
	Installments []schedule.Installment
}

// Create persists a contract from fully-computed values. When the caller did
// not edit the installment preview, the evenly-distributed schedule is used.
func (s *ContractService) Create(ctx context.Context, in CreateContractInput) (*model.Contract, error) {
	if strings.TrimSpace(in.Number) == "" {
		return nil, fmt.Errorf("%w: contract number is required", ErrInvalidInput)
	}
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	quote, err := s.Quote(ctx, in.QuoteInput)
	if err != nil {
		return nil, err
	}

	installments := in.Installments
	if len(installments) == 0 {
		installments = quote.Installments
	}
	validation := schedule.Validate(installments, quote.Financials.FinalTotal)
	if !validation.OK {
		s.log.Warn().
			Str("number", in.Number).
			Float64("difference", validation.Difference).
			Msg("installment schedule does not match contract total")
	}

	start := in.StartAt
	if start.IsZero() {
		start = time.Now()
	}
	end := in.EndAt
	if end.IsZero() {
		end = start.AddDate(0, in.Months, 0)
	}

	records := make([]model.Installment, 0, len(installments))
	for i, inst := range installments {
		records = append(records, model.Installment{
			Seq:         i,
			Amount:      inst.Amount,
			PaymentType: inst.PaymentType,
			Description: inst.Description,
			DueDate:     inst.DueDate,
		})
	}

	category := in.QuoteInput.CustomerCategory
	if category == "" {
		category = units.BaseCategories[0]
	}

	contract := model.Contract{
		Number:           in.Number,
		CustomerID:       in.CustomerID,
		CustomerName:     in.CustomerName,
		CustomerCategory: category,
		AdType:           in.AdType,
		StartAt:          start,
		EndAt:            end,
		DurationMonths:   in.Months,
		BaseTotal:        quote.Financials.BaseTotal,
		DiscountType:     quote.Financials.DiscountType,
		DiscountValue:    quote.Financials.DiscountValue,
		DiscountAmount:   quote.Financials.DiscountAmount,
		FinalTotal:       quote.Financials.FinalTotal,
		InstallationCost: quote.Financials.InstallationCost,
		RentalCostOnly:   quote.Financials.RentalCostOnly,
		OperatingFeeRate: quote.Financials.OperatingFeeRate,
		OperatingFee:     quote.Financials.OperatingFee,
		Status:           model.ContractStatusActive,
		BillboardIDs:     in.BillboardIDs,
		Installments:     records,
	}

	saved, err := s.contracts.Create(ctx, contract)
	if err != nil {
		return nil, err
	}

	for _, id := range in.BillboardIDs {
		if err := s.billboards.UpdateStatus(ctx, id, model.BillboardStatusRented); err != nil {
			s.log.Error().Err(err).Str("billboard_id", id.String()).Msg("billboard status update failed")
		}
	}

	return saved, nil
}

// Import ingests contracts exported from the legacy system. Field-name
// spelling variants are resolved by the record adapter; amounts are carried
// over as exported and never re-priced.
func (s *ContractService) Import(ctx context.Context, records []map[string]any) ([]model.Contract, error) {
	imported := make([]model.Contract, 0, len(records))
	for i, rec := range records {
		contract := model.ContractFromRecord(rec)
		if strings.TrimSpace(contract.Number) == "" {
			return nil, fmt.Errorf("%w: record %d has no contract number", ErrInvalidInput, i)
		}
		if contract.CustomerCategory == "" {
			contract.CustomerCategory = units.BaseCategories[0]
		}
		if contract.DiscountValue > 0 {
			contract.DiscountType = "fixed"
			contract.DiscountAmount = contract.DiscountValue
			if contract.DiscountAmount > contract.BaseTotal {
				contract.DiscountAmount = contract.BaseTotal
			}
		}
		contract.FinalTotal = contract.BaseTotal - contract.DiscountAmount
		contract.Status = model.ContractStatusActive

		saved, err := s.contracts.Create(ctx, contract)
		if err != nil {
			return nil, err
		}
		imported = append(imported, *saved)
	}

	s.log.Info().Int("count", len(imported)).Msg("legacy contracts imported")
	return imported, nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	contract, err := s.contracts.GetByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) List(ctx context.Context, status *model.ContractStatus) ([]model.Contract, error) {
	return s.contracts.List(ctx, status)
}

func (s *ContractService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.contracts.Delete(ctx, id)
}

type ExportResult struct {
	FileName string
	Content  []byte
}

func (s *ContractService) ExportExcel(ctx context.Context, status *model.ContractStatus) (*ExportResult, error) {
	contracts, err := s.contracts.List(ctx, status)
	if err != nil {
		return nil, err
	}
	content, err := s.excel.ContractsWorkbook(contracts)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("contracts-%s.xlsx", time.Now().Format("20060102"))
	return &ExportResult{FileName: name, Content: content}, nil
}

func (s *ContractService) Document(ctx context.Context, id uuid.UUID) (*ExportResult, error) {
	contract, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	boards := make([]model.Billboard, 0, len(contract.BillboardIDs))
	for _, billboardID := range contract.BillboardIDs {
		board, err := s.billboards.GetByID(ctx, billboardID)
		if err != nil {
			return nil, err
		}
		boards = append(boards, *board)
	}

	content, err := s.pdf.ContractDocument(ContractDocument{
		Contract:    *contract,
		Billboards:  boards,
		CompanyName: s.company,
	})
	if err != nil {
		return nil, err
	}
	return &ExportResult{
		FileName: fmt.Sprintf("contract-%s.pdf", sanitizeFileName(contract.Number)),
		Content:  content,
	}, nil
}

func sanitizeFileName(input string) string {
	result := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z':
			result = append(result, r)
		case r >= 'A' && r <= 'Z':
			result = append(result, r)
		case r >= '0' && r <= '9':
			result = append(result, r)
		case r == '-', r == '_':
			result = append(result, r)
		default:
			result = append(result, '-')
		}
	}
	return strings.Trim(string(result), "-")
}
