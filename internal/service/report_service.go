package service

import (
	"context"
	"fmt"
	"time"

	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/model"
	"github.com/drivepribaditaqy-stack/POS-Orca-Cafe/internal/repository"

	"github.com/rs/zerolog"
)

const topProductsLimit = 10

// reportService implements ReportService.
type reportService struct {
	reportRepo repository.ReportRepository
	logger     zerolog.Logger
}

// NewReportService creates a new report service.
func NewReportService(reportRepo repository.ReportRepository, logger zerolog.Logger) ReportService {
	return &reportService{
		reportRepo: reportRepo,
		logger:     logger.With().Str("service", "report").Logger(),
	}
}

// Summary aggregates revenue, expenses and net profit for the range.
func (s *reportService) Summary(ctx context.Context, start, end time.Time) (*model.FinancialSummary, error) {
	revenue, err := s.reportRepo.RevenueBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	expense, err := s.reportRepo.ExpenseTotalBetween(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to build summary: %w", err)
	}

	return &model.FinancialSummary{
		TotalRevenue: revenue,
		TotalExpense: expense,
		NetProfit:    revenue - expense,
	}, nil
}

// DailyRevenue returns the revenue trend for the range.
func (s *reportService) DailyRevenue(ctx context.Context, start, end time.Time) ([]model.DailyRevenue, error) {
	points, err := s.reportRepo.DailyRevenue(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily revenue: %w", err)
	}
	return points, nil
}

// TopProducts returns the ten best-selling products for the range.
func (s *reportService) TopProducts(ctx context.Context, start, end time.Time) ([]model.ProductSales, error) {
	sales, err := s.reportRepo.TopProducts(ctx, start, end, topProductsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top products: %w", err)
	}
	return sales, nil
}

// ExpensesByCategory returns expense totals grouped by category.
func (s *reportService) ExpensesByCategory(ctx context.Context, start, end time.Time) ([]model.ExpenseCategoryTotal, error) {
	totals, err := s.reportRepo.ExpensesByCategory(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses by category: %w", err)
	}
	return totals, nil
}

// ProductMargins returns price, cost of goods and margin per product.
func (s *reportService) ProductMargins(ctx context.Context) ([]model.ProductMargin, error) {
	margins, err := s.reportRepo.ProductMargins(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get product margins: %w", err)
	}
	return margins, nil
}
