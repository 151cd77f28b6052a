package dashboard

import (
	"context"

	"github.com/catharsis02/usc.kiit-shopvision/internal/billing"
	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
	"github.com/catharsis02/usc.kiit-shopvision/internal/franchise"
)

// StockLevel feeds the inventory chart.
type StockLevel struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Stock int    `json:"stock"`
}

// FranchiseStats is the per-shop dashboard payload.
type FranchiseStats struct {
	RevenuePaise    int64            `json:"revenue_paise"`
	BillCount       int              `json:"bill_count"`
	AverageBill     int64            `json:"average_bill_paise"`
	CategoryRevenue map[string]int64 `json:"category_revenue_paise"`
	StockLevels     []StockLevel     `json:"stock_levels"`
}

// AdminStats aggregates across every franchise.
type AdminStats struct {
	FranchiseCount  int   `json:"franchise_count"`
	TotalSalesPaise int64 `json:"total_sales_paise"`
	BillCount       int   `json:"bill_count"`
}

type Service struct {
	bills      billing.Repository
	franchises franchise.Repository
	catalog    []catalog.Item
}

func NewService(bills billing.Repository, franchises franchise.Repository, items []catalog.Item) *Service {
	return &Service{
		bills:      bills,
		franchises: franchises,
		catalog:    items,
	}
}

// ForFranchise derives the shop's stats from its persisted bills.
func (s *Service) ForFranchise(ctx context.Context, franchiseID string) (*FranchiseStats, error) {
	records, err := s.bills.ListByFranchise(ctx, franchiseID)
	if err != nil {
		return nil, err
	}

	stats := &FranchiseStats{
		CategoryRevenue: make(map[string]int64),
	}

	for _, rec := range records {
		stats.BillCount++
		stats.RevenuePaise += rec.TotalPaise

		for _, line := range rec.Lines {
			lineRevenue := line.UnitPricePaise * int64(line.Quantity)
			category := "other"
			if item, ok := catalog.FindByID(s.catalog, line.ItemID); ok {
				category = item.Category
			}
			stats.CategoryRevenue[category] += lineRevenue
		}
	}

	if stats.BillCount > 0 {
		stats.AverageBill = stats.RevenuePaise / int64(stats.BillCount)
	}

	for _, item := range s.catalog {
		stats.StockLevels = append(stats.StockLevels, StockLevel{
			Name:  item.Name,
			Emoji: item.Emoji,
			Stock: item.Stock,
		})
	}

	return stats, nil
}

// ForAdmin aggregates sales across all franchises.
func (s *Service) ForAdmin(ctx context.Context) (*AdminStats, error) {
	franchises, err := s.franchises.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	stats := &AdminStats{FranchiseCount: len(franchises)}
	for _, f := range franchises {
		stats.TotalSalesPaise += f.SalesPaise
	}

	records, err := s.bills.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	stats.BillCount = len(records)

	return stats, nil
}
