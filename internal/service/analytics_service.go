package service

import (
	"context"
	"fmt"

	"rice-shop/internal/model"
	"rice-shop/internal/repository"

	"github.com/rs/zerolog"
)

// analyticsService implements AnalyticsService. Aggregation happens in
// memory over the full order list; order volume is small enough that
// pushing the arithmetic into SQL is not worth the extra queries.
type analyticsService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger.With().Str("service", "analytics").Logger(),
	}
}

// Summary returns shop-wide totals. Revenue counts confirmed orders
// only.
func (s *analyticsService) Summary(ctx context.Context) (*model.AnalyticsSummary, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	productCount, err := s.productRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	summary := &model.AnalyticsSummary{
		TotalOrders:   len(orders),
		TotalProducts: productCount,
	}
	for _, order := range orders {
		if order.Confirmed {
			summary.ConfirmedOrders++
			summary.TotalRevenue += order.TotalPrice
		}
	}

	return summary, nil
}

// Monthly returns confirmed orders for one calendar month (1-12). When
// month or year is zero, all confirmed orders are returned.
func (s *analyticsService) Monthly(ctx context.Context, month, year int) (*model.MonthlyAnalytics, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	result := &model.MonthlyAnalytics{Orders: []model.Order{}}
	for _, order := range orders {
		if !order.Confirmed {
			continue
		}
		if month != 0 && year != 0 {
			created := order.CreatedAt
			if int(created.Month()) != month || created.Year() != year {
				continue
			}
		}
		result.Orders = append(result.Orders, order)
		result.TotalRevenue += order.TotalPrice
	}
	result.TotalOrders = len(result.Orders)

	return result, nil
}
