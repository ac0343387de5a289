package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tahir-sigmadevelopers/multanimango/pkg/logger"
	"github.com/tahir-sigmadevelopers/multanimango/pkg/mangoapi"
)

const recentOrderCount = 5

type statsAPI interface {
	GetProductStats(ctx context.Context) (*mangoapi.ProductStats, error)
	GetContactStats(ctx context.Context) (*mangoapi.ContactStats, error)
	GetOrderStats(ctx context.Context) (*mangoapi.OrderStats, error)
	ListOrders(ctx context.Context) ([]mangoapi.Order, error)
}

// Service assembles the admin dashboard overview. The four upstream reads
// are independent, so they run concurrently; one failure fails the whole
// overview rather than rendering partial numbers.
type Service struct {
	api  statsAPI
	logg *logger.Logger
}

// Overview is everything the dashboard landing page shows.
type Overview struct {
	Mangoes      mangoapi.ProductStats `json:"mangoes"`
	Contacts     mangoapi.ContactStats `json:"contacts"`
	Orders       mangoapi.OrderStats   `json:"orders"`
	RecentOrders []mangoapi.Order      `json:"recentOrders"`
}

func NewService(api statsAPI, logg *logger.Logger) *Service {
	return &Service{api: api, logg: logg}
}

// Overview fetches all dashboard counters plus the most recent orders.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var overview Overview

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		stats, err := s.api.GetProductStats(groupCtx)
		if err != nil {
			return err
		}
		overview.Mangoes = *stats
		return nil
	})
	group.Go(func() error {
		stats, err := s.api.GetContactStats(groupCtx)
		if err != nil {
			return err
		}
		overview.Contacts = *stats
		return nil
	})
	group.Go(func() error {
		stats, err := s.api.GetOrderStats(groupCtx)
		if err != nil {
			return err
		}
		overview.Orders = *stats
		return nil
	})
	group.Go(func() error {
		orders, err := s.api.ListOrders(groupCtx)
		if err != nil {
			return err
		}
		if len(orders) > recentOrderCount {
			orders = orders[:recentOrderCount]
		}
		if orders == nil {
			orders = []mangoapi.Order{}
		}
		overview.RecentOrders = orders
		return nil
	})

	if err := group.Wait(); err != nil {
		s.logg.Error(ctx, "failed to load dashboard overview", err)
		return nil, err
	}
	return &overview, nil
}
