// Package directory lista lojas, parceiros e campanhas aplicando a busca do painel
package directory

import (
	"context"

	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/reporting"
)

var (
	storeFields = []reporting.FieldFunc[domain.Store]{
		func(s domain.Store) *string { return s.Name },
		func(s domain.Store) *string { return s.City },
		func(s domain.Store) *string { return s.Email },
		func(s domain.Store) *string { return s.Phone },
	}

	partnerFields = []reporting.FieldFunc[domain.Partner]{
		func(p domain.Partner) *string { return p.Name },
		func(p domain.Partner) *string { return p.Email },
		func(p domain.Partner) *string { return p.Phone },
		func(p domain.Partner) *string { return p.Vehicle },
	}

	campaignFields = []reporting.FieldFunc[domain.Campaign]{
		reporting.StringField(func(c domain.Campaign) string { return c.Name }),
		func(c domain.Campaign) *string { return c.Description },
	}
)

type Searcher interface {
	SearchStores(ctx context.Context, query string) ([]domain.Store, error)
	SearchPartners(ctx context.Context, query string) ([]domain.Partner, error)
	SearchCampaigns(ctx context.Context, query string) ([]domain.Campaign, error)
}

type Service struct {
	stores    repository.StoreRepository
	partners  repository.PartnerRepository
	campaigns repository.CampaignRepository
}

func NewService(
	stores repository.StoreRepository,
	partners repository.PartnerRepository,
	campaigns repository.CampaignRepository,
) Searcher {
	return &Service{
		stores:    stores,
		partners:  partners,
		campaigns: campaigns,
	}
}

func (s *Service) SearchStores(ctx context.Context, query string) ([]domain.Store, error) {
	stores, err := s.stores.List(ctx)
	if err != nil {
		return nil, domain.NewSourceError(err)
	}

	return reporting.Filter(stores, query, storeFields...), nil
}

func (s *Service) SearchPartners(ctx context.Context, query string) ([]domain.Partner, error) {
	partners, err := s.partners.List(ctx)
	if err != nil {
		return nil, domain.NewSourceError(err)
	}

	return reporting.Filter(partners, query, partnerFields...), nil
}

func (s *Service) SearchCampaigns(ctx context.Context, query string) ([]domain.Campaign, error) {
	campaigns, err := s.campaigns.List(ctx)
	if err != nil {
		return nil, domain.NewSourceError(err)
	}

	return reporting.Filter(campaigns, query, campaignFields...), nil
}
