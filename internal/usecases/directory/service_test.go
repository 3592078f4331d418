package directory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func ptr(s string) *string {
	return &s
}

func TestSearchStores(t *testing.T) {
	ctrl := gomock.NewController(t)
	stores := mocks.NewMockStoreRepository(ctrl)

	list := []domain.Store{
		{ID: "1", Name: ptr("Biryani Blues"), City: ptr("Delhi")},
		{ID: "2", Name: ptr("Green Grocer"), Phone: ptr("+91 98200 11111")},
		{ID: "3", Name: nil, Email: ptr("hello@delhidarbar.in")},
	}
	stores.EXPECT().List(gomock.Any()).Return(list, nil).Times(3)

	service := NewService(stores, nil, nil)

	tests := []struct {
		query string
		ids   []string
	}{
		{query: "DELHI", ids: []string{"1", "3"}},
		{query: "98200", ids: []string{"2"}},
		{query: "", ids: []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		got, err := service.SearchStores(context.Background(), tt.query)
		require.NoError(t, err)

		ids := make([]string, 0, len(got))
		for _, s := range got {
			ids = append(ids, s.ID)
		}
		assert.Equal(t, tt.ids, ids, tt.query)
	}
}

func TestSearchPartners(t *testing.T) {
	ctrl := gomock.NewController(t)
	partners := mocks.NewMockPartnerRepository(ctrl)
	partners.EXPECT().List(gomock.Any()).Return([]domain.Partner{
		{ID: "p1", Type: domain.PartnerTypeDelivery, Name: ptr("Ravi"), Vehicle: ptr("Scooter")},
		{ID: "p2", Type: domain.PartnerTypeLead, Name: ptr("Anita")},
	}, nil)

	got, err := NewService(nil, partners, nil).SearchPartners(context.Background(), "scoot")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}

func TestSearchCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	campaigns := mocks.NewMockCampaignRepository(ctrl)
	campaigns.EXPECT().List(gomock.Any()).Return([]domain.Campaign{
		{ID: "c1", Name: "Monsoon Sale"},
		{ID: "c2", Name: "Diwali", Description: ptr("Free delivery over 299")},
	}, nil)

	got, err := NewService(nil, nil, campaigns).SearchCampaigns(context.Background(), "free delivery")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c2", got[0].ID)
}

func TestSearch_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	stores := mocks.NewMockStoreRepository(ctrl)
	stores.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := NewService(stores, nil, nil).SearchStores(context.Background(), "x")

	assert.True(t, domain.IsSourceError(err))
	assert.ErrorIs(t, err, domain.ErrNoData)
}
