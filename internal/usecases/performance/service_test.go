package performance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/delivery-dashboard-api/infrastructure/repository"
	repomocks "github.com/vfg2006/delivery-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/delivery-dashboard-api/internal/domain"
	"github.com/vfg2006/delivery-dashboard-api/internal/metrics"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	service   *Service
	snapshots *repomocks.MockSnapshotRepository
	events    *repomocks.MockEventRepository
	partners  *repomocks.MockPartnerRepository
	stores    *repomocks.MockStoreRepository
	activity  *repomocks.MockActivityRepository
}

func newFixture(t *testing.T, loc *time.Location) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		snapshots: repomocks.NewMockSnapshotRepository(ctrl),
		events:    repomocks.NewMockEventRepository(ctrl),
		partners:  repomocks.NewMockPartnerRepository(ctrl),
		stores:    repomocks.NewMockStoreRepository(ctrl),
		activity:  repomocks.NewMockActivityRepository(ctrl),
	}

	f.service = NewService(f.snapshots, f.events, f.partners, f.stores, f.activity,
		metrics.New(prometheus.NewRegistry()),
		Options{DefaultDays: 7, MaxDays: 90, Location: loc},
	)

	return f
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestGetOverview(t *testing.T) {
	f := newFixture(t, time.UTC)

	snapshots := []domain.PeriodSnapshot{
		{Date: day(1), Revenue: 1000, Orders: 40, ActivePartners: 10, Commission: 100},
		{Date: day(2), Revenue: 1500, Orders: 30, ActivePartners: 10, Commission: 0},
	}
	f.snapshots.EXPECT().ListLatest(gomock.Any(), 7).Return(snapshots, nil)

	overview, err := f.service.GetOverview(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 7, overview.Days)
	assert.Equal(t, snapshots, overview.Snapshots)
	require.Len(t, overview.Deltas, len(domain.SnapshotFields))

	byField := make(map[domain.SnapshotField]domain.SnapshotDelta)
	for _, delta := range overview.Deltas {
		byField[delta.Field] = delta
	}

	assert.Equal(t, 50.0, byField[domain.SnapshotRevenue].Percent)
	assert.Equal(t, -25.0, byField[domain.SnapshotOrders].Percent)
	assert.Equal(t, 0.0, byField[domain.SnapshotActivePartners].Percent)
	assert.True(t, byField[domain.SnapshotActivePartners].Comparable)
	assert.Equal(t, -100.0, byField[domain.SnapshotCommission].Percent)
	assert.False(t, byField[domain.SnapshotNewCustomers].Comparable)
}

func TestGetOverview_SingleSnapshot(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.snapshots.EXPECT().ListLatest(gomock.Any(), 30).Return([]domain.PeriodSnapshot{{Date: day(1), Revenue: 10}}, nil)

	overview, err := f.service.GetOverview(context.Background(), 30)

	require.NoError(t, err)
	for _, delta := range overview.Deltas {
		assert.False(t, delta.Comparable)
	}
}

func TestGetOverview_Errors(t *testing.T) {
	t.Run("Dias fora do intervalo", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		for _, days := range []int{-1, 1, 91} {
			_, err := f.service.GetOverview(context.Background(), days)
			assert.True(t, domain.IsValidationError(err), days)
		}
	})

	t.Run("Série vazia", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		f.snapshots.EXPECT().ListLatest(gomock.Any(), 7).Return([]domain.PeriodSnapshot{}, nil)

		_, err := f.service.GetOverview(context.Background(), 7)
		assert.ErrorIs(t, err, domain.ErrNoData)
	})

	t.Run("Falha no banco", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		f.snapshots.EXPECT().ListLatest(gomock.Any(), 7).Return(nil, errors.New("timeout"))

		_, err := f.service.GetOverview(context.Background(), 7)
		assert.True(t, domain.IsSourceError(err))
	})

	t.Run("Série fora de ordem", func(t *testing.T) {
		f := newFixture(t, time.UTC)
		f.snapshots.EXPECT().ListLatest(gomock.Any(), 7).Return([]domain.PeriodSnapshot{{Date: day(2)}, {Date: day(1)}}, nil)

		_, err := f.service.GetOverview(context.Background(), 7)
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestBuildDailySnapshot(t *testing.T) {
	f := newFixture(t, time.UTC)
	start := day(5)
	end := start.AddDate(0, 0, 1)
	v := func(x float64) *float64 { return &x }

	f.events.EXPECT().
		ListEvents(gomock.Any(), domain.EventQuery{
			Kinds:     []domain.EventKind{domain.EventKindOrder},
			StartDate: start,
			EndBefore: end,
		}).
		Return([]domain.RawEvent{
			{ID: "o1", Kind: domain.EventKindOrder, EntityID: "st_1", OccurredAt: start.Add(time.Hour), Value: v(250.255)},
			{ID: "o2", Kind: domain.EventKindOrder, EntityID: "st_2", OccurredAt: start.Add(2 * time.Hour), Value: v(99.9)},
		}, nil)
	f.partners.EXPECT().CountActive(gomock.Any()).Return(int64(12), nil)
	f.stores.EXPECT().CountCreatedBetween(gomock.Any(), start, end).Return(int64(2), nil)
	f.activity.EXPECT().GetDayActivity(gomock.Any(), start, end).Return(&repository.DayActivity{
		NewCustomers:        8,
		DeliveriesCompleted: 2,
		Commission:          35.015,
	}, nil)
	f.snapshots.EXPECT().
		SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *domain.PeriodSnapshot) error {
			snapshot.ID = 99
			return nil
		})

	snapshot, err := f.service.BuildDailySnapshot(context.Background(), start.Add(15*time.Hour))

	require.NoError(t, err)
	assert.Equal(t, int64(99), snapshot.ID)
	assert.Equal(t, start, snapshot.Date)
	assert.Equal(t, int64(2), snapshot.Orders)
	assert.InDelta(t, 350.16, snapshot.Revenue, 0.011)
	assert.Equal(t, int64(12), snapshot.ActivePartners)
	assert.Equal(t, int64(2), snapshot.StoresOnboarded)
	assert.Equal(t, int64(8), snapshot.NewCustomers)
	assert.Equal(t, int64(2), snapshot.DeliveriesCompleted)
	assert.InDelta(t, 35.02, snapshot.Commission, 0.011)
}

func TestBuildDailySnapshot_NoOrders(t *testing.T) {
	f := newFixture(t, time.UTC)

	f.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.partners.EXPECT().CountActive(gomock.Any()).Return(int64(3), nil)
	f.stores.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.activity.EXPECT().GetDayActivity(gomock.Any(), gomock.Any(), gomock.Any()).Return(&repository.DayActivity{}, nil)
	f.snapshots.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(nil)

	snapshot, err := f.service.BuildDailySnapshot(context.Background(), day(6))

	require.NoError(t, err)
	assert.Equal(t, int64(0), snapshot.Orders)
	assert.Equal(t, int64(3), snapshot.ActivePartners)
}

func TestBuildDailySnapshot_Failure(t *testing.T) {
	f := newFixture(t, time.UTC)

	f.events.EXPECT().ListEvents(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.partners.EXPECT().CountActive(gomock.Any()).Return(int64(0), errors.New("connection reset"))
	f.stores.EXPECT().CountCreatedBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
	f.activity.EXPECT().GetDayActivity(gomock.Any(), gomock.Any(), gomock.Any()).Return(&repository.DayActivity{}, nil)

	_, err := f.service.BuildDailySnapshot(context.Background(), day(6))

	assert.ErrorContains(t, err, "connection reset")
}
