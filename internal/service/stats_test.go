package service_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"biopubs-ai/internal/service"
	"biopubs-ai/internal/storage"
	storage_mocks "biopubs-ai/internal/storage/mocks"

	"go.uber.org/mock/gomock"
)

func newStatsService(t *testing.T) (*service.StatsService, *storage_mocks.MockPublicationStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := storage_mocks.NewMockPublicationStore(ctrl)
	return service.NewStatsService(mockStore), mockStore
}

func TestStatsService_GetStats(t *testing.T) {
	svc, mockStore := newStatsService(t)

	mockStore.EXPECT().
		List(gomock.Any(), storage.Filter{}).
		Return([]*storage.Publication{
			{ID: "1", Title: "Bone Density in Microgravity", Year: 2020},
			{ID: "2", Title: "Bone Remodeling and Radiation", Year: 2020},
			{ID: "3", Title: "The Effects of Radiation on Plants", Year: 2021},
			{ID: "4", Title: "Plant growth"}, // unknown year
		}, nil)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}

	if stats.TotalPublications != 4 {
		t.Errorf("GetStats() total = %d, want 4", stats.TotalPublications)
	}
	wantYears := map[int]int{2020: 2, 2021: 1}
	if !reflect.DeepEqual(stats.YearCounts, wantYears) {
		t.Errorf("GetStats() year counts = %v, want %v", stats.YearCounts, wantYears)
	}

	// "the", "in", "and", "of", "on" and "effects" are stopwords; "bone" and
	// "radiation" appear twice each and lead the histogram, alphabetically
	// tie-broken.
	if len(stats.TopWords) == 0 {
		t.Fatal("GetStats() returned no top words")
	}
	want := []service.WordCount{{Word: "bone", Count: 2}, {Word: "radiation", Count: 2}}
	if !reflect.DeepEqual(stats.TopWords[:2], want) {
		t.Errorf("GetStats() top words = %v, want leading %v", stats.TopWords[:2], want)
	}
	for _, wc := range stats.TopWords {
		if wc.Word == "the" || wc.Word == "effects" {
			t.Errorf("GetStats() included stopword %q", wc.Word)
		}
	}
}

func TestStatsService_GetStats_LimitsToTopTen(t *testing.T) {
	svc, mockStore := newStatsService(t)

	pubs := []*storage.Publication{
		{ID: "1", Title: "alpha beta gamma delta epsilon zeta"},
		{ID: "2", Title: "eta theta iota kappa lambda mu"},
	}
	mockStore.EXPECT().List(gomock.Any(), storage.Filter{}).Return(pubs, nil)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if len(stats.TopWords) != service.TopWordCount {
		t.Errorf("GetStats() returned %d words, want %d", len(stats.TopWords), service.TopWordCount)
	}
}

func TestStatsService_GetStats_EmptyCorpus(t *testing.T) {
	svc, mockStore := newStatsService(t)

	mockStore.EXPECT().List(gomock.Any(), storage.Filter{}).Return(nil, nil)

	stats, err := svc.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats.TotalPublications != 0 || len(stats.YearCounts) != 0 || len(stats.TopWords) != 0 {
		t.Errorf("GetStats() on empty corpus = %+v, want zero stats", stats)
	}
}

func TestStatsService_GetStats_StoreError(t *testing.T) {
	svc, mockStore := newStatsService(t)

	mockStore.EXPECT().List(gomock.Any(), storage.Filter{}).Return(nil, errors.New("db closed"))

	if _, err := svc.GetStats(context.Background()); err == nil {
		t.Error("GetStats() error = nil, want error")
	}
}
