package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/repository/memory"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.New([]domain.Product{
		{
			ID: "p1", Name: "Baccarat Rouge 540", Brand: "MFK", Category: domain.CategoryUnisex,
			FragranceType: domain.FragranceExtrait, Price: 45500, IsBestSeller: true, Rating: 4.9,
			ImageRef: "https://images.example.com/p1.jpg", Notes: []string{"Saffron", "Amberwood"},
		},
		{
			ID: "p2", Name: "Oud Silk Mood", Brand: "MFK", Category: domain.CategoryMen,
			FragranceType: domain.FragranceEDP, Price: 36000, IsBestSeller: true, Rating: 4.8,
			ImageRef: "products/p2.jpg", Notes: []string{"Oud", "Rose"},
		},
		{
			ID: "p3", Name: "Santal 33", Brand: "Le Labo", Category: domain.CategoryUnisex,
			FragranceType: domain.FragranceEDP, Price: 28000, IsNew: true, Rating: 4.6,
			Notes: []string{"Sandalwood", "Cedar"},
		},
		{
			ID: "p4", Name: "Rose Prick", Brand: "Tom Ford", Category: domain.CategoryWomen,
			FragranceType: domain.FragranceEDP, Price: 39000, IsNew: true, Rating: 4.3,
			Notes: []string{"Rose", "Pepper"},
		},
	}, []domain.Review{
		{ID: "r1", Text: "Stunning", Rating: 5, Name: "Ayesha", Location: "Dhaka"},
		{ID: "r2", Text: "Lovely packaging", Rating: 4, Name: "Rafi", Location: "Chittagong"},
		{ID: "r3", Text: "Long lasting", Rating: 5, Name: "Nadia", Location: "Sylhet"},
	})
	require.NoError(t, err)

	return c
}

func testSimulation() *cfg.SimulationCfg {
	return &cfg.SimulationCfg{
		AuthDelay:        10 * time.Millisecond,
		ProfileSaveDelay: 10 * time.Millisecond,
		CheckoutDelay:    20 * time.Millisecond,
	}
}

type testEnv struct {
	catalog  *catalog.Catalog
	kv       *memory.KVRepo
	sessions *Sessions
	session  *SessionUseCase
	auth     *AuthUseCase
	checkout *CheckoutUseCase
	orders   *OrderUseCase
	products *ProductUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	c := testCatalog(t)
	kv := memory.NewKVRepo()
	log := logger.NewNopLogger()
	sessions := NewSessions(ctx, c, kv, log)
	t.Cleanup(func() { _ = sessions.Close(context.Background()) })

	return &testEnv{
		catalog:  c,
		kv:       kv,
		sessions: sessions,
		session:  NewSessionUC(sessions, c, log),
		auth:     NewAuthUC(sessions, testSimulation(), log),
		checkout: NewCheckoutUC(sessions, c, nil, testSimulation(), log),
		orders:   NewOrderUC(sessions, c, log),
		products: NewProductUC(c, nil, log),
	}
}

type fakeImages struct {
	url string
	err error
}

func (f *fakeImages) ImageURL(_ context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.url + key, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []*OrderPlacedEvent
	err    error
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, event *OrderPlacedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.events = append(f.events, event)
	return f.err
}

func (f *fakePublisher) published() []*OrderPlacedEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*OrderPlacedEvent{}, f.events...)
}
