package usecase

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/catalog"
	"github.com/DRSN-tech/frag-avenue/internal/navigation"
	"github.com/DRSN-tech/frag-avenue/internal/store"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/google/uuid"
)

// sessionScope — префикс ключей сессии в key-value хранилище
const sessionScope = "session:"

// Session объединяет состояние одного покупателя.
type Session struct {
	ID       string
	Store    *store.Store
	Shell    *navigation.Shell
	Orders   *store.OrderHistory
	checkout *checkoutFlow
	lastSeen atomic.Int64 // unix nano последнего обращения
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

// busy сообщает, идёт ли обработка заказа.
func (s *Session) busy() bool {
	s.checkout.mu.Lock()
	defer s.checkout.mu.Unlock()

	return s.checkout.task != nil
}

// Sessions — реестр сессий. Сессия создаётся при первом обращении и
// восстанавливает сохранённые снимки из хранилища. Простаивающие сессии
// выгружаются из памяти через Sweep, их снимки остаются в хранилище.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	baseCtx  context.Context
	catalog  *catalog.Catalog
	storage  store.Storage
	logger   logger.Logger
	storeOpt []store.Option
	now      func() time.Time
}

// NewSessions создаёт реестр. baseCtx ограничивает жизнь оболочек навигации и отложенных задач.
func NewSessions(baseCtx context.Context, catalog *catalog.Catalog, storage store.Storage, logger logger.Logger, opts ...store.Option) *Sessions {
	return &Sessions{
		sessions: make(map[string]*Session),
		baseCtx:  baseCtx,
		catalog:  catalog,
		storage:  storage,
		logger:   logger,
		storeOpt: opts,
		now:      time.Now,
	}
}

// NewID генерирует идентификатор новой сессии.
func (s *Sessions) NewID() string {
	return uuid.NewString()
}

// Get возвращает сессию, при необходимости восстанавливая её из хранилища.
func (s *Sessions) Get(ctx context.Context, id string) *Session {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	if ok {
		sess.touch(s.now())
	}
	s.mu.RUnlock()
	if ok {
		return sess
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		sess.touch(s.now())
		return sess
	}

	scoped := store.Scoped(s.storage, sessionScope+id)
	sess = &Session{
		ID:       id,
		Store:    store.New(ctx, s.catalog, scoped, s.logger, s.storeOpt...),
		Shell:    navigation.NewShell(s.baseCtx),
		Orders:   store.NewOrderHistory(ctx, scoped, s.logger),
		checkout: newCheckoutFlow(),
	}
	sess.touch(s.now())
	s.sessions[id] = sess
	s.logger.Debugf("session %s restored", id)

	return sess
}

// Len — число сессий в памяти.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.sessions)
}

// Sweep выгружает сессии, к которым не обращались дольше idle, и отменяет их страницы.
// Сессии с заказом в обработке остаются до завершения задачи. Возвращает число выгруженных.
func (s *Sessions) Sweep(idle time.Duration) int {
	deadline := s.now().Add(-idle).UnixNano()

	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Load() > deadline || sess.busy() {
			continue
		}
		sess.Shell.Close()
		delete(s.sessions, id)
		evicted++
	}
	if evicted > 0 {
		s.logger.Debugf("evicted %d idle sessions, %d left", evicted, len(s.sessions))
	}

	return evicted
}

// StartSweeper запускает Sweep каждые interval до отмены baseCtx. idle <= 0 отключает выгрузку.
func (s *Sessions) StartSweeper(idle, interval time.Duration) {
	if idle <= 0 || interval <= 0 {
		return
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.baseCtx.Done():
				s.logger.Debugf("session sweeper stopped")
				return
			case <-ticker.C:
				s.Sweep(idle)
			}
		}
	}()
}

// Close отменяет контексты всех страниц, прерывая незавершённые отложенные задачи.
func (s *Sessions) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, sess := range s.sessions {
		sess.Shell.Close()
	}
	s.logger.Infof("closed %d sessions", len(s.sessions))

	return nil
}

// cartLines сопоставляет позиции корзины с товарами каталога.
func cartLines(c *catalog.Catalog, snap store.Snapshot) []CartLine {
	lines := make([]CartLine, len(snap.Cart))
	for i, item := range snap.Cart {
		product, ok := c.Product(item.ProductID)
		lines[i] = CartLine{Item: item, Product: product, Found: ok}
	}

	return lines
}
