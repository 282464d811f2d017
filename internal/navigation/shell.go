package navigation

import (
	"context"
	"sync"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

// State — текущее состояние навигации
type State struct {
	View         View
	ProductID    string
	CategoryHint domain.Category
}

// Rendered возвращает страницу, которую фактически нужно отрисовать:
// карточка товара без выбранного товара показывается как главная.
func (s State) Rendered() View {
	if s.View == ViewProductDetail && s.ProductID == "" {
		return ViewHome
	}

	return s.View
}

// Shell — оболочка навигации одной сессии. Каждый переход отменяет контекст
// предыдущей страницы, поэтому задачи, запущенные для неё, не изменят состояние.
type Shell struct {
	mu       sync.Mutex
	state    State
	parent   context.Context
	viewCtx  context.Context
	cancel   context.CancelFunc
	onScroll func(State)
	closed   bool
}

type Option func(*Shell)

// WithScrollToTop задаёт обработчик запроса прокрутки вверх, вызываемый при каждом переходе.
func WithScrollToTop(f func(State)) Option {
	return func(s *Shell) { s.onScroll = f }
}

// NewShell создаёт оболочку на главной странице. parent ограничивает время жизни всех страниц.
func NewShell(parent context.Context, opts ...Option) *Shell {
	s := &Shell{
		state:  State{View: ViewHome, CategoryHint: domain.CategoryAll},
		parent: parent,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.viewCtx, s.cancel = context.WithCancel(parent)

	return s
}

// Navigate переходит на страницу по имени. Поддерживает глубокие ссылки product-<id>
// и алиас wishlist. Подсказка категории используется витриной магазина.
func (s *Shell) Navigate(name string, categoryHint domain.Category) State {
	if id, ok := productLink(name); ok {
		return s.NavigateToProduct(id)
	}

	view, _ := ParseView(name)
	if categoryHint == "" {
		categoryHint = domain.CategoryAll
	}

	return s.transition(func(st *State) {
		st.View = view
		st.CategoryHint = categoryHint
	})
}

// NavigateToProduct открывает карточку товара.
func (s *Shell) NavigateToProduct(productID string) State {
	return s.transition(func(st *State) {
		st.View = ViewProductDetail
		st.ProductID = productID
	})
}

// Current возвращает текущее состояние.
func (s *Shell) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// ViewContext возвращает контекст текущей страницы. Он отменяется при следующем переходе.
func (s *Shell) ViewContext() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewCtx
}

// Close отменяет контекст текущей страницы; дальнейшие переходы не создают новых контекстов.
func (s *Shell) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cancel()
}

func (s *Shell) transition(apply func(*State)) State {
	s.mu.Lock()
	apply(&s.state)
	st := s.state

	s.cancel()
	if !s.closed {
		s.viewCtx, s.cancel = context.WithCancel(s.parent)
	}
	onScroll := s.onScroll
	s.mu.Unlock()

	if onScroll != nil {
		onScroll(st)
	}

	return st
}
