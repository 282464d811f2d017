package navigation

import (
	"context"
	"testing"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseView(t *testing.T) {
	cases := []struct {
		name  string
		view  View
		known bool
	}{
		{"home", ViewHome, true},
		{"shop", ViewShop, true},
		{"product-detail", ViewProductDetail, true},
		{"checkout", ViewCheckout, true},
		{"login", ViewLogin, true},
		{"profile", ViewProfile, true},
		{"about", ViewAbout, true},
		{"wishlist", ViewProfile, true},
		{"blog", ViewHome, false},
		{"", ViewHome, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			view, known := ParseView(tc.name)
			assert.Equal(t, tc.view, view)
			assert.Equal(t, tc.known, known)
		})
	}

	assert.Equal(t, "home", View(42).String())
}

func TestShellNavigate(t *testing.T) {
	var scrolls []State
	shell := NewShell(context.Background(), WithScrollToTop(func(s State) { scrolls = append(scrolls, s) }))
	assert.Equal(t, ViewHome, shell.Current().View)

	st := shell.Navigate("shop", domain.CategoryWomen)
	assert.Equal(t, ViewShop, st.View)
	assert.Equal(t, domain.CategoryWomen, st.CategoryHint)

	st = shell.Navigate("wishlist", "")
	assert.Equal(t, ViewProfile, st.View)
	assert.Equal(t, domain.CategoryAll, st.CategoryHint)

	st = shell.Navigate("product-p7", "")
	assert.Equal(t, ViewProductDetail, st.View)
	assert.Equal(t, "p7", st.ProductID)

	st = shell.Navigate("nowhere", "")
	assert.Equal(t, ViewHome, st.View)

	require.Len(t, scrolls, 4, "every navigation requests scroll to top")
}

func TestRenderedFallsBackWithoutProduct(t *testing.T) {
	shell := NewShell(context.Background())
	st := shell.Navigate("product-detail", "")

	assert.Equal(t, ViewProductDetail, st.View)
	assert.Equal(t, ViewHome, st.Rendered())

	st = shell.NavigateToProduct("p1")
	assert.Equal(t, ViewProductDetail, st.Rendered())
}

func TestNavigationCancelsPreviousView(t *testing.T) {
	shell := NewShell(context.Background())
	checkoutCtx := shell.Navigate("checkout", "").View
	require.Equal(t, ViewCheckout, checkoutCtx)

	viewCtx := shell.ViewContext()
	require.NoError(t, viewCtx.Err())

	shell.Navigate("home", "")
	assert.ErrorIs(t, viewCtx.Err(), context.Canceled)
	assert.NoError(t, shell.ViewContext().Err())

	shell.Close()
	assert.ErrorIs(t, shell.ViewContext().Err(), context.Canceled)

	shell.Navigate("shop", "")
	assert.ErrorIs(t, shell.ViewContext().Err(), context.Canceled, "closed shell stays cancelled")
}
