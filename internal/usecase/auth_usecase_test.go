package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/internal/navigation"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginDerivesNameFromEmail(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.session.Navigate(ctx, "s1", NewNavigateReq("login", ""))

	user, err := env.auth.Login(ctx, "s1", NewLoginReq(" jane.doe@example.com "))
	require.NoError(t, err)

	assert.Equal(t, "jane.doe", user.Name)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, navigation.ViewHome, env.session.Navigation(ctx, "s1").View)
	assert.Contains(t, env.kv.Keys("session:s1:"), "session:s1:frag_ave_user")
}

func TestLoginValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Login(ctx, "s1", NewLoginReq(""))
	assert.ErrorIs(t, err, e.ErrEmailRequired)

	_, err = env.auth.Login(ctx, "s1", NewLoginReq("no-at-sign"))
	assert.ErrorIs(t, err, e.ErrInvalidEmail)

	_, err = env.auth.SignUp(ctx, "s1", NewSignUpReq("  ", "a@b.c"))
	assert.ErrorIs(t, err, e.ErrNameRequired)

	assert.Nil(t, env.session.State(ctx, "s1").Snapshot.User)
}

func TestSignUpAndGoogleLogin(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user, err := env.auth.SignUp(ctx, "s1", NewSignUpReq("Ayesha Rahman", "ayesha@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "Ayesha Rahman", user.Name)

	user, err = env.auth.GoogleLogin(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, googleName, user.Name)
	assert.Equal(t, googleEmail, user.Email)
}

func TestLoginCancelledByNavigation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.auth.cfg.AuthDelay = time.Second

	done := make(chan error, 1)
	go func() {
		_, err := env.auth.Login(ctx, "s1", NewLoginReq("jane@example.com"))
		done <- err
	}()

	var err error
	require.Eventually(t, func() bool {
		env.session.Navigate(ctx, "s1", NewNavigateReq("shop", ""))
		select {
		case err = <-done:
			return true
		default:
			return false
		}
	}, 900*time.Millisecond, 10*time.Millisecond)

	assert.ErrorIs(t, err, e.ErrOperationCancelled)
	assert.Nil(t, env.session.State(ctx, "s1").Snapshot.User)
	assert.Equal(t, navigation.ViewShop, env.session.Navigation(ctx, "s1").View)
}

func TestLoginCancelledByRequest(t *testing.T) {
	env := newTestEnv(t)
	env.auth.cfg.AuthDelay = time.Second

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := env.auth.Login(ctx, "s1", NewLoginReq("jane@example.com"))
	assert.ErrorIs(t, err, e.ErrOperationCancelled)
	assert.Nil(t, env.session.State(context.Background(), "s1").Snapshot.User)
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Login(ctx, "s1", NewLoginReq("jane@example.com"))
	require.NoError(t, err)
	env.session.Navigate(ctx, "s1", NewNavigateReq("profile", ""))

	env.auth.Logout(ctx, "s1")

	assert.Nil(t, env.session.State(ctx, "s1").Snapshot.User)
	assert.Equal(t, navigation.ViewHome, env.session.Navigation(ctx, "s1").View)
	assert.NotContains(t, env.kv.Keys("session:s1:"), "session:s1:frag_ave_user")
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	t.Run("anonymous is sent to login", func(t *testing.T) {
		_, err := env.auth.Profile(ctx, "s1")
		assert.ErrorIs(t, err, e.ErrNotAuthenticated)
		assert.Equal(t, navigation.ViewLogin, env.session.Navigation(ctx, "s1").View)
	})

	t.Run("defaults are filled in", func(t *testing.T) {
		_, err := env.auth.Login(ctx, "s1", NewLoginReq("jane@example.com"))
		require.NoError(t, err)
		_, err = env.session.ToggleWishlist(ctx, "s1", "p2")
		require.NoError(t, err)

		res, err := env.auth.Profile(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "jane", res.User.Name)
		assert.Equal(t, defaultAddress, res.Address)
		assert.Equal(t, defaultPaymentMethod, res.PaymentMethod)
		assert.Equal(t, []string{"p2"}, productIDs(res.Wishlist))
		assert.Empty(t, res.Orders)
	})

	t.Run("saved values replace defaults", func(t *testing.T) {
		user, err := env.auth.UpdateProfile(ctx, "s1", NewUpdateProfileReq(
			"Jane Doe", "jane.doe@example.com", "Road 5, Banani, Dhaka", "bKash",
		))
		require.NoError(t, err)
		require.NotNil(t, user.Address)
		assert.Equal(t, "Road 5, Banani, Dhaka", *user.Address)

		res, err := env.auth.Profile(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, "Jane Doe", res.User.Name)
		assert.Equal(t, "jane.doe@example.com", res.User.Email)
		assert.Equal(t, "Road 5, Banani, Dhaka", res.Address)
		assert.Equal(t, "bKash", res.PaymentMethod)
	})
}

func TestUpdateProfileValidation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.UpdateProfile(ctx, "s1", NewUpdateProfileReq("Jane", "jane@example.com", "", ""))
	assert.ErrorIs(t, err, e.ErrNotAuthenticated)

	_, err = env.auth.Login(ctx, "s1", NewLoginReq("jane@example.com"))
	require.NoError(t, err)

	_, err = env.auth.UpdateProfile(ctx, "s1", NewUpdateProfileReq("", "jane@example.com", "", ""))
	assert.ErrorIs(t, err, e.ErrNameRequired)

	_, err = env.auth.UpdateProfile(ctx, "s1", NewUpdateProfileReq("Jane", "", "", ""))
	assert.ErrorIs(t, err, e.ErrEmailRequired)

	user := env.session.State(ctx, "s1").Snapshot.User
	require.NotNil(t, user)
	assert.Equal(t, domain.User{Email: "jane@example.com", Name: "jane", Wishlist: []string{}}, *user)
}
