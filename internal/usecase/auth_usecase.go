package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/frag-avenue/internal/cfg"
	"github.com/DRSN-tech/frag-avenue/internal/domain"
	"github.com/DRSN-tech/frag-avenue/pkg/delayed"
	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/jitter"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

// Учётная запись, которую возвращает имитация входа через Google.
const (
	googleName  = "Julian Vane"
	googleEmail = "julian.vane@gmail.com"
)

// Значения профиля, подставляемые в форму, пока пользователь их не сохранил.
const (
	defaultAddress       = "House 12, Road 90, Gulshan 2, Dhaka"
	defaultPaymentMethod = "Visa Platinum •••• 1234"
)

// AuthUseCase имитирует вход и сохранение профиля с сетевой задержкой.
// Ошибки авторизации не моделируются: любые данные принимаются.
type AuthUseCase struct {
	sessions *Sessions
	cfg      *cfg.SimulationCfg
	logger   logger.Logger
}

func NewAuthUC(sessions *Sessions, cfg *cfg.SimulationCfg, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Login входит под email; имя берётся из локальной части адреса.
func (a *AuthUseCase) Login(ctx context.Context, sid string, req *LoginReq) (*domain.User, error) {
	const op = "AuthUseCase.Login"

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	name, _, _ := strings.Cut(email, "@")

	user, err := a.authenticate(ctx, sid, domain.NewUser(email, name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

func (a *AuthUseCase) SignUp(ctx context.Context, sid string, req *SignUpReq) (*domain.User, error) {
	const op = "AuthUseCase.SignUp"

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	user, err := a.authenticate(ctx, sid, domain.NewUser(email, name))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

func (a *AuthUseCase) GoogleLogin(ctx context.Context, sid string) (*domain.User, error) {
	const op = "AuthUseCase.GoogleLogin"

	user, err := a.authenticate(ctx, sid, domain.NewUser(googleEmail, googleName))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return user, nil
}

// Logout сбрасывает пользователя и возвращает на главную.
func (a *AuthUseCase) Logout(ctx context.Context, sid string) {
	sess := a.sessions.Get(ctx, sid)
	sess.Store.Logout(ctx)
	sess.Shell.Navigate("home", domain.CategoryAll)
}

// Profile возвращает профиль. Без пользователя оболочка уходит на страницу входа.
func (a *AuthUseCase) Profile(ctx context.Context, sid string) (*ProfileRes, error) {
	const op = "AuthUseCase.Profile"

	sess := a.sessions.Get(ctx, sid)
	user := sess.Store.User()
	if user == nil {
		sess.Shell.Navigate("login", domain.CategoryAll)
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	res := &ProfileRes{
		User:          *user,
		Address:       defaultAddress,
		PaymentMethod: defaultPaymentMethod,
		Wishlist:      a.sessions.catalog.ByIDs(sess.Store.Wishlist()),
		Orders:        sess.Orders.List(),
	}
	if user.Address != nil && *user.Address != "" {
		res.Address = *user.Address
	}
	if user.PaymentMethod != nil && *user.PaymentMethod != "" {
		res.PaymentMethod = *user.PaymentMethod
	}

	return res, nil
}

// UpdateProfile сохраняет поля профиля после задержки сохранения.
func (a *AuthUseCase) UpdateProfile(ctx context.Context, sid string, req *UpdateProfileReq) (*domain.User, error) {
	const op = "AuthUseCase.UpdateProfile"

	sess := a.sessions.Get(ctx, sid)
	current := sess.Store.User()
	if current == nil {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	updated := current.Clone()
	updated.Name = name
	updated.Email = email
	address, payment := req.Address, req.PaymentMethod
	updated.Address = &address
	updated.PaymentMethod = &payment

	err = a.simulate(ctx, sess, a.cfg.ProfileSaveDelay, func(ctx context.Context) error {
		sess.Store.SetUser(ctx, updated)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	a.logger.Infof("session %s saved profile", sid)

	return sess.Store.User(), nil
}

// authenticate устанавливает пользователя после задержки и переводит на главную.
func (a *AuthUseCase) authenticate(ctx context.Context, sid string, user *domain.User) (*domain.User, error) {
	sess := a.sessions.Get(ctx, sid)

	err := a.simulate(ctx, sess, a.cfg.AuthDelay, func(ctx context.Context) error {
		sess.Store.SetUser(ctx, user)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sess.Shell.Navigate("home", domain.CategoryAll)
	a.logger.Infof("session %s signed in as %s", sid, user.Email)

	return sess.Store.User(), nil
}

// simulate выполняет fn после задержки. Задача отменяется, если клиент отключился
// или пользователь ушёл со страницы, с которой она была запущена.
func (a *AuthUseCase) simulate(ctx context.Context, sess *Session, delay time.Duration, fn delayed.Func) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(sess.Shell.ViewContext(), cancel)
	defer stop()

	task := delayed.Run(ctx, jitter.Duration(delay, a.cfg.Jitter), fn)
	<-task.Done()

	if err := task.Err(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return e.Wrap(err.Error(), e.ErrOperationCancelled)
		}
		return err
	}

	return nil
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", e.ErrEmailRequired
	}

	local, domainPart, ok := strings.Cut(email, "@")
	if !ok || local == "" || domainPart == "" {
		return "", e.ErrInvalidEmail
	}

	return email, nil
}
