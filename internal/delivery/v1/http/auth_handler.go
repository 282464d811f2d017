package http

import (
	"net/http"

	"github.com/DRSN-tech/frag-avenue/internal/usecase"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
)

// AuthHandler — имитация входа и профиль покупателя.
type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// login
//
//	@Summary		Вход по email
//	@Description	Ответ приходит после имитации задержки. Имя берётся из локальной части адреса
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		loginRequest	true	"Email"
//	@Success		200		{object}	userDTO
//	@Failure		400		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Операция отменена переходом"
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(a.logger, w, r, err)
		return
	}

	user, err := a.authUsecase.Login(r.Context(), sessionID(r), usecase.NewLoginReq(body.Email))
	if err != nil {
		fail(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserDTO(user))
}

// signUp
//
//	@Summary	Регистрация
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		signUpRequest	true	"Имя и email"
//	@Success	200		{object}	userDTO
//	@Failure	400		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/auth/signup [post]
func (a *AuthHandler) signUp(w http.ResponseWriter, r *http.Request) {
	var body signUpRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(a.logger, w, r, err)
		return
	}

	user, err := a.authUsecase.SignUp(r.Context(), sessionID(r), usecase.NewSignUpReq(body.Name, body.Email))
	if err != nil {
		fail(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserDTO(user))
}

// googleLogin
//
//	@Summary	Вход через Google
//	@Tags		auth
//	@Produce	json
//	@Success	200	{object}	userDTO
//	@Failure	409	{object}	ErrorResponse
//	@Router		/auth/google [post]
func (a *AuthHandler) googleLogin(w http.ResponseWriter, r *http.Request) {
	user, err := a.authUsecase.GoogleLogin(r.Context(), sessionID(r))
	if err != nil {
		fail(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserDTO(user))
}

// logout
//
//	@Summary	Выход
//	@Tags		auth
//	@Success	204
//	@Router		/auth/logout [post]
func (a *AuthHandler) logout(w http.ResponseWriter, r *http.Request) {
	a.authUsecase.Logout(r.Context(), sessionID(r))
	w.WriteHeader(http.StatusNoContent)
}

// getProfile
//
//	@Summary	Профиль покупателя
//	@Tags		profile
//	@Produce	json
//	@Success	200	{object}	profileResponse
//	@Failure	401	{object}	ErrorResponse	"Требуется вход"
//	@Router		/profile [get]
func (a *AuthHandler) getProfile(w http.ResponseWriter, r *http.Request) {
	res, err := a.authUsecase.Profile(r.Context(), sessionID(r))
	if err != nil {
		fail(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProfileResponse(res))
}

// updateProfile
//
//	@Summary	Сохранение профиля
//	@Tags		profile
//	@Accept		json
//	@Produce	json
//	@Param		body	body		profileRequest	true	"Поля профиля"
//	@Success	200		{object}	userDTO
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Router		/profile [put]
func (a *AuthHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var body profileRequest
	if err := decodeJSON(w, r, &body, false); err != nil {
		fail(a.logger, w, r, err)
		return
	}

	user, err := a.authUsecase.UpdateProfile(r.Context(), sessionID(r), usecase.NewUpdateProfileReq(
		body.Name, body.Email, body.Address, body.PaymentMethod,
	))
	if err != nil {
		fail(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toUserDTO(user))
}
