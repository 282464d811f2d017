package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/frag-avenue/pkg/e"
	"github.com/DRSN-tech/frag-avenue/pkg/logger"
	"github.com/jimlawless/whereami"
	"github.com/shopspring/decimal"
)

// maxBodySize — ограничение размера JSON-тела запроса
const maxBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	// 400
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrInvalidJSON):
		return http.StatusBadRequest, e.ErrInvalidJSON.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrPricePrecision):
		return http.StatusBadRequest, e.ErrPricePrecision.Error()
	case errors.Is(err, e.ErrInvalidRating):
		return http.StatusBadRequest, e.ErrInvalidRating.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidCategory):
		return http.StatusBadRequest, e.ErrInvalidCategory.Error()
	case errors.Is(err, e.ErrInvalidSort):
		return http.StatusBadRequest, e.ErrInvalidSort.Error()
	case errors.Is(err, e.ErrInvalidSize):
		return http.StatusBadRequest, e.ErrInvalidSize.Error()
	case errors.Is(err, e.ErrEmailRequired):
		return http.StatusBadRequest, e.ErrEmailRequired.Error()
	case errors.Is(err, e.ErrInvalidEmail):
		return http.StatusBadRequest, e.ErrInvalidEmail.Error()
	case errors.Is(err, e.ErrNameRequired):
		return http.StatusBadRequest, e.ErrNameRequired.Error()

	// 401
	case errors.Is(err, e.ErrNotAuthenticated):
		return http.StatusUnauthorized, e.ErrNotAuthenticated.Error()

	// 404
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCartItemNotFound):
		return http.StatusNotFound, e.ErrCartItemNotFound.Error()
	case errors.Is(err, e.ErrOrderNotFound):
		return http.StatusNotFound, e.ErrOrderNotFound.Error()
	case errors.Is(err, e.ErrImageNotConfigured):
		return http.StatusNotFound, e.ErrImageNotConfigured.Error()

	// 409
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrCheckoutStep):
		return http.StatusConflict, e.ErrCheckoutStep.Error()
	case errors.Is(err, e.ErrCheckoutProcessing):
		return http.StatusConflict, e.ErrCheckoutProcessing.Error()
	case errors.Is(err, e.ErrOperationCancelled):
		return http.StatusConflict, e.ErrOperationCancelled.Error()

	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// fail логирует ошибку запроса и пишет ответ. Клиентские ошибки пишутся как warn.
func fail(log logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, _ := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%s %s failed", r.Method, r.URL.Path)
	} else {
		log.Warnf("%d %s %s: %s", code, r.Method, r.URL.Path, err.Error())
	}

	WriteError(w, err)
}

// decodeJSON читает тело запроса в dst. Пустое тело допустимо, если allowEmpty.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) && allowEmpty {
			return nil
		}
		return e.Wrap(whereami.WhereAmI()+": "+err.Error(), e.ErrInvalidJSON)
	}

	return nil
}

// parsePrice разбирает цену из строки запроса. Цены каталога целые,
// поэтому "36000" и "36000.00" допустимы, а "36000.5" нет.
func parsePrice(s string) (int64, error) {
	const maxPrice = 1_000_000_000

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(maxPrice)) {
		return 0, e.Wrap(s, e.ErrInvalidPrice)
	}

	if !d.Equal(d.Truncate(0)) {
		return 0, e.Wrap(s, e.ErrPricePrecision)
	}

	return d.IntPart(), nil
}

// optionalPrice возвращает nil для отсутствующего параметра.
func optionalPrice(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	price, err := parsePrice(raw)
	if err != nil {
		return nil, e.Wrap(name, err)
	}

	return &price, nil
}

func parseRating(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, e.Wrap(raw, e.ErrInvalidRating)
	}

	return d.InexactFloat64(), nil
}

func parseBool(raw string) (bool, error) {
	if raw == "" {
		return false, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, e.Wrap(raw, e.ErrStatusBadRequest)
	}

	return v, nil
}

func parseInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, e.Wrap(raw, e.ErrStatusBadRequest)
	}

	return v, nil
}
