package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrUnknownStorageDriver = fmt.Errorf("unknown storage driver")
	ErrUnknownCatalogSource = fmt.Errorf("unknown catalog source")

	// Ошибки каталога
	ErrEmptyCatalog        = fmt.Errorf("catalog is empty")
	ErrProductNotFound     = fmt.Errorf("product not found")
	ErrDuplicateProductID  = fmt.Errorf("duplicate product id")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrImageNotConfigured  = fmt.Errorf("image storage is not configured")

	// Ошибки сессии и оформления заказа
	ErrEmptyCart          = fmt.Errorf("cart is empty")
	ErrCheckoutStep       = fmt.Errorf("operation is not allowed at the current checkout step")
	ErrCheckoutProcessing = fmt.Errorf("checkout is already processing")
	ErrNotAuthenticated   = fmt.Errorf("user is not authenticated")
	ErrOrderNotFound      = fmt.Errorf("order not found")
	ErrEmailRequired      = fmt.Errorf("email is required")
	ErrNameRequired       = fmt.Errorf("name is required")
	ErrInvalidEmail       = fmt.Errorf("invalid email")
	ErrCartItemNotFound   = fmt.Errorf("cart item not found")
	ErrOperationCancelled = fmt.Errorf("operation cancelled")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must be a whole number")
	ErrInvalidRating    = fmt.Errorf("invalid rating")
	ErrInvalidQuantity  = fmt.Errorf("invalid quantity")
	ErrInvalidCategory  = fmt.Errorf("invalid category")
	ErrInvalidSort      = fmt.Errorf("invalid sort")
	ErrInvalidSize      = fmt.Errorf("invalid size")
	ErrInvalidJSON      = fmt.Errorf("invalid json body")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
