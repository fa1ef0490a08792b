package entities

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindForbidden  ErrorKind = "forbidden"
	KindInternal   ErrorKind = "internal"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
)

var (
	ErrEmptyCart      = fmt.Errorf("%w: cart is empty", ErrValidation)
	ErrInvalidProduct = fmt.Errorf("%w: invalid product", ErrValidation)
	ErrOrderCanceled  = fmt.Errorf("%w: order is canceled", ErrValidation)

	ErrOrderNotFound   = fmt.Errorf("%w: order", ErrNotFound)
	ErrProductNotFound = fmt.Errorf("%w: product", ErrNotFound)
	ErrFileNotFound    = fmt.Errorf("%w: file", ErrNotFound)

	ErrInvalidToken     = fmt.Errorf("%w: invalid token", ErrForbidden)
	ErrNotPaid          = fmt.Errorf("%w: order not paid", ErrForbidden)
	ErrItemNotPurchased = fmt.Errorf("%w: item not purchased", ErrForbidden)

	// Конфликт записи в хранилище: заказ уже не в статусе pending.
	ErrOrderNotPending = errors.New("order is not pending")
)

func InvalidProduct(slug string) error {
	return fmt.Errorf("%w: %s", ErrInvalidProduct, slug)
}

// KindOf относит ошибку к одной из категорий, видимых вызывающей стороне.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrForbidden):
		return KindForbidden
	default:
		return KindInternal
	}
}
