package idgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	OrderIDLength = 12
	TokenLength   = 32
)

// OrderID возвращает идентификатор заказа: 12 символов из 62-символьного алфавита (~71 бит).
func OrderID() (string, error) {
	return String(OrderIDLength)
}

// Token возвращает токен доступа к файлам (~190 бит). Это bearer-секрет.
func Token() (string, error) {
	return String(TokenLength)
}

func String(n int) (string, error) {
	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random: %w", err)
		}
		buf[i] = alphabet[idx.Int64()]
	}
	return string(buf), nil
}
