// Package joincode генерирует короткие коды для присоединения к викторине.
package joincode

import (
	"crypto/rand"
	"fmt"
)

// Алфавит без неоднозначных символов (0/O, 1/I/l):
// код вводится людьми вручную.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// Length — длина генерируемого join-кода
const Length = 8

// New возвращает случайный join-код из Length символов алфавита
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}

	for i := range buf {
		buf[i] = alphabet[int(buf[i])%len(alphabet)]
	}
	return string(buf), nil
}
