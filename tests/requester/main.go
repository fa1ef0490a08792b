package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const (
	baseURL = "http://localhost:3333"
	fixedID = "M2fJlvVUpJY0"
)

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func randomString(length int) string {
	chars := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	id := make([]rune, length)
	for i := range id {
		id[i] = chars[rand.Intn(len(chars))]
	}
	return string(id)
}

// doRequest в основном опрашивает статус одного заказа (попадания в кэш),
// иногда спрашивает случайный id или пробует скачать файл с чужим токеном.
func doRequest() {
	var target string
	switch n := rand.Intn(10); {
	case n == 0:
		q := url.Values{"token": {randomString(32)}, "slug": {"ebook-a"}}
		target = baseURL + "/download?" + q.Encode()
	case n < 3:
		target = baseURL + "/api/order/" + randomString(12)
	default:
		target = baseURL + "/api/order/" + fixedID
	}

	resp, err := http.Get(target)
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
		return
	}
	fmt.Println("GET", target, "->", resp.Status)
	resp.Body.Close()
}
