package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	apiURL = "http://localhost:3333/api"
	topic  = "payments"
)

var slugs = []string{"ebook-a", "ebook-b", "templates-pack"}

type cartItem struct {
	Slug string `json:"slug"`
	Qty  int    `json:"qty"`
}

type paymentEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// createOrder оформляет случайную корзину через HTTP API.
func createOrder(ctx context.Context) (string, error) {
	items := make([]cartItem, 0, 2)
	for range rand.Intn(2) + 1 {
		items = append(items, cartItem{Slug: slugs[rand.Intn(len(slugs))], Qty: rand.Intn(3) + 1})
	}

	body, _ := json.Marshal(map[string]any{"items": items})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL+"/order", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("create order: %s", resp.Status)
	}

	var res struct {
		OrderID string `json:"orderId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return "", err
	}
	return res.OrderID, nil
}

func randomEvent(orderID string) paymentEvent {
	switch n := rand.Intn(10); {
	case n == 0:
		// Несуществующий заказ должен уйти в DLQ
		return paymentEvent{OrderID: "missing" + orderID[:5], Status: "approved"}
	case n < 3:
		return paymentEvent{OrderID: orderID, Status: "declined"}
	default:
		return paymentEvent{OrderID: orderID, Status: "approved"}
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:  kafka.TCP("localhost:9092"),
		Topic: topic,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			orderID, err := createOrder(ctx)
			if err != nil {
				log.Println("failed to create order:", err)
				continue
			}

			event := randomEvent(orderID)
			data, _ := json.Marshal(event)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.OrderID), Value: data}); err != nil {
				log.Println("failed to publish payment event:", err)
				continue
			}
			log.Println("payment event published", event.OrderID, event.Status)
		case <-ctx.Done():
			return
		}
	}
}
