package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type Item struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CheckoutEvent struct {
	CustomerID            string  `json:"customer_id"`
	Items                 []Item  `json:"items"`
	DeliveryAddress       string  `json:"delivery_address"`
	DeliveryPhone         string  `json:"delivery_phone"`
	DeliveryNotes         string  `json:"delivery_notes,omitempty"`
	PaymentMethod         string  `json:"payment_method"`
	EstimatedDeliveryTime int     `json:"estimated_delivery_time,omitempty"`
	Total                 float64 `json:"total,omitempty"`
}

var addresses = []string{
	"Av. Insurgentes Sur 1457, Col. San Jose",
	"Calle 5 de Mayo 820, Centro Historico",
	"Av. Revolucion 2040, Col. La Paloma",
	"Blvd. Diaz Ordaz 110, Col. Santa Maria",
}

var paymentMethods = []string{"cash", "card"}

func randomEvent() CheckoutEvent {
	items := make([]Item, 0, rand.Intn(3)+1)
	for i := 0; i < cap(items); i++ {
		items = append(items, Item{
			ProductID: fmt.Sprintf("prod-%03d", rand.Intn(50)+1),
			Quantity:  rand.Intn(4) + 1,
			Price:     float64(rand.Intn(20000)+100) / 100,
		})
	}

	return CheckoutEvent{
		CustomerID:            fmt.Sprintf("cust-%04d", rand.Intn(1000)+1),
		Items:                 items,
		DeliveryAddress:       addresses[rand.Intn(len(addresses))],
		DeliveryPhone:         fmt.Sprintf("+5255%08d", rand.Intn(100000000)),
		PaymentMethod:         paymentMethods[rand.Intn(len(paymentMethods))],
		EstimatedDeliveryTime: rand.Intn(176) + 5,
	}
}

func main() {
	writer := &kafka.Writer{
		Addr:     kafka.TCP("localhost:9092"),
		Topic:    "checkouts",
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			event := randomEvent()
			data, err := json.Marshal(event)
			if err != nil {
				log.Printf("failed to marshal event: %v", err)
				continue
			}
			if err := writer.WriteMessages(ctx, kafka.Message{Value: data}); err != nil {
				log.Printf("failed to write message: %v", err)
				continue
			}
			log.Printf("checkout sent: customer=%s items=%d", event.CustomerID, len(event.Items))
		}
	}
}
