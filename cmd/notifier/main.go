// The notifier consumes reservation lifecycle events from RabbitMQ and
// appends them to the local log file.  It runs as a separate process so
// the API server never depends on the broker.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/iliyamo/coworking-room-reservation/internal/queue"
)

func main() {
	_ = godotenv.Load()

	log.Printf("starting reservation event consumer")
	if err := queue.StartEventConsumer(); err != nil {
		log.Fatal(err)
	}
}
