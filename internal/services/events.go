package services

import (
	"encoding/json"
	"log"
)

// EventPublisher publishes catalog change notifications so downstream
// consumers (e.g. the storefront cache) can react to admin edits.
// *events.Client satisfies it; a nil publisher disables publication.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// publishEvent marshals and publishes a catalog event. Publication is
// fire-and-forget: failures are logged and never abort the write that
// triggered them.
func publishEvent(publisher EventPublisher, routingKey string, payload map[string]interface{}) {
	if publisher == nil {
		return
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}

	if err := publisher.Publish("catalog", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
