package service

import (
	"context"
)

// Catalog event types.
const (
	CatalogEventProductCreated = "product.created"
	CatalogEventProductRemoved = "product.removed"
)

// CatalogEvent describes a catalog change for downstream consumers.
type CatalogEvent struct {
	Type      string `json:"type"`
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Category  string `json:"category,omitempty"`
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCatalogEvent publishes a catalog change
	PublishCatalogEvent(ctx context.Context, event *CatalogEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
