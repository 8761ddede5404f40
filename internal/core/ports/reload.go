package ports

import (
	"context"

	"go.trai.ch/stitch/internal/core/domain"
)

// ReloadChannel pushes transformed-asset notifications to connected clients.
// It is a fan-out sink only: Notify must never block the build path, and
// delivery failures are logged rather than propagated.
//
//go:generate mockgen -source=reload.go -destination=mocks/mock_reload.go -package=mocks
type ReloadChannel interface {
	// Start binds the channel's transport using the resolved configuration
	// and begins accepting clients.
	Start(ctx context.Context, cfg *domain.Config) error

	// Notify pushes one transformed asset to all connected clients.
	Notify(asset *domain.Asset)

	// Stop disconnects clients and releases the transport.
	Stop() error
}
