package repository

import (
	"net/http"

	"go.trai.ch/transfer/internal/core/ports"
)

// NewWithClient exposes newWithClient for tests.
func NewWithClient(reader ports.ProjectReader, logger ports.Logger, client *http.Client) *Repository {
	return newWithClient(reader, logger, client)
}
