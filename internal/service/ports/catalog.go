package ports

import (
	"context"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
)

type CatalogGateway interface {
	ListServices(ctx context.Context, category string) ([]*domain.Service, error)
	GetService(ctx context.Context, id string) (*domain.Service, error)
}
