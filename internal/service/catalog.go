package service

import (
	"context"

	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/domain"
	"github.com/EbrahimEh/Smart-Home-Ceremony-Client/internal/service/ports"
)

type CatalogService struct {
	catalog ports.CatalogGateway
}

func NewCatalogService(catalog ports.CatalogGateway) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) List(ctx context.Context, category string) ([]*domain.Service, error) {
	return s.catalog.ListServices(ctx, category)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	return s.catalog.GetService(ctx, id)
}
