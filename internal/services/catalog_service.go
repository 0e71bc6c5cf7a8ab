package services

import (
	"leadgrid/internal/domain"
	"leadgrid/internal/repos"
)

type CatalogService struct {
	Prods *repos.ProductRepo
}

func NewCatalogService(prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Prods: prods}
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.Prods.List()
}

func (s *CatalogService) GetProduct(id string) (domain.Product, error) {
	return s.Prods.Get(id)
}

func (s *CatalogService) CreateProduct(p domain.Product) error {
	return s.Prods.Create(p)
}

func (s *CatalogService) SetProductActive(id string, active bool) error {
	return s.Prods.SetActive(id, active)
}
