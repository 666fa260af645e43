package services

import (
	"log"
	"sort"
	"strings"

	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"
)

// CatalogService serves the storefront's read-only product views. Reads
// never fail from the caller's perspective: a repository error is logged
// and the answer is recomputed from the fixture catalog instead.
type CatalogService struct {
	repo     repositories.ProductRepository
	fallback []models.Product
}

// NewCatalogService creates a new CatalogService. fallback is the fixture
// catalog used when the repository errors.
func NewCatalogService(repo repositories.ProductRepository, fallback []models.Product) *CatalogService {
	return &CatalogService{
		repo:     repo,
		fallback: fallback,
	}
}

// List retrieves all products.
func (s *CatalogService) List() []models.Product {
	products, err := s.repo.GetAll()
	if err != nil {
		log.Printf("catalog: falling back to fixtures for list: %v", err)
		return append([]models.Product(nil), s.fallback...)
	}
	return products
}

// GetByID retrieves a single product, or nil when it does not exist.
func (s *CatalogService) GetByID(id string) *models.Product {
	product, err := s.repo.GetByID(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return nil
		}
		log.Printf("catalog: falling back to fixtures for product %s: %v", id, err)
		for i := range s.fallback {
			if s.fallback[i].ID == id {
				p := s.fallback[i]
				return &p
			}
		}
		return nil
	}
	return product
}

// ListByCategory retrieves products in a category.
func (s *CatalogService) ListByCategory(category string) []models.Product {
	products, err := s.repo.GetByCategory(category)
	if err != nil {
		log.Printf("catalog: falling back to fixtures for category %s: %v", category, err)
		var out []models.Product
		for _, p := range s.fallback {
			if strings.EqualFold(p.Category, category) {
				out = append(out, p)
			}
		}
		return out
	}
	return products
}

// ListOnSale retrieves discounted products.
func (s *CatalogService) ListOnSale() []models.Product {
	products, err := s.repo.GetOnSale()
	if err != nil {
		log.Printf("catalog: falling back to fixtures for sale listing: %v", err)
		var out []models.Product
		for _, p := range s.fallback {
			if p.SalePercentage > 0 {
				out = append(out, p)
			}
		}
		return out
	}
	return products
}

// Search matches products by name, brand or category.
func (s *CatalogService) Search(query string) []models.Product {
	products, err := s.repo.Search(query)
	if err != nil {
		log.Printf("catalog: falling back to fixtures for search %q: %v", query, err)
		q := strings.ToLower(query)
		var out []models.Product
		for _, p := range s.fallback {
			if strings.Contains(strings.ToLower(p.Name), q) ||
				strings.Contains(strings.ToLower(p.Brand), q) ||
				strings.Contains(strings.ToLower(p.Category), q) {
				out = append(out, p)
			}
		}
		return out
	}
	return products
}

// ListTrending retrieves the top products ordered by review count then
// rating, both descending.
func (s *CatalogService) ListTrending(limit int) []models.Product {
	if limit <= 0 {
		limit = 4
	}
	products, err := s.repo.GetTrending(limit)
	if err != nil {
		log.Printf("catalog: falling back to fixtures for trending: %v", err)
		out := append([]models.Product(nil), s.fallback...)
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Reviews != out[j].Reviews {
				return out[i].Reviews > out[j].Reviews
			}
			return out[i].Rating > out[j].Rating
		})
		if limit < len(out) {
			out = out[:limit]
		}
		return out
	}
	return products
}

// ListLowStock retrieves products at or below the stock threshold.
func (s *CatalogService) ListLowStock(threshold int) []models.Product {
	products, err := s.repo.GetLowStock(threshold)
	if err != nil {
		log.Printf("catalog: falling back to fixtures for low stock: %v", err)
		var out []models.Product
		for _, p := range s.fallback {
			if p.Stock <= threshold {
				out = append(out, p)
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Stock < out[j].Stock
		})
		return out
	}
	return products
}
