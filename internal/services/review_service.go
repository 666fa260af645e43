package services

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"math"
	"math/rand"
	"time"

	"badmintonpro/internal/fixtures"
	"badmintonpro/internal/models"
	"badmintonpro/internal/repositories"

	"github.com/go-playground/validator/v10"
)

// ReviewService manages product reviews and keeps the parent product's
// rating aggregate in sync with them.
type ReviewService struct {
	reviewRepo  repositories.ReviewRepository
	productRepo repositories.ProductRepository
	validate    *validator.Validate
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, productRepo repositories.ProductRepository) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		validate:    validator.New(),
	}
}

// ListByProduct returns the reviews for a product, newest first, with the
// display date rendered relative to now. Backend failure downgrades to the
// seeded demo reviews; a product with genuinely no reviews returns an
// empty list.
func (s *ReviewService) ListByProduct(productID string) []models.Review {
	reviews, err := s.reviewRepo.GetByProduct(productID)
	if err != nil {
		log.Printf("Warning: review lookup for product %s failed, serving demo data: %v", productID, err)
		reviews = nil
		for _, r := range fixtures.Reviews {
			if r.ProductID == productID {
				reviews = append(reviews, r)
			}
		}
	}
	for i := range reviews {
		reviews[i].Date = formatRelativeDate(reviews[i].CreatedAt)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews
}

// ListAll returns every review across the catalog, for moderation views.
func (s *ReviewService) ListAll() ([]models.Review, error) {
	reviews, err := s.reviewRepo.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range reviews {
		reviews[i].Date = formatRelativeDate(reviews[i].CreatedAt)
	}
	return reviews, nil
}

// ReviewInput is the submission payload for a new review.
type ReviewInput struct {
	UserName string  `json:"user" validate:"required"`
	Rating   float64 `json:"rating" validate:"required,gte=1,lte=5"`
	Text     string  `json:"text" validate:"required"`
}

// Create stores a review and recomputes the product's rating aggregate.
// New reviews start unverified; the flag marks a verified purchase, which
// cannot be established at submission time.
// Resubmitting the same review within the dedup window returns
// repositories.ErrDuplicateReview without touching the aggregate.
func (s *ReviewService) Create(productID string, input ReviewInput) (*models.Review, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}
	if _, err := s.productRepo.GetByID(productID); err != nil {
		return nil, fmt.Errorf("product not found: %w", err)
	}

	review := &models.Review{
		ProductID:   productID,
		UserName:    input.UserName,
		AvatarColor: fixtures.AvatarColors[rand.Intn(len(fixtures.AvatarColors))],
		Verified:    false,
		Rating:      input.Rating,
		Text:        input.Text,
		DedupKey:    dedupKey(productID, input.UserName, time.Now()),
	}

	if err := s.reviewRepo.Create(review); err != nil {
		if errors.Is(err, repositories.ErrDuplicateReview) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	if err := s.recomputeRating(productID); err != nil {
		log.Printf("Warning: failed to recompute rating for product %s: %v", productID, err)
	}

	review.Date = formatRelativeDate(review.CreatedAt)
	return review, nil
}

// Delete removes a review and recomputes its product's rating aggregate.
// Deleting the last review resets the product to an unrated state.
func (s *ReviewService) Delete(reviewID string) error {
	review, err := s.reviewRepo.GetByID(reviewID)
	if err != nil {
		return err
	}
	if err := s.reviewRepo.Delete(reviewID); err != nil {
		return err
	}
	if err := s.recomputeRating(review.ProductID); err != nil {
		log.Printf("Warning: failed to recompute rating for product %s: %v", review.ProductID, err)
	}
	return nil
}

// recomputeRating derives the product's rating and review count from the
// full review set. The mean is rounded to one decimal place.
func (s *ReviewService) recomputeRating(productID string) error {
	reviews, err := s.reviewRepo.GetByProduct(productID)
	if err != nil {
		return err
	}
	rating := 0.0
	if len(reviews) > 0 {
		sum := 0.0
		for _, r := range reviews {
			sum += r.Rating
		}
		rating = math.Round(sum/float64(len(reviews))*10) / 10
	}
	return s.productRepo.UpdateRating(productID, rating, len(reviews))
}

// dedupKey buckets a submission by product, author and hour so an
// accidental double submit maps to the same key.
func dedupKey(productID, userName string, at time.Time) string {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d", productID, userName, at.Unix()/3600)
	return fmt.Sprintf("%x", h.Sum64())
}

// formatRelativeDate renders a timestamp the way review cards display it.
func formatRelativeDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	days := int(time.Since(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	case days < 30:
		weeks := days / 7
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	default:
		months := days / 30
		if months == 1 {
			return "1 month ago"
		}
		return fmt.Sprintf("%d months ago", months)
	}
}
