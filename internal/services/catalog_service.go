package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"marketplace/internal/domain"
	applog "marketplace/internal/log"
	"marketplace/internal/media"
	"marketplace/internal/repos"
	"marketplace/internal/validate"
)

type CatalogService struct {
	Items      ItemStore
	Images     media.Fetcher
	Aggregates *AggregateService
}

func NewCatalogService(items ItemStore, images media.Fetcher, agg *AggregateService) *CatalogService {
	return &CatalogService{Items: items, Images: images, Aggregates: agg}
}

// NewItemInput is the create-item request body.
type NewItemInput struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageURL    string         `json:"image_url"`
	Price       *float64       `json:"price"`
	Grouping    string         `json:"grouping"`
	Traits      []domain.Trait `json:"traits"`
}

func (in *NewItemInput) normalize() error {
	var ok bool
	if in.Name, ok = validate.Text(in.Name, 100); !ok {
		return invalid("name must be 1-100 printable characters")
	}
	if in.Description, ok = validate.OptionalText(in.Description, 2000); !ok {
		return invalid("description must be at most 2000 printable characters")
	}
	if in.ImageURL, ok = validate.URL(in.ImageURL); !ok {
		return invalid("image_url must be an http(s) URL")
	}
	if in.Price == nil {
		return invalid("price is required")
	}
	if !validate.Price(*in.Price) {
		return invalid("price must be a non-negative number")
	}
	if in.Grouping, ok = validate.Text(in.Grouping, 100); !ok {
		return invalid("grouping must be 1-100 printable characters")
	}
	for i, t := range in.Traits {
		if _, ok := validate.Text(t.TraitType, 50); !ok {
			return invalid("traits[%d].trait_type is required", i)
		}
		if _, ok := validate.Text(t.Value, 100); !ok {
			return invalid("traits[%d].value is required", i)
		}
	}
	return nil
}

func (s *CatalogService) ListItems(ctx context.Context, f repos.ItemFilter) ([]domain.Item, error) {
	return s.Items.List(ctx, f)
}

// GetItem counts a view and returns the item with the new view count.
func (s *CatalogService) GetItem(ctx context.Context, id string) (domain.Item, error) {
	ok, err := s.Items.IncrementViews(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	if !ok {
		return domain.Item{}, notFound("Item")
	}
	it, err := s.Items.Get(ctx, id)
	return it, lookup("Item", err)
}

// CreateItem stores a new listed item with synthetic owner and creator, then
// recomputes its grouping. A failed recompute is logged and the item kept.
func (s *CatalogService) CreateItem(ctx context.Context, in NewItemInput) (domain.Item, error) {
	if err := in.normalize(); err != nil {
		return domain.Item{}, err
	}
	token, err := s.Items.NextTokenID(ctx)
	if err != nil {
		return domain.Item{}, fmt.Errorf("allocate token id: %w", err)
	}

	it := domain.NewItem(domain.Item{
		Name:        in.Name,
		Description: in.Description,
		Image:       s.Images.FetchEncoded(ctx, in.ImageURL),
		Price:       *in.Price,
		Grouping:    in.Grouping,
		Traits:      domain.Traits(in.Traits),
		TokenID:     token,
	})
	if err := s.Items.Insert(ctx, it); err != nil {
		return domain.Item{}, err
	}

	if s.Aggregates != nil {
		if _, _, err := s.Aggregates.Recompute(ctx, it.Grouping); err != nil {
			applog.L().Error("grouping.recompute.fail",
				zap.String("grouping", it.Grouping), zap.String("item_id", it.ID), zap.Error(err))
		}
	}
	return it, nil
}

func (s *CatalogService) LikeItem(ctx context.Context, id string) error {
	ok, err := s.Items.IncrementLikes(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("Item")
	}
	return nil
}
