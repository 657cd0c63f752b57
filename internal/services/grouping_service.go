package services

import (
	"context"

	"marketplace/internal/domain"
	"marketplace/internal/media"
	"marketplace/internal/validate"
)

type GroupingService struct {
	Groupings GroupingStore
	Members   ItemStore
	Images    media.Fetcher
}

func NewGroupingService(groupings GroupingStore, items ItemStore, images media.Fetcher) *GroupingService {
	return &GroupingService{Groupings: groupings, Members: items, Images: images}
}

type NewGroupingInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	BannerImageURL string `json:"banner_image_url"`
}

func (s *GroupingService) List(ctx context.Context) ([]domain.Grouping, error) {
	return s.Groupings.List(ctx, 1000)
}

func (s *GroupingService) Get(ctx context.Context, id string) (domain.Grouping, error) {
	g, err := s.Groupings.Get(ctx, id)
	return g, lookup("Grouping", err)
}

// Create stores an empty grouping; stats stay zero until an item joins it.
func (s *GroupingService) Create(ctx context.Context, in NewGroupingInput) (domain.Grouping, error) {
	name, ok := validate.Text(in.Name, 100)
	if !ok {
		return domain.Grouping{}, invalid("name must be 1-100 printable characters")
	}
	desc, ok := validate.OptionalText(in.Description, 2000)
	if !ok {
		return domain.Grouping{}, invalid("description must be at most 2000 printable characters")
	}
	g := domain.Grouping{Name: name, Description: desc}
	if in.BannerImageURL != "" {
		u, ok := validate.URL(in.BannerImageURL)
		if !ok {
			return domain.Grouping{}, invalid("banner_image_url must be an http(s) URL")
		}
		banner := s.Images.FetchEncoded(ctx, u)
		g.BannerImage = &banner
	}

	g = domain.NewGrouping(g)
	if err := s.Groupings.Insert(ctx, g); err != nil {
		return domain.Grouping{}, err
	}
	return g, nil
}

// Items lists members by grouping name.
func (s *GroupingService) Items(ctx context.Context, id string) ([]domain.Item, error) {
	g, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.Members.ByGrouping(ctx, g.Name)
}
