package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"marketplace/internal/domain"
	"marketplace/internal/media"
)

type sampleGrouping struct{ Name, Description string }

type sampleItem struct {
	Name, Description string
	Price             float64
	Grouping          string
	ImageURL          string
}

var sampleGroupings = []sampleGrouping{
	{"CryptoArt", "Exclusive digital art collection"},
	{"PixelPunks", "Retro pixel art avatars"},
	{"Abstract3D", "3D rendered abstract artwork"},
	{"DigitalPortraits", "AI-generated portrait collection"},
}

var sampleItems = []sampleItem{
	{"Colorful Abstraction", "A vibrant abstract digital artwork", 2.5, "CryptoArt", "https://images.unsplash.com/photo-1635377090186-036bca445c6b"},
	{"Space Invader", "Classic retro pixel art", 1.2, "PixelPunks", "https://images.pexels.com/photos/1670977/pexels-photo-1670977.jpeg"},
	{"Cubic Dreams", "3D rendered minimalist cube", 3.0, "Abstract3D", "https://images.pexels.com/photos/5011647/pexels-photo-5011647.jpeg"},
	{"Digital Portrait", "AI-enhanced digital portrait", 1.8, "DigitalPortraits", "https://images.pexels.com/photos/1081685/pexels-photo-1081685.jpeg"},
	{"Purple Waves", "Abstract 3D rendered waves", 4.2, "Abstract3D", "https://images.unsplash.com/photo-1693920105404-c2208c22cfe4"},
	{"Pixel Mona Lisa", "Classic art in pixel form", 5.0, "PixelPunks", "https://images.unsplash.com/photo-1634320714682-ae8b9c9cee60"},
	{"Flowing Colors", "Vibrant flowing abstract shapes", 2.8, "CryptoArt", "https://images.pexels.com/photos/32796044/pexels-photo-32796044.jpeg"},
	{"Neon Portal", "3D rendered portal with neon effects", 3.5, "Abstract3D", "https://images.pexels.com/photos/8347501/pexels-photo-8347501.jpeg"},
}

// SeedService loads the demo groupings and items. Seeding twice appends a
// second copy of everything.
type SeedService struct {
	Items      ItemStore
	Groupings  GroupingStore
	Images     media.Fetcher
	Aggregates *AggregateService
	// FetchLimit bounds concurrent image downloads; <= 0 means 4.
	FetchLimit int
}

func NewSeedService(items ItemStore, groupings GroupingStore, images media.Fetcher, agg *AggregateService) *SeedService {
	return &SeedService{Items: items, Groupings: groupings, Images: images, Aggregates: agg}
}

type SeedResult struct {
	Groupings int `json:"groupings"`
	Items     int `json:"items"`
}

func (s *SeedService) Seed(ctx context.Context) (SeedResult, error) {
	var res SeedResult

	// Images are fetched before anything is written, so a cancelled request
	// leaves the store untouched. Failed downloads come back empty.
	images := make([]string, len(sampleItems))
	limit := s.FetchLimit
	if limit <= 0 {
		limit = 4
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, si := range sampleItems {
		g.Go(func() error {
			images[i] = s.Images.FetchEncoded(gctx, si.ImageURL)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return res, fmt.Errorf("fetch sample images: %w", err)
	}

	for _, sg := range sampleGroupings {
		gr := domain.NewGrouping(domain.Grouping{Name: sg.Name, Description: sg.Description})
		if err := s.Groupings.Insert(ctx, gr); err != nil {
			return res, fmt.Errorf("seed grouping %s: %w", sg.Name, err)
		}
		res.Groupings++
	}

	for i, si := range sampleItems {
		token, err := s.Items.NextTokenID(ctx)
		if err != nil {
			return res, fmt.Errorf("allocate token id: %w", err)
		}
		rarity := "Rare"
		if i%3 == 0 {
			rarity = "Common"
		}
		it := domain.NewItem(domain.Item{
			Name:        si.Name,
			Description: si.Description,
			Image:       images[i],
			Price:       si.Price,
			Grouping:    si.Grouping,
			TokenID:     token,
			Traits: domain.Traits{
				{TraitType: "Rarity", Value: rarity},
				{TraitType: "Style", Value: si.Grouping},
			},
		})
		if err := s.Items.Insert(ctx, it); err != nil {
			return res, fmt.Errorf("seed item %s: %w", si.Name, err)
		}
		res.Items++
	}

	for _, sg := range sampleGroupings {
		if _, _, err := s.Aggregates.Recompute(ctx, sg.Name); err != nil {
			return res, err
		}
	}
	return res, nil
}
