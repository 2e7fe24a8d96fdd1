package service

import (
	"context"
	"fmt"
	"strings"

	"biopubs-ai/internal/llm"
	"biopubs-ai/internal/storage"
)

// DefaultCardCount is the number of study cards generated when the request
// does not specify one.
const DefaultCardCount = 5

// MaxCardCount caps a single generation request.
const MaxCardCount = 20

// CardClient generates question/answer study cards for a publication.
type CardClient interface {
	GenerateStudyCards(ctx context.Context, title, body string, count int) ([]llm.StudyCard, error)
}

// CardsResult is the outcome of a study-card generation request.
type CardsResult struct {
	ID    string          `json:"id"`
	Title string          `json:"title"`
	Cards []llm.StudyCard `json:"cards"`
}

// CardService generates study cards from stored publications.
type CardService struct {
	store   storage.PublicationStore
	fetcher ArticleFetcher
	client  CardClient
}

// NewCardService creates a new CardService.
func NewCardService(store storage.PublicationStore, fetcher ArticleFetcher, client CardClient) *CardService {
	return &CardService{
		store:   store,
		fetcher: fetcher,
		client:  client,
	}
}

// GenerateCards produces up to count study cards for a stored publication.
// A non-positive count selects DefaultCardCount; counts above MaxCardCount
// are clamped.
func (s *CardService) GenerateCards(ctx context.Context, id string, count int) (CardsResult, error) {
	if strings.TrimSpace(id) == "" {
		return CardsResult{}, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if count <= 0 {
		count = DefaultCardCount
	}
	if count > MaxCardCount {
		count = MaxCardCount
	}

	pub, err := s.store.GetByID(ctx, id)
	if err != nil {
		return CardsResult{}, WrapError(err, "failed to load publication")
	}

	body := s.fetcher.FetchArticleText(ctx, pub.Link)
	cards, err := s.client.GenerateStudyCards(ctx, pub.Title, body, count)
	if err != nil {
		return CardsResult{}, fmt.Errorf("failed to generate study cards: %w: %w", ErrUpstream, err)
	}

	return CardsResult{
		ID:    pub.ID,
		Title: pub.Title,
		Cards: cards,
	}, nil
}
