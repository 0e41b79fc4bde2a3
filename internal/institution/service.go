package institution

import (
	"context"
	"fmt"

	"countryapi/internal/platform/hipolabs"
)

// DirectoryClient is the external institution directory.
type DirectoryClient interface {
	Search(ctx context.Context, countryName string) ([]hipolabs.RawInstitution, error)
}

type Service struct {
	client DirectoryClient
}

func NewService(client DirectoryClient) *Service {
	return &Service{client: client}
}

// ByCountry fetches and normalizes the directory listing for a country
// display name. A failed fetch and an empty listing both come back as
// ErrNoData: the directory's coverage is spotty and the distinction does
// not change what the caller shows.
func (s *Service) ByCountry(ctx context.Context, countryName string) ([]Institution, error) {
	raw, err := s.client.Search(ctx, countryName)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	if len(raw) == 0 {
		return nil, ErrNoData
	}
	list := make([]Institution, 0, len(raw))
	for _, r := range raw {
		list = append(list, FromRaw(r))
	}
	return list, nil
}
