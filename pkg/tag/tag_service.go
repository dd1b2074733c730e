package tag

import (
	"context"

	"recipebox/domain"
	"recipebox/entities"

	"github.com/google/uuid"
)

type (
	TagService interface {
		CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error)
		GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error)
	}

	tagService struct {
		tagRepository TagRepository
	}
)

func NewTagService(tagRepository TagRepository) TagService {
	return &tagService{tagRepository: tagRepository}
}

func (s *tagService) CreateTag(ctx context.Context, req domain.CreateTagRequest, userID string) (domain.TagResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TagResponse{}, domain.ErrParseUUID
	}

	tag := &entities.Tag{
		UserID: userUUID,
		Name:   req.Name,
	}
	if err := s.tagRepository.CreateTag(ctx, tag); err != nil {
		return domain.TagResponse{}, err
	}

	return domain.TagResponse{ID: tag.ID, Name: tag.Name}, nil
}

func (s *tagService) GetTags(ctx context.Context, userID string, assignedOnly bool) ([]domain.TagResponse, error) {
	tags, err := s.tagRepository.GetTags(ctx, userID, assignedOnly)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TagResponse, 0, len(tags))
	for _, tag := range tags {
		result = append(result, domain.TagResponse{ID: tag.ID, Name: tag.Name})
	}
	return result, nil
}
