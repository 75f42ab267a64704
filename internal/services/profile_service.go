package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"essentia/internal/models/db_models"
	"essentia/internal/models/request_models"
	"essentia/internal/models/response_models"
	"essentia/internal/recommender"
	"essentia/internal/repositories"
	"essentia/pkg/utils"
)

type ProfileServiceInterface interface {
	CreateProfile(ctx context.Context, ownerID uuid.UUID, req request_models.CreateProfileRequest) (response_models.ProfileResponse, error)
	ListProfiles(ctx context.Context, ownerID uuid.UUID) (response_models.ProfileListResponse, error)
	DeleteProfile(ctx context.Context, ownerID uuid.UUID, id string) error
	ReorderProfiles(ctx context.Context, ownerID uuid.UUID, req request_models.ReorderProfilesRequest) error

	// LoadDomainProfile rehydrates a stored profile for scoring.
	LoadDomainProfile(ctx context.Context, id string) (recommender.Profile, *db_models.PerfumeProfile, error)
}

type ProfileService struct {
	profileRepository  repositories.ProfileRepository
	questionRepository repositories.QuestionRepository
	catalogService     CatalogServiceInterface
}

func NewProfileService(
	profileRepository repositories.ProfileRepository,
	questionRepository repositories.QuestionRepository,
	catalogService CatalogServiceInterface,
) ProfileServiceInterface {
	return &ProfileService{
		profileRepository:  profileRepository,
		questionRepository: questionRepository,
		catalogService:     catalogService,
	}
}

func (s *ProfileService) CreateProfile(ctx context.Context, ownerID uuid.UUID, req request_models.CreateProfileRequest) (response_models.ProfileResponse, error) {
	profileType := recommender.ProfileType(req.ProfileType)
	if profileType != recommender.ProfileTypePersonal && profileType != recommender.ProfileTypeGift {
		return response_models.ProfileResponse{}, utils.ErrInvalidFlow
	}
	if len(req.Answers) == 0 {
		return response_models.ProfileResponse{}, utils.ErrEmptyAnswers
	}

	rows, err := s.questionRepository.ListByFlow(ctx, req.FlowID)
	if err != nil {
		log.Printf("Error loading question set %s: %v", req.FlowID, err)
		return response_models.ProfileResponse{}, utils.ErrDatabaseError
	}
	if len(rows) == 0 {
		return response_models.ProfileResponse{}, utils.ErrQuestionSetNotFound
	}

	questions := make([]recommender.Question, 0, len(rows))
	for i := range rows {
		questions = append(questions, rows[i].ToDomain())
	}

	answers := make([]recommender.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, recommender.Answer{
			QuestionID: a.QuestionID,
			OptionIDs:  a.OptionIDs,
			FreeText:   a.FreeText,
		})
	}

	builder := recommender.NewBuilder(resolverOrNil(s.catalogService))
	profile := builder.BuildProfile(answers, questions, profileType, req.FlowID)
	profile.Name = req.Name

	row, err := toProfileRow(ownerID, profile)
	if err != nil {
		log.Printf("Error serializing profile: %v", err)
		return response_models.ProfileResponse{}, utils.ErrProfileStore
	}

	if _, err := s.profileRepository.Create(ctx, row); err != nil {
		log.Printf("Error storing profile: %v", err)
		return response_models.ProfileResponse{}, utils.ErrProfileStore
	}

	return toProfileResponse(row, profile.FamilyScores), nil
}

func (s *ProfileService) ListProfiles(ctx context.Context, ownerID uuid.UUID) (response_models.ProfileListResponse, error) {
	rows, err := s.profileRepository.ListByOwner(ctx, ownerID)
	if err != nil {
		log.Printf("Error listing profiles: %v", err)
		return response_models.ProfileListResponse{}, utils.ErrDatabaseError
	}

	profiles := make([]response_models.ProfileResponse, 0, len(rows))
	for i := range rows {
		scores := make(map[string]float64)
		if len(rows[i].FamilyScores) > 0 {
			if err := json.Unmarshal(rows[i].FamilyScores, &scores); err != nil {
				log.Printf("Skipping malformed family scores on profile %s: %v", rows[i].ID, err)
			}
		}
		profiles = append(profiles, toProfileResponse(&rows[i], scores))
	}

	return response_models.ProfileListResponse{
		Profiles: profiles,
		Total:    len(profiles),
	}, nil
}

func (s *ProfileService) DeleteProfile(ctx context.Context, ownerID uuid.UUID, id string) error {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrProfileNotFound
	}

	if err := s.profileRepository.Delete(ctx, ownerID, profileID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrProfileNotFound
		}
		log.Printf("Error deleting profile %s: %v", id, err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProfileService) ReorderProfiles(ctx context.Context, ownerID uuid.UUID, req request_models.ReorderProfilesRequest) error {
	ids := make([]uuid.UUID, 0, len(req.ProfileIDs))
	for _, raw := range req.ProfileIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return utils.ErrProfileNotFound
		}
		ids = append(ids, id)
	}

	if err := s.profileRepository.Reorder(ctx, ownerID, ids); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrProfileNotFound
		}
		log.Printf("Error reordering profiles: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ProfileService) LoadDomainProfile(ctx context.Context, id string) (recommender.Profile, *db_models.PerfumeProfile, error) {
	profileID, err := uuid.Parse(id)
	if err != nil {
		return recommender.Profile{}, nil, utils.ErrProfileNotFound
	}

	row, err := s.profileRepository.GetByID(ctx, profileID)
	if err != nil {
		log.Printf("Error loading profile %s: %v", id, err)
		return recommender.Profile{}, nil, utils.ErrDatabaseError
	}
	if row == nil {
		return recommender.Profile{}, nil, utils.ErrProfileNotFound
	}

	profile, err := toDomainProfile(row)
	if err != nil {
		log.Printf("Error rehydrating profile %s: %v", id, err)
		return recommender.Profile{}, nil, utils.ErrProfileStore
	}
	return profile, row, nil
}

func resolverOrNil(catalog CatalogServiceInterface) recommender.ReferenceResolver {
	if catalog == nil {
		return nil
	}
	return catalog
}

func toProfileRow(ownerID uuid.UUID, profile recommender.Profile) (*db_models.PerfumeProfile, error) {
	scores, err := json.Marshal(profile.FamilyScores)
	if err != nil {
		return nil, err
	}
	metadata, err := json.Marshal(profile.Metadata)
	if err != nil {
		return nil, err
	}

	return &db_models.PerfumeProfile{
		OwnerID:            ownerID,
		Name:               profile.Name,
		ProfileType:        string(profile.Type),
		FlowID:             profile.FlowID,
		ExperienceLevel:    string(profile.ExperienceLevel),
		PrimaryFamily:      profile.PrimaryFamily,
		Subfamilies:        profile.Subfamilies,
		GenderPreference:   profile.GenderPreference,
		FamilyScores:       scores,
		Metadata:           metadata,
		ConfidenceScore:    profile.ConfidenceScore,
		AnswerCompleteness: profile.AnswerCompleteness,
		SkippedAnswers:     profile.SkippedAnswers,
	}, nil
}

func toDomainProfile(row *db_models.PerfumeProfile) (recommender.Profile, error) {
	scores := make(map[string]float64)
	if len(row.FamilyScores) > 0 {
		if err := json.Unmarshal(row.FamilyScores, &scores); err != nil {
			return recommender.Profile{}, err
		}
	}

	var metadata recommender.ProfileMetadata
	if len(row.Metadata) > 0 {
		if err := json.Unmarshal(row.Metadata, &metadata); err != nil {
			return recommender.Profile{}, err
		}
	}

	return recommender.Profile{
		Name:               row.Name,
		Type:               recommender.ProfileType(row.ProfileType),
		FlowID:             row.FlowID,
		ExperienceLevel:    recommender.ExperienceLevel(row.ExperienceLevel),
		PrimaryFamily:      row.PrimaryFamily,
		Subfamilies:        row.Subfamilies,
		FamilyScores:       scores,
		GenderPreference:   row.GenderPreference,
		Metadata:           metadata,
		ConfidenceScore:    row.ConfidenceScore,
		AnswerCompleteness: row.AnswerCompleteness,
		SkippedAnswers:     row.SkippedAnswers,
	}, nil
}

func toProfileResponse(row *db_models.PerfumeProfile, scores map[string]float64) response_models.ProfileResponse {
	return response_models.ProfileResponse{
		ID:                 row.ID.String(),
		Name:               row.Name,
		ProfileType:        row.ProfileType,
		FlowID:             row.FlowID,
		ExperienceLevel:    row.ExperienceLevel,
		PrimaryFamily:      row.PrimaryFamily,
		Subfamilies:        row.Subfamilies,
		FamilyScores:       scores,
		GenderPreference:   row.GenderPreference,
		ConfidenceScore:    row.ConfidenceScore,
		AnswerCompleteness: row.AnswerCompleteness,
		SkippedAnswers:     row.SkippedAnswers,
		OrderIndex:         row.OrderIndex,
		CreatedAt:          row.CreatedAt,
	}
}
