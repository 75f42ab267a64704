package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"essentia/internal/models/db_models"
	"essentia/internal/models/request_models"
	"essentia/pkg/utils"
)

type fakeProfileRepo struct {
	rows []db_models.PerfumeProfile
}

func (f *fakeProfileRepo) Create(ctx context.Context, profile *db_models.PerfumeProfile) (uuid.UUID, error) {
	profile.ID = uuid.New()
	profile.OrderIndex = len(f.rows)
	f.rows = append(f.rows, *profile)
	return profile.ID, nil
}

func (f *fakeProfileRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.PerfumeProfile, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]db_models.PerfumeProfile, error) {
	var out []db_models.PerfumeProfile
	for _, row := range f.rows {
		if row.OwnerID == ownerID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (f *fakeProfileRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	for i, row := range f.rows {
		if row.ID == id && row.OwnerID == ownerID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			for j := range f.rows {
				f.rows[j].OrderIndex = j
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeProfileRepo) Reorder(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) error {
	for index, id := range ids {
		found := false
		for i := range f.rows {
			if f.rows[i].ID == id && f.rows[i].OwnerID == ownerID {
				f.rows[i].OrderIndex = index
				found = true
			}
		}
		if !found {
			return gorm.ErrRecordNotFound
		}
	}
	return nil
}

type fakeQuestionRepo struct {
	byFlow map[string][]db_models.Question
}

func (f *fakeQuestionRepo) ListByFlow(ctx context.Context, flowID string) ([]db_models.Question, error) {
	return f.byFlow[flowID], nil
}

func questionFixture(flowID string) []db_models.Question {
	q := db_models.Question{
		FlowID:     flowID,
		Key:        "family_preference",
		Category:   "preference",
		OrderIndex: 0,
	}
	q.ID = uuid.New()

	opt := db_models.QuestionOption{
		QuestionID: q.ID,
		Label:      "Warm and woody",
		Families:   datatypes.JSON([]byte(`{"woody": 10, "oriental": 5}`)),
		Metadata:   datatypes.JSON([]byte(`{"occasions": ["evening"]}`)),
	}
	opt.ID = uuid.New()
	q.Options = []db_models.QuestionOption{opt}

	return []db_models.Question{q}
}

func newProfileServiceFixture(flowID string) (ProfileServiceInterface, *fakeProfileRepo, []db_models.Question) {
	questions := questionFixture(flowID)
	profileRepo := &fakeProfileRepo{}
	questionRepo := &fakeQuestionRepo{byFlow: map[string][]db_models.Question{flowID: questions}}
	svc := NewProfileService(profileRepo, questionRepo, nil)
	return svc, profileRepo, questions
}

func TestCreateProfileHappyPath(t *testing.T) {
	svc, repo, questions := newProfileServiceFixture("personal_A")
	ownerID := uuid.New()

	resp, err := svc.CreateProfile(context.Background(), ownerID, request_models.CreateProfileRequest{
		Name:        "My profile",
		ProfileType: "personal",
		FlowID:      "personal_A",
		Answers: []request_models.AnswerInput{
			{QuestionID: questions[0].ID.String(), OptionIDs: []string{questions[0].Options[0].ID.String()}},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "woody", resp.PrimaryFamily)
	assert.Equal(t, 100.0, resp.FamilyScores["woody"])
	assert.Equal(t, 50.0, resp.FamilyScores["oriental"])
	assert.Equal(t, "beginner", resp.ExperienceLevel)
	assert.Equal(t, 0, resp.OrderIndex)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, ownerID, repo.rows[0].OwnerID)
}

func TestCreateProfileAssignsSequentialOrderIndexes(t *testing.T) {
	svc, repo, questions := newProfileServiceFixture("personal_A")
	ownerID := uuid.New()

	req := request_models.CreateProfileRequest{
		ProfileType: "personal",
		FlowID:      "personal_A",
		Answers: []request_models.AnswerInput{
			{QuestionID: questions[0].ID.String(), OptionIDs: []string{questions[0].Options[0].ID.String()}},
		},
	}

	first, err := svc.CreateProfile(context.Background(), ownerID, req)
	require.NoError(t, err)
	second, err := svc.CreateProfile(context.Background(), ownerID, req)
	require.NoError(t, err)

	assert.Equal(t, 0, first.OrderIndex)
	assert.Equal(t, 1, second.OrderIndex)
	assert.Len(t, repo.rows, 2)
}

func TestCreateProfileValidation(t *testing.T) {
	svc, _, questions := newProfileServiceFixture("personal_A")
	ownerID := uuid.New()
	answer := request_models.AnswerInput{
		QuestionID: questions[0].ID.String(),
		OptionIDs:  []string{questions[0].Options[0].ID.String()},
	}

	_, err := svc.CreateProfile(context.Background(), ownerID, request_models.CreateProfileRequest{
		ProfileType: "bogus", FlowID: "personal_A", Answers: []request_models.AnswerInput{answer},
	})
	assert.ErrorIs(t, err, utils.ErrInvalidFlow)

	_, err = svc.CreateProfile(context.Background(), ownerID, request_models.CreateProfileRequest{
		ProfileType: "personal", FlowID: "personal_A",
	})
	assert.ErrorIs(t, err, utils.ErrEmptyAnswers)

	_, err = svc.CreateProfile(context.Background(), ownerID, request_models.CreateProfileRequest{
		ProfileType: "personal", FlowID: "unknown_flow", Answers: []request_models.AnswerInput{answer},
	})
	assert.ErrorIs(t, err, utils.ErrQuestionSetNotFound)
}

func TestDeleteProfileClosesOrderGap(t *testing.T) {
	svc, repo, questions := newProfileServiceFixture("personal_A")
	ownerID := uuid.New()

	req := request_models.CreateProfileRequest{
		ProfileType: "personal",
		FlowID:      "personal_A",
		Answers: []request_models.AnswerInput{
			{QuestionID: questions[0].ID.String(), OptionIDs: []string{questions[0].Options[0].ID.String()}},
		},
	}
	first, err := svc.CreateProfile(context.Background(), ownerID, req)
	require.NoError(t, err)
	_, err = svc.CreateProfile(context.Background(), ownerID, req)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProfile(context.Background(), ownerID, first.ID))
	require.Len(t, repo.rows, 1)
	assert.Equal(t, 0, repo.rows[0].OrderIndex)
}

func TestDeleteProfileNotFound(t *testing.T) {
	svc, _, _ := newProfileServiceFixture("personal_A")

	err := svc.DeleteProfile(context.Background(), uuid.New(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)

	err = svc.DeleteProfile(context.Background(), uuid.New(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}

func TestReorderProfiles(t *testing.T) {
	svc, repo, questions := newProfileServiceFixture("personal_A")
	ownerID := uuid.New()

	req := request_models.CreateProfileRequest{
		ProfileType: "personal",
		FlowID:      "personal_A",
		Answers: []request_models.AnswerInput{
			{QuestionID: questions[0].ID.String(), OptionIDs: []string{questions[0].Options[0].ID.String()}},
		},
	}
	first, err := svc.CreateProfile(context.Background(), ownerID, req)
	require.NoError(t, err)
	second, err := svc.CreateProfile(context.Background(), ownerID, req)
	require.NoError(t, err)

	err = svc.ReorderProfiles(context.Background(), ownerID, request_models.ReorderProfilesRequest{
		ProfileIDs: []string{second.ID, first.ID},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.rows[0].OrderIndex)
	assert.Equal(t, 0, repo.rows[1].OrderIndex)
}

func TestLoadDomainProfileRoundTrip(t *testing.T) {
	svc, _, questions := newProfileServiceFixture("personal_A")
	ownerID := uuid.New()

	created, err := svc.CreateProfile(context.Background(), ownerID, request_models.CreateProfileRequest{
		ProfileType: "personal",
		FlowID:      "personal_A",
		Answers: []request_models.AnswerInput{
			{QuestionID: questions[0].ID.String(), OptionIDs: []string{questions[0].Options[0].ID.String()}},
		},
	})
	require.NoError(t, err)

	profile, row, err := svc.LoadDomainProfile(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, row.ID.String())
	assert.Equal(t, "woody", profile.PrimaryFamily)
	assert.Equal(t, 100.0, profile.FamilyScores["woody"])
	assert.Equal(t, []string{"evening"}, profile.Metadata.PreferredOccasions)
}

func TestLoadDomainProfileNotFound(t *testing.T) {
	svc, _, _ := newProfileServiceFixture("personal_A")

	_, _, err := svc.LoadDomainProfile(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, utils.ErrProfileNotFound)
}
