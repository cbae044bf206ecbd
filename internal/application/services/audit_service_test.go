package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vindlokaal/businessprofiles/backend/internal/domain/entities"
	apperrors "github.com/vindlokaal/businessprofiles/backend/pkg/errors"
)

type fakeBusinessRepo struct {
	profiles map[string]*entities.BusinessProfile
}

func (f *fakeBusinessRepo) GetByID(ctx context.Context, id string) (*entities.BusinessProfile, error) {
	profile, ok := f.profiles[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("business not found")
	}
	return profile, nil
}

func (f *fakeBusinessRepo) ListActive(ctx context.Context, limit, offset int) ([]*entities.BusinessProfile, error) {
	out := make([]*entities.BusinessProfile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, p)
	}
	return out, nil
}

type fakeSnapshotRepo struct {
	appended  []*entities.ScoreSnapshot
	appendErr error
	listErr   error
}

func (f *fakeSnapshotRepo) Append(ctx context.Context, snapshot *entities.ScoreSnapshot) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	snapshot.CreatedAt = time.Now()
	f.appended = append(f.appended, snapshot)
	return nil
}

func (f *fakeSnapshotRepo) ListByBusiness(ctx context.Context, businessID string, limit int) ([]*entities.ScoreSnapshot, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*entities.ScoreSnapshot, 0, len(f.appended))
	for _, s := range f.appended {
		if s.BusinessID == businessID {
			out = append(out, s)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeSearchRepo struct {
	indexed  map[string]int
	indexErr error
}

func (f *fakeSearchRepo) InitSchema(ctx context.Context) error { return nil }

func (f *fakeSearchRepo) Index(ctx context.Context, business *entities.BusinessProfile, profileScore int) error {
	if f.indexErr != nil {
		return f.indexErr
	}
	if f.indexed == nil {
		f.indexed = make(map[string]int)
	}
	f.indexed[business.ID] = profileScore
	return nil
}

func (f *fakeSearchRepo) Delete(ctx context.Context, businessID string) error { return nil }

func testProfile(id string) *entities.BusinessProfile {
	return &entities.BusinessProfile{
		ID:               id,
		Name:             "Fietsenmaker De Ketting",
		Slug:             "fietsenmaker-de-ketting",
		ShortDescription: "Reparatie en onderhoud van stadsfietsen en e-bikes in het centrum van Utrecht.",
		PhoneNumber:      "030-1234567",
		Email:            "info@deketting.nl",
		Address: entities.Address{
			Street:     "Oudegracht 12",
			PostalCode: "3511 AB",
			City:       "Utrecht",
		},
		Services: []string{"Reparatie", "Onderhoud", "E-bike service"},
	}
}

func TestAuditService_Run(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	snapshots := &fakeSnapshotRepo{}
	service := NewAuditService(businesses, snapshots, 30)

	result, err := service.Run(context.Background(), "b1")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Greater(t, result.OverallScore, 0)
	assert.Len(t, result.Categories, 5)

	require.Len(t, snapshots.appended, 1)
	snapshot := snapshots.appended[0]
	assert.Equal(t, "b1", snapshot.BusinessID)
	assert.Equal(t, result.OverallScore, snapshot.Score)

	total := 0
	for _, score := range snapshot.Breakdown {
		total += score
	}
	assert.Equal(t, result.OverallScore, total)

	// The fresh snapshot is the trailing point of the returned trend.
	require.NotEmpty(t, result.History)
	assert.Equal(t, result.OverallScore, result.History[len(result.History)-1].Score)
}

func TestAuditService_Run_NotFound(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{}}
	service := NewAuditService(businesses, &fakeSnapshotRepo{}, 30)

	result, err := service.Run(context.Background(), "missing")
	require.Error(t, err)
	assert.Nil(t, result)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}

func TestAuditService_Run_SnapshotFailureDoesNotFailAudit(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	snapshots := &fakeSnapshotRepo{appendErr: errors.New("connection refused")}
	service := NewAuditService(businesses, snapshots, 30)

	result, err := service.Run(context.Background(), "b1")
	require.NoError(t, err)
	assert.Greater(t, result.OverallScore, 0)
	assert.Empty(t, snapshots.appended)
}

func TestAuditService_Run_HistoryFailureDegradesToEmpty(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	snapshots := &fakeSnapshotRepo{listErr: errors.New("timeout")}
	service := NewAuditService(businesses, snapshots, 30)

	result, err := service.Run(context.Background(), "b1")
	require.NoError(t, err)
	assert.NotNil(t, result.History)
	assert.Empty(t, result.History)
}

func TestAuditService_Run_PushesScoreToSearchIndex(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	search := &fakeSearchRepo{}
	service := NewAuditService(businesses, &fakeSnapshotRepo{}, 30)
	service.SetSearchRepository(search)

	result, err := service.Run(context.Background(), "b1")
	require.NoError(t, err)
	assert.Equal(t, result.OverallScore, search.indexed["b1"])
}

func TestAuditService_Run_SearchIndexFailureDoesNotFailAudit(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	service := NewAuditService(businesses, &fakeSnapshotRepo{}, 30)
	service.SetSearchRepository(&fakeSearchRepo{indexErr: errors.New("typesense unavailable")})

	_, err := service.Run(context.Background(), "b1")
	require.NoError(t, err)
}

func TestAuditService_Preview_RecordsNothing(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	snapshots := &fakeSnapshotRepo{}
	search := &fakeSearchRepo{}
	service := NewAuditService(businesses, snapshots, 30)
	service.SetSearchRepository(search)

	result, err := service.Preview(context.Background(), "b1")
	require.NoError(t, err)
	assert.Greater(t, result.OverallScore, 0)
	assert.Empty(t, snapshots.appended)
	assert.Empty(t, search.indexed)
	assert.Empty(t, result.History)
}

func TestAuditService_History(t *testing.T) {
	businesses := &fakeBusinessRepo{profiles: map[string]*entities.BusinessProfile{
		"b1": testProfile("b1"),
	}}
	snapshots := &fakeSnapshotRepo{}
	service := NewAuditService(businesses, snapshots, 2)

	for i := 0; i < 3; i++ {
		_, err := service.Run(context.Background(), "b1")
		require.NoError(t, err)
	}

	history, err := service.History(context.Background(), "b1")
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
