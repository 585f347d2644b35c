package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhpark/safedine-backend/internal/app/model"
	"github.com/jhpark/safedine-backend/internal/app/repository"
	"github.com/jhpark/safedine-backend/internal/search"
)

func strPtr(s string) *string { return &s }

func setupServiceTest(t *testing.T) (EstablishmentService, InspectionService) {
	store := repository.NewStore()
	repository.SeedFixtures(store)

	index := search.NewIndex(search.Config{})
	establishmentRepo := repository.NewEstablishmentRepository(store, index)
	inspectionRepo := repository.NewInspectionRepository(store)
	violationRepo := repository.NewViolationRepository(store)
	certificationRepo := repository.NewCertificationRepository(store)
	safetyFeatureRepo := repository.NewSafetyFeatureRepository(store)

	establishments, err := establishmentRepo.FindAll()
	require.NoError(t, err)
	index.Rebuild(establishments)

	establishmentService := NewEstablishmentService(
		establishmentRepo, inspectionRepo, violationRepo, certificationRepo, safetyFeatureRepo,
		index, EstablishmentServiceConfig{},
	)
	inspectionService := NewInspectionService(establishmentRepo, inspectionRepo, violationRepo)
	return establishmentService, inspectionService
}

func searchParams(query string) model.SearchParams {
	return model.SearchParams{
		Query:        query,
		BusinessType: "all",
		Grade:        "all",
		Limit:        10,
		Offset:       0,
	}
}

func resultIDs(result *model.SearchResult) []string {
	ids := make([]string, 0, len(result.Establishments))
	for _, est := range result.Establishments {
		ids = append(ids, est.ID)
	}
	return ids
}

func TestEstablishmentService_Search_TextMatch(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	result, err := establishmentService.Search(searchParams("Mario"))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Establishments, 1)

	found := result.Establishments[0]
	assert.Equal(t, "est-1", found.ID)
	require.Len(t, found.Violations, 2)
	violationIDs := []string{found.Violations[0].ID, found.Violations[1].ID}
	assert.ElementsMatch(t, []string{"viol-1", "viol-2"}, violationIDs)
}

func TestEstablishmentService_Search_GradeMismatch(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	params := searchParams("Mario")
	params.Grade = "B"

	result, err := establishmentService.Search(params)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Establishments)
}

func TestEstablishmentService_Search_BusinessTypeFilter(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	params := searchParams("")
	params.BusinessType = "restaurant"

	result, err := establishmentService.Search(params)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, []string{"est-1", "est-3"}, resultIDs(result))
}

func TestEstablishmentService_Search_CityFilter(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	params := searchParams("")
	params.City = "brook"

	result, err := establishmentService.Search(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"est-3"}, resultIDs(result))
}

func TestEstablishmentService_Search_SortedByScoreDescending(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	result, err := establishmentService.Search(searchParams(""))
	require.NoError(t, err)

	// est-2 scored 98, est-1 scored 95, est-3 scored 82
	assert.Equal(t, []string{"est-2", "est-1", "est-3"}, resultIDs(result))
}

func TestEstablishmentService_Search_GradeFilterExcludesUninspected(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	created, err := establishmentService.CreateEstablishment(CreateEstablishmentInput{
		Name:         "Fresh Start Deli",
		Address:      "10 New Ave",
		City:         "New York",
		State:        "NY",
		ZipCode:      "10002",
		BusinessType: model.BusinessTypeRestaurant,
	})
	require.NoError(t, err)

	// With no grade filter the uninspected establishment sorts last as
	// score zero.
	result, err := establishmentService.Search(searchParams(""))
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, created.ID, result.Establishments[3].ID)
	assert.Nil(t, result.Establishments[3].LatestInspection)

	// An active grade filter must exclude it.
	params := searchParams("")
	params.Grade = "A"
	result, err = establishmentService.Search(params)
	require.NoError(t, err)
	assert.Equal(t, []string{"est-2", "est-1"}, resultIDs(result))
}

func TestEstablishmentService_Search_Pagination(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	tests := []struct {
		name      string
		limit     int
		offset    int
		wantCount int
	}{
		{name: "first page", limit: 2, offset: 0, wantCount: 2},
		{name: "second page", limit: 2, offset: 2, wantCount: 1},
		{name: "offset beyond total", limit: 10, offset: 5, wantCount: 0},
		{name: "exact boundary", limit: 3, offset: 3, wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := searchParams("")
			params.Limit = tt.limit
			params.Offset = tt.offset

			result, err := establishmentService.Search(params)
			require.NoError(t, err)

			// Total is invariant across offsets for the same filter set.
			assert.Equal(t, 3, result.Total)
			assert.Len(t, result.Establishments, tt.wantCount)

			expected := result.Total - tt.offset
			if expected < 0 {
				expected = 0
			}
			if expected > tt.limit {
				expected = tt.limit
			}
			assert.Len(t, result.Establishments, expected)
		})
	}
}

func TestEstablishmentService_Search_CreateRoundTrip(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	created, err := establishmentService.CreateEstablishment(CreateEstablishmentInput{
		Name:         "Tony's Pizza Palace",
		Address:      "55 Mulberry Street",
		City:         "New York",
		State:        "NY",
		ZipCode:      "10013",
		BusinessType: model.BusinessTypeRestaurant,
		Cuisine:      strPtr("Italian"),
	})
	require.NoError(t, err)

	// The index rebuild is synchronous: a created establishment is
	// searchable immediately.
	result, err := establishmentService.Search(searchParams("Tony's Pizza Palace"))
	require.NoError(t, err)
	assert.Contains(t, resultIDs(result), created.ID)
}

func TestEstablishmentService_CreateEstablishment_DropsCuisineForHotels(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	created, err := establishmentService.CreateEstablishment(CreateEstablishmentInput{
		Name:         "Riverside Inn",
		Address:      "77 River Rd",
		City:         "Albany",
		State:        "NY",
		ZipCode:      "12207",
		BusinessType: model.BusinessTypeHotel,
		Cuisine:      strPtr("French"),
	})
	require.NoError(t, err)
	assert.Nil(t, created.Cuisine)
}

func TestEstablishmentService_GetEstablishmentByID(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	details, err := establishmentService.GetEstablishmentByID("est-1")
	require.NoError(t, err)

	assert.Equal(t, "Mario's Italian Restaurant", details.Name)
	require.NotNil(t, details.LatestInspection)
	assert.Equal(t, "insp-1", details.LatestInspection.ID)
	assert.Len(t, details.Violations, 2)

	assert.Equal(t, 1, details.Stats.TotalInspections)
	assert.Equal(t, 95, details.Stats.AvgScore)
	assert.Equal(t, 2, details.Stats.ViolationCount)
	assert.GreaterOrEqual(t, details.Stats.DaysSinceInspection, 0)
}

func TestEstablishmentService_GetEstablishmentByID_JoinsAllRelations(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	details, err := establishmentService.GetEstablishmentByID("est-2")
	require.NoError(t, err)

	require.NotNil(t, details.LatestInspection)
	assert.Equal(t, "insp-2", details.LatestInspection.ID)
	assert.Empty(t, details.Violations)
	assert.Len(t, details.Certifications, 2)
	assert.Len(t, details.SafetyFeatures, 3)
}

func TestEstablishmentService_GetEstablishmentByID_NotFound(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	details, err := establishmentService.GetEstablishmentByID("no-such-id")
	assert.ErrorIs(t, err, ErrEstablishmentNotFound)
	assert.Nil(t, details)
}

func TestEstablishmentService_Stats_AvgScoreIsRoundedMean(t *testing.T) {
	establishmentService, inspectionService := setupServiceTest(t)

	created, err := establishmentService.CreateEstablishment(CreateEstablishmentInput{
		Name:         "Corner Bakery",
		Address:      "5 Flour Ln",
		City:         "Queens",
		State:        "NY",
		ZipCode:      "11101",
		BusinessType: model.BusinessTypeRestaurant,
	})
	require.NoError(t, err)

	_, err = inspectionService.CreateInspection(CreateInspectionInput{
		EstablishmentID: created.ID,
		InspectionDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		Score:           90,
		Grade:           model.GradeA,
		InspectorName:   "Pat Lee",
		InspectorID:     "INS-0001",
	})
	require.NoError(t, err)

	latest, err := inspectionService.CreateInspection(CreateInspectionInput{
		EstablishmentID: created.ID,
		InspectionDate:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Score:           81,
		Grade:           model.GradeB,
		InspectorName:   "Pat Lee",
		InspectorID:     "INS-0001",
	})
	require.NoError(t, err)

	_, err = inspectionService.AddViolation(latest.ID, CreateViolationInput{
		Code:        "10B",
		Description: "Improper cold holding temperature",
		Severity:    model.SeverityMajor,
		Points:      8,
		Category:    "Temperature Control",
	})
	require.NoError(t, err)

	details, err := establishmentService.GetEstablishmentByID(created.ID)
	require.NoError(t, err)

	assert.Equal(t, 2, details.Stats.TotalInspections)
	// round((90 + 81) / 2) = round(85.5) = 86
	assert.Equal(t, 86, details.Stats.AvgScore)
	// Violations are counted on the latest inspection only.
	assert.Equal(t, 1, details.Stats.ViolationCount)
	assert.Equal(t, latest.ID, details.LatestInspection.ID)
}

func TestEstablishmentService_Suggest(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	suggestions, err := establishmentService.Suggest("New York")
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "Mario's Italian Restaurant", suggestions[0].Name)
	assert.Equal(t, "restaurant", suggestions[0].Type)
	assert.Equal(t, "123 Main Street, New York", suggestions[0].Address)
	assert.Equal(t, "Grand Plaza Hotel", suggestions[1].Name)
	assert.Equal(t, "hotel", suggestions[1].Type)
}

func TestEstablishmentService_Suggest_CapsAtLimit(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	for i := 0; i < 6; i++ {
		_, err := establishmentService.CreateEstablishment(CreateEstablishmentInput{
			Name:         "Harborside Grill",
			Address:      "1 Dock St",
			City:         "New York",
			State:        "NY",
			ZipCode:      "10004",
			BusinessType: model.BusinessTypeRestaurant,
		})
		require.NoError(t, err)
	}

	suggestions, err := establishmentService.Suggest("Harborside")
	require.NoError(t, err)
	assert.Len(t, suggestions, 5)
}

// countingIndex records Search calls so tests can prove short queries never
// reach the fuzzy index.
type countingIndex struct {
	searches int
}

func (c *countingIndex) Rebuild([]model.Establishment) {}

func (c *countingIndex) Search(string) []search.Match {
	c.searches++
	return nil
}

func TestEstablishmentService_Suggest_ShortQuerySkipsIndex(t *testing.T) {
	store := repository.NewStore()
	repository.SeedFixtures(store)

	index := &countingIndex{}
	establishmentRepo := repository.NewEstablishmentRepository(store, index)
	inspectionRepo := repository.NewInspectionRepository(store)
	violationRepo := repository.NewViolationRepository(store)
	certificationRepo := repository.NewCertificationRepository(store)
	safetyFeatureRepo := repository.NewSafetyFeatureRepository(store)

	establishmentService := NewEstablishmentService(
		establishmentRepo, inspectionRepo, violationRepo, certificationRepo, safetyFeatureRepo,
		index, EstablishmentServiceConfig{},
	)

	for _, query := range []string{"", "a"} {
		suggestions, err := establishmentService.Suggest(query)
		require.NoError(t, err)
		assert.Empty(t, suggestions)
	}
	assert.Equal(t, 0, index.searches)
}

func TestEstablishmentService_ExpiringCertifications(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	_, err := establishmentService.AddCertification("est-1", CreateCertificationInput{
		Type:       "Food Handler Training",
		Authority:  "NYC Department of Health",
		IssueDate:  time.Now().AddDate(-1, 0, 0),
		ExpiryDate: time.Now().AddDate(0, 0, 10),
	})
	require.NoError(t, err)

	expiring, err := establishmentService.ExpiringCertifications(30 * 24 * time.Hour)
	require.NoError(t, err)
	require.Len(t, expiring, 1)
	assert.Equal(t, "est-1", expiring[0].EstablishmentID)
}

func TestEstablishmentService_AddSafetyFeature_UnknownEstablishment(t *testing.T) {
	establishmentService, _ := setupServiceTest(t)

	created, err := establishmentService.AddSafetyFeature("no-such-id", CreateSafetyFeatureInput{
		Feature: "Sneeze Guards",
	})
	assert.ErrorIs(t, err, ErrEstablishmentNotFound)
	assert.Nil(t, created)
}
