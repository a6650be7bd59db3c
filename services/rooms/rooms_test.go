package rooms

import (
	"testing"
	"time"

	"veranda/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockRoomRepo struct {
	mock.Mock
}

func (m *mockRoomRepo) Create(room *models.Room) error { return m.Called(room).Error(0) }
func (m *mockRoomRepo) Update(room *models.Room) error { return m.Called(room).Error(0) }
func (m *mockRoomRepo) Delete(id string) error         { return m.Called(id).Error(0) }

func (m *mockRoomRepo) GetByID(id string) (*models.Room, error) {
	args := m.Called(id)
	if room := args.Get(0); room != nil {
		return room.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) GetBySlug(slug string) (*models.Room, error) {
	args := m.Called(slug)
	if room := args.Get(0); room != nil {
		return room.(*models.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRoomRepo) GetAll() ([]models.Room, error) {
	args := m.Called()
	return args.Get(0).([]models.Room), args.Error(1)
}

func (m *mockRoomRepo) AddPricingRule(roomID string, rule models.PricingRule) error {
	return m.Called(roomID, rule).Error(0)
}

func (m *mockRoomRepo) UpdatePricingRule(roomID string, rule models.PricingRule) error {
	return m.Called(roomID, rule).Error(0)
}

func (m *mockRoomRepo) RemovePricingRule(roomID, ruleID string) error {
	return m.Called(roomID, ruleID).Error(0)
}

func newTestService() (*DefaultRoomService, *mockRoomRepo) {
	repo := new(mockRoomRepo)
	return &DefaultRoomService{Repo: repo, Logger: zap.NewNop()}, repo
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validRoom() *models.Room {
	return &models.Room{
		Name:      "Seaside Deluxe",
		Slug:      "seaside-deluxe",
		BasePrice: 2000,
		Inventory: 5,
		Photos:    []string{"https://cdn.example.com/seaside.jpg"},
	}
}

func TestCreateRoomAssignsIDs(t *testing.T) {
	svc, repo := newTestService()
	repo.On("Create", mock.Anything).Return(nil)

	room := validRoom()
	room.PricingRules = []models.PricingRule{{
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 10),
		Price:     2500,
		Enabled:   true,
	}}

	created, err := svc.CreateRoom(room)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.PricingRules[0].ID)
}

func TestCreateRoomValidation(t *testing.T) {
	svc, _ := newTestService()

	cases := []struct {
		field  string
		mutate func(r *models.Room)
	}{
		{"name", func(r *models.Room) { r.Name = "" }},
		{"slug", func(r *models.Room) { r.Slug = "" }},
		{"photos", func(r *models.Room) { r.Photos = nil }},
		{"basePrice", func(r *models.Room) { r.BasePrice = -1 }},
		{"inventory", func(r *models.Room) { r.Inventory = -1 }},
	}
	for _, tc := range cases {
		room := validRoom()
		tc.mutate(room)

		_, err := svc.CreateRoom(room)
		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr, tc.field)
		assert.Equal(t, tc.field, validationErr.Field)
	}
}

func TestCreateRoomRejectsOverlappingRules(t *testing.T) {
	svc, _ := newTestService()

	room := validRoom()
	room.PricingRules = []models.PricingRule{
		{StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 10), Price: 2500, Enabled: true},
		{StartDate: date(2025, 6, 5), EndDate: date(2025, 6, 15), Price: 2800, Enabled: true},
	}

	_, err := svc.CreateRoom(room)
	assert.ErrorIs(t, err, ErrRuleOverlap)
}

func TestCreateRoomAllowsDisabledOverlap(t *testing.T) {
	svc, repo := newTestService()
	repo.On("Create", mock.Anything).Return(nil)

	room := validRoom()
	room.PricingRules = []models.PricingRule{
		{StartDate: date(2025, 6, 1), EndDate: date(2025, 6, 10), Price: 2500, Enabled: true},
		{StartDate: date(2025, 6, 5), EndDate: date(2025, 6, 15), Price: 2800, Enabled: false},
	}

	_, err := svc.CreateRoom(room)
	assert.NoError(t, err)
}

func TestAddPricingRuleRejectsOverlap(t *testing.T) {
	svc, repo := newTestService()
	existing := validRoom()
	existing.ID = "room-1"
	existing.PricingRules = []models.PricingRule{{
		ID:        "rule-1",
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 10),
		Price:     2500,
		Enabled:   true,
	}}
	repo.On("GetByID", "room-1").Return(existing, nil)

	_, err := svc.AddPricingRule("room-1", models.PricingRule{
		StartDate: date(2025, 6, 9),
		EndDate:   date(2025, 6, 20),
		Price:     3000,
		Enabled:   true,
	})

	assert.ErrorIs(t, err, ErrRuleOverlap)
	repo.AssertNotCalled(t, "AddPricingRule", mock.Anything, mock.Anything)
}

func TestAddPricingRuleAdjacentRangesAllowed(t *testing.T) {
	svc, repo := newTestService()
	existing := validRoom()
	existing.ID = "room-1"
	existing.PricingRules = []models.PricingRule{{
		ID:        "rule-1",
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 10),
		Price:     2500,
		Enabled:   true,
	}}
	repo.On("GetByID", "room-1").Return(existing, nil)
	repo.On("AddPricingRule", "room-1", mock.Anything).Return(nil)

	rule, err := svc.AddPricingRule("room-1", models.PricingRule{
		StartDate: date(2025, 6, 10),
		EndDate:   date(2025, 6, 20),
		Price:     3000,
		Enabled:   true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, rule.ID)
}

func TestAddPricingRuleInvalidRange(t *testing.T) {
	svc, repo := newTestService()
	existing := validRoom()
	existing.ID = "room-1"
	repo.On("GetByID", "room-1").Return(existing, nil)

	_, err := svc.AddPricingRule("room-1", models.PricingRule{
		StartDate: date(2025, 6, 10),
		EndDate:   date(2025, 6, 1),
		Price:     3000,
		Enabled:   true,
	})

	assert.ErrorIs(t, err, ErrInvalidRuleRange)
}

func TestUpdatePricingRuleIgnoresOwnInterval(t *testing.T) {
	svc, repo := newTestService()
	existing := validRoom()
	existing.ID = "room-1"
	existing.PricingRules = []models.PricingRule{{
		ID:        "rule-1",
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 10),
		Price:     2500,
		Enabled:   true,
	}}
	repo.On("GetByID", "room-1").Return(existing, nil)
	repo.On("UpdatePricingRule", "room-1", mock.Anything).Return(nil)

	// Shifting a rule within its own former interval must not count as
	// overlapping itself.
	err := svc.UpdatePricingRule("room-1", models.PricingRule{
		ID:        "rule-1",
		StartDate: date(2025, 6, 2),
		EndDate:   date(2025, 6, 8),
		Price:     2600,
		Enabled:   true,
	})

	assert.NoError(t, err)
}

func TestRateForStayUsesRuleOverride(t *testing.T) {
	svc, repo := newTestService()
	room := validRoom()
	room.ID = "room-1"
	room.PricingRules = []models.PricingRule{{
		ID:        "rule-1",
		StartDate: date(2025, 6, 1),
		EndDate:   date(2025, 6, 10),
		Price:     2500,
		Inventory: 3,
		Enabled:   true,
	}}
	repo.On("GetByID", "room-1").Return(room, nil)

	in := date(2025, 6, 2)
	out := date(2025, 6, 5)
	rate, err := svc.RateForStay("room-1", &in, &out)
	require.NoError(t, err)
	assert.Equal(t, 2500.0, rate.Price)
	assert.True(t, rate.IsOverride)

	rate, err = svc.RateForStay("room-1", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, rate.Price)
	assert.False(t, rate.IsOverride)
}
