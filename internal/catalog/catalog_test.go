package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/alzcare/screening-service/internal/models"
	"github.com/alzcare/screening-service/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCustomItemStore is a mock implementation of CustomItemStore
type MockCustomItemStore struct {
	mock.Mock
}

func (m *MockCustomItemStore) FindBySubject(ctx context.Context, subjectID string) ([]models.ItemDefinition, error) {
	args := m.Called(ctx, subjectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ItemDefinition), args.Error(1)
}

type staticDefs []models.ItemDefinition

func (s staticDefs) Definitions() ([]models.ItemDefinition, error) {
	return []models.ItemDefinition(s), nil
}

type failingStatic struct{}

func (failingStatic) Definitions() ([]models.ItemDefinition, error) {
	return nil, errors.New("corrupt catalog")
}

func intPtr(n int) *int { return &n }

func strPtr(s string) *string { return &s }

func testLogger() utils.Logger {
	return utils.NewDevelopmentLogger()
}

func TestAssemble_AppliesDefinitionDefaults(t *testing.T) {
	static := staticDefs{
		{Title: "First"},
		{ID: "custom-id", Section: "Orientation", Title: "Second", Type: "Recall", Score: intPtr(3)},
		{Title: "Third", Score: intPtr(0)},
	}
	cat := New(static, nil, testLogger())

	items, err := cat.Assemble(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "q0", items[0].ID)
	assert.Equal(t, models.DefaultSection, items[0].Section)
	assert.Equal(t, models.ItemText, items[0].Type)
	assert.Equal(t, 1, items[0].Score)

	assert.Equal(t, "custom-id", items[1].ID)
	assert.Equal(t, "Orientation", items[1].Section)
	assert.Equal(t, models.ItemRecall, items[1].Type)
	assert.Equal(t, 3, items[1].Score)

	// A declared score of zero falls back to one.
	assert.Equal(t, "q2", items[2].ID)
	assert.Equal(t, 1, items[2].Score)
}

func TestAssemble_EmptySubjectSkipsCustomFetch(t *testing.T) {
	store := new(MockCustomItemStore)
	cat := New(staticDefs{{Title: "Only"}}, store, testLogger())

	items, err := cat.Assemble(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
	store.AssertNotCalled(t, "FindBySubject")
}

func TestAssemble_MergesCustomItemsAfterStatic(t *testing.T) {
	store := new(MockCustomItemStore)
	store.On("FindBySubject", mock.Anything, "subject-1").Return([]models.ItemDefinition{
		{Title: "What is your dog's name?", ExpectedAnswer: strPtr("rex")},
		{Section: "Memories", Title: "Where did you grow up?"},
	}, nil)

	cat := New(staticDefs{{Title: "Static one"}, {Title: "Static two"}}, store, testLogger())

	items, err := cat.Assemble(context.Background(), "subject-1")
	require.NoError(t, err)
	require.Len(t, items, 4)

	// Custom items always land in the Custom section, whatever the
	// document declared, and continue the positional id sequence.
	assert.Equal(t, models.CustomSection, items[2].Section)
	assert.Equal(t, models.CustomSection, items[3].Section)
	assert.Equal(t, "q2", items[2].ID)
	assert.Equal(t, "q3", items[3].ID)
	assert.Equal(t, "What is your dog's name?", items[2].Title)
	store.AssertExpectations(t)
}

func TestAssemble_CustomFetchFailureDegradesToStaticList(t *testing.T) {
	store := new(MockCustomItemStore)
	store.On("FindBySubject", mock.Anything, "subject-1").Return(nil, errors.New("connection refused"))

	cat := New(staticDefs{{Title: "Static one"}}, store, testLogger())

	items, err := cat.Assemble(context.Background(), "subject-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCustomFetch)

	// The static list comes back alongside the error, never instead of it.
	require.Len(t, items, 1)
	assert.Equal(t, "Static one", items[0].Title)
}

func TestAssemble_FailingStaticSourceYieldsEmptyList(t *testing.T) {
	cat := New(failingStatic{}, nil, testLogger())
	items, err := cat.Assemble(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestFallbackItem(t *testing.T) {
	item := FallbackItem()
	assert.Equal(t, "q1", item.ID)
	assert.Equal(t, models.ItemText, item.Type)
	assert.Equal(t, 1, item.Score)
	assert.NotEmpty(t, item.Title)
}

func TestMapItemType(t *testing.T) {
	assert.Equal(t, models.ItemChoice, models.MapItemType("multiple_choice"))
	assert.Equal(t, models.ItemDraw, models.MapItemType(" Drawing "))
	assert.Equal(t, models.ItemRecall, models.MapItemType("RECALL"))
	assert.Equal(t, models.ItemImage, models.MapItemType("image"))
	assert.Equal(t, models.ItemText, models.MapItemType("text"))
	assert.Equal(t, models.ItemText, models.MapItemType("essay"))
	assert.Equal(t, models.ItemText, models.MapItemType(""))
}

func TestEmbeddedCatalog_ParsesAndSumsToThirty(t *testing.T) {
	source, err := NewFileSource("")
	require.NoError(t, err)

	defs, err := source.Definitions()
	require.NoError(t, err)
	require.NotEmpty(t, defs)

	rawMax := 0
	for i, def := range defs {
		score := 1
		if def.Score != nil && *def.Score > 0 {
			score = *def.Score
		}
		rawMax += score
		assert.NotEmpty(t, def.Title, "definition %d has no question text", i)
	}
	assert.Equal(t, 30, rawMax)
}

func TestJSONSource_AcceptsQuestionsObjectShape(t *testing.T) {
	source := NewJSONSource([]byte(`{"questions":[{"question":"One","type":"drawing"}]}`))
	defs, err := source.Definitions()
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, "One", defs[0].Title)
	assert.Equal(t, "drawing", defs[0].Type)
}

func TestJSONSource_RejectsMalformedDocument(t *testing.T) {
	source := NewJSONSource([]byte(`{not json`))
	_, err := source.Definitions()
	assert.Error(t, err)
}
