package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/senseiarena/arena/internal/domain"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestDefaultCatalogCoversEveryCategory(t *testing.T) {
	quests := Default()
	for _, c := range domain.AllCategories {
		assert.NotEmpty(t, ByCategory(quests, c), "category %s has no quests", c)
	}
}

func TestFind(t *testing.T) {
	quests := Default()

	q := Find(quests, "beginner_first_stake")
	require.NotNil(t, q)
	assert.Equal(t, domain.CategoryBeginner, q.Category)

	assert.Nil(t, Find(quests, "no_such_quest"))
}

func TestValidateRejectsDuplicateIDs(t *testing.T) {
	quests := []domain.QuestDefinition{
		{ID: "dup", Category: domain.CategoryBeginner,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount}},
		{ID: "dup", Category: domain.CategoryBeginner,
			Requirement: domain.Requirement{Kind: domain.ReqActionCount}},
	}
	assert.Error(t, Validate(quests))
}

func TestValidateRejectsUnknownCategory(t *testing.T) {
	quests := []domain.QuestDefinition{
		{ID: "q", Category: "grandmaster",
			Requirement: domain.Requirement{Kind: domain.ReqActionCount}},
	}
	assert.Error(t, Validate(quests))
}

func TestValidateRejectsUnknownRequirementKind(t *testing.T) {
	quests := []domain.QuestDefinition{
		{ID: "q", Category: domain.CategoryBeginner,
			Requirement: domain.Requirement{Kind: "mystery"}},
	}
	assert.Error(t, Validate(quests))
}

func TestValidateRejectsDuplicateCapstones(t *testing.T) {
	quests := []domain.QuestDefinition{
		{ID: "cap1", Category: domain.CategorySensei,
			Requirement: domain.Requirement{Kind: domain.ReqCategoryComplete, Category: domain.CategorySenior}},
		{ID: "cap2", Category: domain.CategorySensei,
			Requirement: domain.Requirement{Kind: domain.ReqCategoryComplete, Category: domain.CategorySenior}},
	}
	assert.Error(t, Validate(quests))
}
