package quest

import "github.com/senseiarena/arena/internal/domain"

// recomputeUnlocks walks the category chain in order and unlocks each
// category whose predecessor is fully complete. Idempotent and monotonic:
// an unlocked category is never re-locked. Returns categories that
// transitioned on this pass.
func recomputeUnlocks(quests []domain.QuestDefinition, p *domain.UserProgress) []domain.Category {
	var newly []domain.Category
	for i := 0; i+1 < len(domain.CategoryChain); i++ {
		current := domain.CategoryChain[i]
		next := domain.CategoryChain[i+1]

		if p.Categories[next].Unlocked {
			continue
		}
		if categoryComplete(quests, p, current) {
			p.Categories[next].Unlocked = true
			newly = append(newly, next)
		}
	}
	return newly
}

// categoryComplete reports whether every quest in the category is done.
func categoryComplete(quests []domain.QuestDefinition, p *domain.UserProgress, c domain.Category) bool {
	for _, q := range quests {
		if q.Category == c && !p.HasCompleted(q.ID) {
			return false
		}
	}
	return true
}

// unlockedCategories lists currently accessible categories in fixed order.
func unlockedCategories(p *domain.UserProgress) []domain.Category {
	var out []domain.Category
	for _, c := range domain.AllCategories {
		if p.IsUnlocked(c) {
			out = append(out, c)
		}
	}
	return out
}
