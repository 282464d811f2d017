package catalog

import (
	"sort"

	"github.com/DRSN-tech/frag-avenue/internal/domain"
)

// DefaultRelatedLimit — сколько похожих ароматов показывает страница товара
const DefaultRelatedLimit = 6

const (
	sameCategoryScore = 5
	sameBrandScore    = 3
	sharedNoteScore   = 2
)

// ScoredProduct — продукт с рассчитанной релевантностью
type ScoredProduct struct {
	Product domain.Product
	Score   int
}

// RelatedProducts ранжирует продукты каталога по близости к focal и возвращает первые limit.
// При равном счёте сохраняется порядок каталога.
func RelatedProducts(products []domain.Product, focal domain.Product, limit int) []domain.Product {
	scored := ScoreRelated(products, focal)
	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}

	res := make([]domain.Product, len(scored))
	for i, s := range scored {
		res[i] = s.Product
	}

	return res
}

// ScoreRelated считает релевантность всех продуктов, кроме focal, и сортирует по убыванию.
func ScoreRelated(products []domain.Product, focal domain.Product) []ScoredProduct {
	focalNotes := make(map[string]struct{}, len(focal.Notes))
	for _, n := range focal.Notes {
		focalNotes[n] = struct{}{}
	}

	scored := make([]ScoredProduct, 0, len(products))
	for _, p := range products {
		if p.ID == focal.ID {
			continue
		}
		scored = append(scored, ScoredProduct{Product: p, Score: relevance(p, focal, focalNotes)})
	}

	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score > scored[j].Score })

	return scored
}

func relevance(p, focal domain.Product, focalNotes map[string]struct{}) int {
	score := 0
	if p.Category == focal.Category {
		score += sameCategoryScore
	}
	if p.Brand == focal.Brand {
		score += sameBrandScore
	}
	for _, n := range p.Notes {
		if _, ok := focalNotes[n]; ok {
			score += sharedNoteScore
		}
	}

	return score
}
