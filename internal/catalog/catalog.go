// Package catalog holds the immutable domain tables: the learning-science
// principle catalog, the follow-up and upfront question banks, and the
// missing-flow recommendation table. Everything here is built at init and
// read-only afterwards.
package catalog

import "learnlens/internal/model"

var principleIndex = buildIndex()

func buildIndex() map[string]*model.Principle {
	idx := make(map[string]*model.Principle, len(principles))
	for i := range principles {
		idx[principles[i].ID] = &principles[i]
	}
	return idx
}

// Principles returns the catalog in canonical order. Callers must not
// modify the returned slice.
func Principles() []model.Principle {
	return principles
}

// PrincipleByID looks a principle up by its stable id.
func PrincipleByID(id string) (*model.Principle, bool) {
	p, ok := principleIndex[id]
	return p, ok
}

// PrincipleIDs returns all principle ids in canonical order.
func PrincipleIDs() []string {
	ids := make([]string, len(principles))
	for i := range principles {
		ids[i] = principles[i].ID
	}
	return ids
}
