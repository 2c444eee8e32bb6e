package search

import (
	"sort"

	"github.com/altadigital/driveseek/internal/domain/search/result"
)

// rank orders scored files by score descending, breaking ties by
// modifiedTime descending. Stable, so equal files keep discovery order.
func rank(files []result.ScoredFile) {
	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Score() != files[j].Score() {
			return files[i].Score() > files[j].Score()
		}
		return files[i].File().ModifiedTime().After(files[j].File().ModifiedTime())
	})
}
