package searcher

import "github.com/cxxxr/wordgram/lib/primitive"

func uniqueDocIds(results []*Result) []primitive.DocumentId {
	seen := make(map[primitive.DocumentId]bool, len(results))
	ids := make([]primitive.DocumentId, 0)
	for _, result := range results {
		if !seen[result.doc.Id] {
			seen[result.doc.Id] = true
			ids = append(ids, result.doc.Id)
		}
	}
	return ids
}
