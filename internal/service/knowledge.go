package service

import (
	"context"
	"net/http"
	"strings"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

// GetKnowledgeSources lists knowledge articles, optionally filtered by a
// substring over title/content/excerpt and an exact category.
func (s *DataService) GetKnowledgeSources(ctx context.Context, p model.KnowledgeParams) model.Response[[]model.KnowledgeSource] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[[]model.KnowledgeSource](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("get_knowledge_sources") {
		return model.Fail[[]model.KnowledgeSource](http.StatusInternalServerError, "Failed to fetch knowledge sources")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := make([]model.KnowledgeSource, 0, len(s.knowledge))
	needle := strings.ToLower(p.Search)

	for _, src := range s.knowledge {
		if p.Search != "" &&
			!strings.Contains(strings.ToLower(src.Title), needle) &&
			!strings.Contains(strings.ToLower(src.Content), needle) &&
			!strings.Contains(strings.ToLower(src.Excerpt), needle) {
			continue
		}
		if p.Category != "" && src.Category != p.Category {
			continue
		}
		filtered = append(filtered, src)
	}

	return model.OK(http.StatusOK, filtered)
}

// GetRelevantKnowledgeSources does naive keyword relevance: the query is
// split into lowercase words and any source whose title+content contains
// ANY of them as a substring is kept, capped at 5, in collection order.
// There is no ranking or scoring.
func (s *DataService) GetRelevantKnowledgeSources(ctx context.Context, query string) model.Response[[]model.KnowledgeSource] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[[]model.KnowledgeSource](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("get_relevant_knowledge_sources") {
		return model.Fail[[]model.KnowledgeSource](http.StatusInternalServerError, "Failed to fetch relevant knowledge sources")
	}

	keywords := strings.Fields(strings.ToLower(query))

	s.mu.RLock()
	defer s.mu.RUnlock()

	relevant := make([]model.KnowledgeSource, 0, 5)
	for _, src := range s.knowledge {
		if len(relevant) == 5 {
			break
		}
		haystack := strings.ToLower(src.Title + " " + src.Content)
		for _, kw := range keywords {
			if strings.Contains(haystack, kw) {
				relevant = append(relevant, src)
				break
			}
		}
	}

	return model.OK(http.StatusOK, relevant)
}
