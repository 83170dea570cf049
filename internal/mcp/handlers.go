package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/progmatch/progmatch/internal/catalog"
	"github.com/progmatch/progmatch/internal/embed"
	"github.com/progmatch/progmatch/internal/match"
)

func (s *Server) registerHandlers() {
	s.handlers["match_programs"] = s.handleMatchPrograms
	s.handlers["list_programs"] = s.handleListPrograms
	s.handlers["get_program"] = s.handleGetProgram
	s.handlers["get_catalog_stats"] = s.handleGetCatalogStats
}

type matchProgramsParams struct {
	GradeLevel    string   `json:"grade_level"`
	Subjects      []string `json:"subjects"`
	Interests     string   `json:"interests"`
	Dislikes      string   `json:"dislikes"`
	Identity      string   `json:"identity"`
	IdentityLabel string   `json:"identity_label"`
}

func (s *Server) handleMatchPrograms(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p matchProgramsParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.GradeLevel == "" {
		return nil, fmt.Errorf("grade_level is required")
	}
	if len(p.Subjects) == 0 {
		return nil, fmt.Errorf("at least one subject is required")
	}

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	embedder := embed.NewClient(s.config.Embedder.URL(), s.config.Embedder.Timeout())
	pipeline := match.NewPipeline(match.NewLevenshteinMatcher(), embedder, match.Config{
		Threshold:     s.config.Matching.Threshold,
		TopK:          s.config.Matching.TopK,
		DislikeWeight: s.config.Matching.DislikeWeight,
	})

	result, err := pipeline.Run(ctx, entries, match.Query{
		Identity:      p.Identity,
		IdentityLabel: p.IdentityLabel,
		GradeLevel:    p.GradeLevel,
		Subjects:      p.Subjects,
		InterestText:  p.Interests,
		DislikeText:   p.Dislikes,
	})
	if err != nil {
		return nil, fmt.Errorf("matching failed: %w", err)
	}

	return result, nil
}

type listProgramsParams struct {
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
	Limit   int    `json:"limit"`
}

func (s *Server) handleListPrograms(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p listProgramsParams
	if params != nil {
		if err := json.Unmarshal(params, &p); err != nil {
			return nil, fmt.Errorf("invalid parameters: %w", err)
		}
	}

	entries, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	grade := catalog.CleanToken(p.Grade)
	subject := catalog.CleanToken(p.Subject)

	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}

	var filtered []catalog.Entry
	for i := range entries {
		if grade != "" && !entries[i].HasGrade(grade) {
			continue
		}
		if subject != "" && !entries[i].HasAnySubject([]string{subject}) {
			continue
		}
		filtered = append(filtered, entries[i])
		if len(filtered) >= limit {
			break
		}
	}

	return filtered, nil
}

type getProgramParams struct {
	Identifier string `json:"identifier"`
}

func (s *Server) handleGetProgram(ctx context.Context, params json.RawMessage) (interface{}, error) {
	var p getProgramParams
	if err := json.Unmarshal(params, &p); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	if p.Identifier == "" {
		return nil, fmt.Errorf("identifier is required")
	}

	return s.store.Get(ctx, p.Identifier)
}

func (s *Server) handleGetCatalogStats(ctx context.Context, params json.RawMessage) (interface{}, error) {
	return s.store.GetStats(ctx)
}

// handleReadResource renders plain-text resource views of the catalog.
func (s *Server) handleReadResource(ctx context.Context, uri string) (string, error) {
	switch uri {
	case "progmatch://catalog/summary":
		return s.renderCatalogSummary(ctx)
	case "progmatch://catalog/subjects":
		return s.renderTokenList(ctx, func(stats *catalog.Stats) map[string]int { return stats.BySubject })
	case "progmatch://catalog/grades":
		return s.renderTokenList(ctx, func(stats *catalog.Stats) map[string]int { return stats.ByGrade })
	default:
		return "", fmt.Errorf("unknown resource: %s", uri)
	}
}

func (s *Server) renderCatalogSummary(ctx context.Context) (string, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Program catalog: %d program(s), %d with identity restrictions.\n", stats.TotalPrograms, stats.Restricted)
	fmt.Fprintf(&b, "Grade levels covered: %d. Subjects covered: %d.\n", len(stats.ByGrade), len(stats.BySubject))
	return b.String(), nil
}

func (s *Server) renderTokenList(ctx context.Context, pick func(*catalog.Stats) map[string]int) (string, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for token, count := range pick(stats) {
		fmt.Fprintf(&b, "%s: %d program(s)\n", token, count)
	}
	return b.String(), nil
}
