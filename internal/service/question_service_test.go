package service

import (
	"context"
	"errors"
	"testing"

	"github.com/hdngo/sheetcoach/internal/model"
)

func TestGenerateFallbackTemplates(t *testing.T) {
	tests := []struct {
		name       string
		difficulty string
		count      int
		wantCount  int
	}{
		{"beginner exact", model.DifficultyBeginner, 3, 3},
		{"intermediate all", model.DifficultyIntermediate, 6, 6},
		{"advanced more than available", model.DifficultyAdvanced, 20, 6},
		{"single", model.DifficultyBeginner, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQuestionService(&fakeOracle{genErr: ErrOracleUnavailable})
			questions, err := svc.Generate(context.Background(), tt.difficulty, "", tt.count)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			if len(questions) != tt.wantCount {
				t.Fatalf("expected %d questions, got %d", tt.wantCount, len(questions))
			}

			seen := make(map[string]struct{})
			for _, q := range questions {
				if q.ID == "" {
					t.Error("question without ID")
				}
				if _, dup := seen[q.ID]; dup {
					t.Errorf("duplicate question ID %s", q.ID)
				}
				seen[q.ID] = struct{}{}
				if q.Prompt == "" || q.ExpectedAnswer == "" {
					t.Error("template question missing prompt or expected answer")
				}
				if q.Difficulty != tt.difficulty {
					t.Errorf("difficulty = %q, want %q", q.Difficulty, tt.difficulty)
				}
				if len(q.Keywords) == 0 || len(q.Keywords) > 5 {
					t.Errorf("derived keyword count %d out of range", len(q.Keywords))
				}
			}
		})
	}
}

func TestGenerateFallbackIgnoresCategory(t *testing.T) {
	svc := NewQuestionService(&fakeOracle{genErr: ErrOracleUnavailable})
	questions, err := svc.Generate(context.Background(), model.DifficultyBeginner, "no-such-category", 2)
	if err != nil {
		t.Fatalf("category must be informational only on the fallback path: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
}

func TestGenerateFailsClosedOnBadOracleResponse(t *testing.T) {
	svc := NewQuestionService(&fakeOracle{genErr: ErrOracleBadResponse})
	_, err := svc.Generate(context.Background(), model.DifficultyBeginner, "", 3)
	if !errors.Is(err, ErrOracleBadResponse) {
		t.Fatalf("expected ErrOracleBadResponse, got %v", err)
	}
}

func TestGenerateFailsClosedOnEmptyOracleResult(t *testing.T) {
	svc := NewQuestionService(&fakeOracle{questions: []model.Question{}})
	_, err := svc.Generate(context.Background(), model.DifficultyBeginner, "", 3)
	if !errors.Is(err, ErrOracleBadResponse) {
		t.Fatalf("expected ErrOracleBadResponse on empty result, got %v", err)
	}
}

func TestGenerateDerivesKeywordsForOracleQuestions(t *testing.T) {
	oracle := &fakeOracle{questions: []model.Question{
		{
			ID:             "q-oracle",
			Prompt:         "Explain how pivot tables summarize large datasets quickly",
			Difficulty:     model.DifficultyAdvanced,
			ExpectedAnswer: "Group rows and aggregate values.",
		},
	}}
	svc := NewQuestionService(oracle)

	questions, err := svc.Generate(context.Background(), model.DifficultyAdvanced, "", 1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(questions[0].Keywords) == 0 {
		t.Fatal("expected keywords derived from the prompt")
	}
}

func TestDeriveKeywords(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
		want   []string
	}{
		{
			"strips stopwords and short words",
			"How would you sort a table in the sheet?",
			[]string{"sort", "table", "sheet"},
		},
		{
			"caps at five",
			"calculate aggregate pivot lookup validation formatting charts",
			[]string{"calculate", "aggregate", "pivot", "lookup", "validation"},
		},
		{
			"deduplicates",
			"pivot pivot pivot table table",
			[]string{"pivot", "table"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := deriveKeywords(tt.prompt)
			if len(got) != len(tt.want) {
				t.Fatalf("deriveKeywords(%q) = %v, want %v", tt.prompt, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("keyword[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
