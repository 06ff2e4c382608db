package sagas

import (
	"context"

	"go.uber.org/zap"

	"mindflow-backend/application/services"
	"mindflow-backend/domain/core/entities"
)

// SaveNoteResult is the combined outcome of a save-note flow.
type SaveNoteResult struct {
	Document *entities.Document       `json:"document"`
	Analysis *services.AnalysisOutput `json:"analysis"`
	Refined  *services.RefineOutput   `json:"refined"`
}

// SaveNoteSaga analyzes raw text, refines it, and persists the resulting
// document in one flow. If any later step fails, the created document is
// removed again so an analysis failure never leaves partial state behind.
type SaveNoteSaga struct {
	analyzer *services.AnalyzerService
	store    *services.StoreService
	logger   *zap.Logger
}

// NewSaveNoteSaga creates the saga factory.
func NewSaveNoteSaga(analyzer *services.AnalyzerService, store *services.StoreService, logger *zap.Logger) *SaveNoteSaga {
	return &SaveNoteSaga{analyzer: analyzer, store: store, logger: logger}
}

// Run executes analyze, refine, and save for one note.
func (s *SaveNoteSaga) Run(ctx context.Context, content, title string) (*SaveNoteResult, error) {
	result := &SaveNoteResult{}

	saga := New("save-note", s.logger).
		AddStep(Step{
			Name: "analyze",
			Execute: func(ctx context.Context) error {
				output, err := s.analyzer.Analyze(ctx, content)
				if err != nil {
					return err
				}
				result.Analysis = output
				return nil
			},
		}).
		AddStep(Step{
			Name: "refine",
			Execute: func(ctx context.Context) error {
				output, err := s.analyzer.Refine(ctx, content)
				if err != nil {
					return err
				}
				result.Refined = output
				return nil
			},
		}).
		AddStep(Step{
			Name: "save-document",
			Execute: func(ctx context.Context) error {
				doc, err := s.store.CreateDocument(ctx, content, title, result.Analysis.Results, result.Analysis.Tags)
				if err != nil {
					return err
				}
				result.Document = doc
				return nil
			},
			Compensate: func(ctx context.Context) error {
				if result.Document == nil {
					return nil
				}
				return s.store.DeleteDocument(ctx, result.Document.ID)
			},
		}).
		AddStep(Step{
			Name: "attach-refinement",
			Execute: func(ctx context.Context) error {
				doc, err := s.store.UpdateDocument(ctx, result.Document.ID, entities.DocumentPatch{
					RefinedContent: &result.Refined.RefinedContent,
				})
				if err != nil {
					return err
				}
				result.Document = doc
				return nil
			},
		})

	if err := saga.Execute(ctx); err != nil {
		return nil, err
	}
	return result, nil
}
