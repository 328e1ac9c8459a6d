package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/SeakMengs/PDFStudio/internal/model"
	"gorm.io/gorm"
)

func TestDocumentCreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	doc := &model.Document{
		FileName:         "abc_test.pdf",
		OriginalFilename: "test.pdf",
		FileSize:         1024,
		FilePath:         "/uploads/abc_test.pdf",
		TotalPages:       3,
	}
	if _, err := repo.Document.Create(ctx, nil, doc); err != nil {
		t.Fatalf("failed to create document: %v", err)
	}

	if doc.ID == "" {
		t.Fatal("expected a generated id")
	}
	if doc.CurrentPage != 1 {
		t.Errorf("expected current page default 1, got %d", doc.CurrentPage)
	}

	got, err := repo.Document.GetById(ctx, nil, doc.ID)
	if err != nil {
		t.Fatalf("failed to get document: %v", err)
	}
	if got.OriginalFilename != "test.pdf" || got.TotalPages != 3 {
		t.Errorf("unexpected document: %+v", got)
	}
}

func TestDocumentGetByIdNotFound(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Document.GetById(context.Background(), nil, "missing")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestDocumentTotalPagesNeverBelowOne(t *testing.T) {
	repo := newTestRepository(t)

	doc := &model.Document{
		FileName:         "x_broken.pdf",
		OriginalFilename: "broken.pdf",
		FilePath:         "/uploads/x_broken.pdf",
	}
	if _, err := repo.Document.Create(context.Background(), nil, doc); err != nil {
		t.Fatalf("failed to create document: %v", err)
	}

	if doc.TotalPages < 1 {
		t.Errorf("expected total pages >= 1, got %d", doc.TotalPages)
	}
}

func TestDocumentDeleteCascade(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	doc := &model.Document{
		FileName:         "abc_test.pdf",
		OriginalFilename: "test.pdf",
		FilePath:         "/uploads/abc_test.pdf",
	}
	if _, err := repo.Document.Create(ctx, nil, doc); err != nil {
		t.Fatalf("failed to create document: %v", err)
	}

	for i := 0; i < 3; i++ {
		annotation := &model.Annotation{PDFID: doc.ID, Type: "highlight", Page: 1}
		if _, err := repo.Annotation.Create(ctx, nil, annotation); err != nil {
			t.Fatalf("failed to create annotation: %v", err)
		}
	}

	project := &model.Project{Name: "review", PDFID: doc.ID}
	if _, err := repo.Project.Create(ctx, nil, project); err != nil {
		t.Fatalf("failed to create project: %v", err)
	}

	// A signature and an annotation of an unrelated document must survive.
	signature := &model.Signature{Name: "sig", ImageData: "aGVsbG8=", FileType: "png"}
	if _, err := repo.Signature.Create(ctx, nil, signature); err != nil {
		t.Fatalf("failed to create signature: %v", err)
	}
	other := &model.Annotation{PDFID: "other-doc", Type: "text", Page: 1}
	if _, err := repo.Annotation.Create(ctx, nil, other); err != nil {
		t.Fatalf("failed to create annotation: %v", err)
	}

	deleted, err := repo.Document.DeleteCascade(ctx, nil, doc.ID)
	if err != nil {
		t.Fatalf("failed to delete document: %v", err)
	}
	if deleted.FileName != doc.FileName {
		t.Errorf("expected deleted document %s, got %s", doc.FileName, deleted.FileName)
	}

	if _, err := repo.Document.GetById(ctx, nil, doc.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected document to be gone, got %v", err)
	}

	annotations, err := repo.Annotation.GetByPdfId(ctx, nil, doc.ID)
	if err != nil {
		t.Fatalf("failed to list annotations: %v", err)
	}
	if len(annotations) != 0 {
		t.Errorf("expected cascade to remove annotations, %d left", len(annotations))
	}

	if _, err := repo.Project.GetById(ctx, nil, project.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected cascade to remove project, got %v", err)
	}

	signatures, err := repo.Signature.GetList(ctx, nil, "")
	if err != nil {
		t.Fatalf("failed to list signatures: %v", err)
	}
	if len(signatures) != 1 {
		t.Errorf("expected signatures to survive the cascade, got %d", len(signatures))
	}

	survivors, err := repo.Annotation.GetByPdfId(ctx, nil, "other-doc")
	if err != nil {
		t.Fatalf("failed to list annotations: %v", err)
	}
	if len(survivors) != 1 {
		t.Errorf("expected unrelated annotation to survive, got %d", len(survivors))
	}
}

func TestDocumentDeleteCascadeNotFound(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	// Seed an annotation pointing at the missing id. Aborting before the
	// cascade means it must survive the failed delete.
	orphan := &model.Annotation{PDFID: "missing", Type: "text", Page: 1}
	if _, err := repo.Annotation.Create(ctx, nil, orphan); err != nil {
		t.Fatalf("failed to create annotation: %v", err)
	}

	if _, err := repo.Document.DeleteCascade(ctx, nil, "missing"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	annotations, err := repo.Annotation.GetByPdfId(ctx, nil, "missing")
	if err != nil {
		t.Fatalf("failed to list annotations: %v", err)
	}
	if len(annotations) != 1 {
		t.Errorf("expected annotation untouched after aborted delete, got %d", len(annotations))
	}
}
