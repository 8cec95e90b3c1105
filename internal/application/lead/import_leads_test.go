package lead_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	app "github.com/miestilo/leadcrm/internal/application/lead"
	domain "github.com/miestilo/leadcrm/internal/domain/lead"
)

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestImportLeadsInsertsNewLead(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{}
	useCase := app.NewImportLeads(store, discardLogger())

	result, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows: []domain.RawRow{
			{"Name": "Jane", "Email": "jane@x.com", "Phone": "1234567890"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := domain.ImportResult{TotalRows: 1, InsertedCount: 1}
	if result != want {
		t.Fatalf("result = %+v, want %+v", result, want)
	}
	if store.insertedUserID != "user-1" {
		t.Fatalf("inserted user = %q, want user-1", store.insertedUserID)
	}
	if len(store.inserted) != 1 || store.inserted[0].Email != "jane@x.com" {
		t.Fatalf("unexpected inserted leads: %+v", store.inserted)
	}
}

func TestImportLeadsSkipsExistingEmail(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{
		existingEmails: map[string]struct{}{"jane@x.com": {}},
	}
	useCase := app.NewImportLeads(store, discardLogger())

	result, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows: []domain.RawRow{
			{"Name": "Jane", "Email": "jane@x.com", "Phone": "1234567890"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.InsertedCount != 0 {
		t.Fatalf("inserted = %d, want 0", result.InsertedCount)
	}
	if result.DuplicateEmailCount != 1 || result.DuplicatePhoneCount != 0 {
		t.Fatalf("duplicates = (%d email, %d phone), want (1, 0)",
			result.DuplicateEmailCount, result.DuplicatePhoneCount)
	}
	if len(store.inserted) != 0 {
		t.Fatalf("expected no inserts, got %d", len(store.inserted))
	}
}

func TestImportLeadsNormalizesPhoneBeforeDedupe(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{
		existingPhones: map[string]struct{}{"9870000000": {}},
	}
	useCase := app.NewImportLeads(store, discardLogger())

	result, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows: []domain.RawRow{
			{"Name": "Sci", "Phone": "9.87E+09"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.DuplicatePhoneCount != 1 {
		t.Fatalf("duplicate phones = %d, want 1 after normalization", result.DuplicatePhoneCount)
	}
	if result.InsertedCount != 0 {
		t.Fatalf("inserted = %d, want 0", result.InsertedCount)
	}
}

func TestImportLeadsDiscardsEmptySignalRows(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{}
	useCase := app.NewImportLeads(store, discardLogger())

	result, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows: []domain.RawRow{
			{"Name": "", "Email": "", "Phone": "", "Company": "Acme"},
			{"Name": "Jane", "Email": "jane@x.com"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if result.TotalRows != 2 {
		t.Fatalf("total rows = %d, want 2", result.TotalRows)
	}
	if result.InsertedCount != 1 {
		t.Fatalf("inserted = %d, want 1: blank row discarded before dedupe", result.InsertedCount)
	}
	if result.DuplicateEmailCount != 0 || result.DuplicatePhoneCount != 0 {
		t.Fatalf("blank row must not show up in duplicate counts: %+v", result)
	}
}

func TestImportLeadsRequiresUser(t *testing.T) {
	t.Parallel()

	useCase := app.NewImportLeads(&fakeLeadStore{}, discardLogger())

	_, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "   ",
		Rows:   []domain.RawRow{{"Name": "Jane"}},
	})
	if !errors.Is(err, app.ErrNoAuthenticatedUser) {
		t.Fatalf("expected ErrNoAuthenticatedUser, got %v", err)
	}
}

func TestImportLeadsRejectsEmptyInput(t *testing.T) {
	t.Parallel()

	useCase := app.NewImportLeads(&fakeLeadStore{}, discardLogger())

	_, err := useCase.Execute(context.Background(), app.ImportLeadsInput{UserID: "user-1"})
	if !errors.Is(err, app.ErrEmptyImport) {
		t.Fatalf("expected ErrEmptyImport, got %v", err)
	}
}

func TestImportLeadsRejectsAllBlankRows(t *testing.T) {
	t.Parallel()

	useCase := app.NewImportLeads(&fakeLeadStore{}, discardLogger())

	_, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows: []domain.RawRow{
			{"Name": "", "Email": ""},
			{"Company": "Acme"},
		},
	})
	if !errors.Is(err, app.ErrNoUsableRows) {
		t.Fatalf("expected ErrNoUsableRows, got %v", err)
	}
}

func TestImportLeadsAllDuplicatesIsNotAnError(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{
		existingEmails: map[string]struct{}{"jane@x.com": {}},
		existingPhones: map[string]struct{}{"1234567890": {}},
	}
	useCase := app.NewImportLeads(store, discardLogger())

	result, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows: []domain.RawRow{
			{"Name": "Jane", "Email": "jane@x.com"},
			{"Name": "John", "Phone": "1234567890"},
		},
	})
	if err != nil {
		t.Fatalf("expected no error when everything is a duplicate, got %v", err)
	}

	want := domain.ImportResult{TotalRows: 2, DuplicateEmailCount: 1, DuplicatePhoneCount: 1}
	if result != want {
		t.Fatalf("result = %+v, want %+v", result, want)
	}
}

func TestImportLeadsAbortsOnLookupFailure(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{lookupErr: errors.New("store unreachable")}
	useCase := app.NewImportLeads(store, discardLogger())

	_, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows:   []domain.RawRow{{"Name": "Jane", "Email": "jane@x.com"}},
	})
	if !errors.Is(err, app.ErrDuplicateLookup) {
		t.Fatalf("expected ErrDuplicateLookup, got %v", err)
	}
	if len(store.inserted) != 0 {
		t.Fatal("nothing may be inserted when the duplicate index is incomplete")
	}
}

func TestImportLeadsWrapsInsertFailure(t *testing.T) {
	t.Parallel()

	store := &fakeLeadStore{insertErr: errors.New("copy failed")}
	useCase := app.NewImportLeads(store, discardLogger())

	_, err := useCase.Execute(context.Background(), app.ImportLeadsInput{
		UserID: "user-1",
		Rows:   []domain.RawRow{{"Name": "Jane", "Email": "jane@x.com"}},
	})
	if !errors.Is(err, app.ErrInsertLeads) {
		t.Fatalf("expected ErrInsertLeads, got %v", err)
	}
}
