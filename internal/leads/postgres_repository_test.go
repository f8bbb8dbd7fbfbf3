package leads

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestPostgresCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO leads").
		WithArgs(pgxmock.AnyArg(), "Олена", "+380671234567", (*string)(nil), "Кухня на 12 кв.м, сірий фасад", "phone", (*string)(nil), (*string)(nil), true, false, false).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(now))

	lead, err := repo.Create(context.Background(), &CreateLeadRecord{
		Name:             "Олена",
		Phone:            "+380671234567",
		Message:          "Кухня на 12 кв.м, сірий фасад",
		PreferredContact: ContactPhone,
		CRMSynced:        true,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if lead.ID == "" {
		t.Error("expected generated id")
	}
	if !lead.CreatedAt.Equal(now) {
		t.Errorf("expected created_at from database, got %s", lead.CreatedAt)
	}
	if lead.Email != nil || lead.Budget != nil || lead.FileURL != nil {
		t.Error("optional empty fields should persist as NULL")
	}
	if !lead.CRMSynced || lead.ChatSynced || lead.WebhookSynced {
		t.Errorf("sync flags not preserved: %+v", lead)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateRejectsEmptyRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	if _, err := repo.Create(context.Background(), &CreateLeadRecord{}); err == nil {
		t.Fatal("expected validation error, got nil")
	}
	// No SQL may run for an invalid record.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected SQL executed: %v", err)
	}
}

func TestPostgresGetByIDNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	id := uuid.NewString()
	mock.ExpectQuery("SELECT id, name, phone").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(leadColumns()))

	if _, err := repo.GetByID(context.Background(), id); err != ErrLeadNotFound {
		t.Fatalf("expected ErrLeadNotFound, got %v", err)
	}
}

func TestPostgresList(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create pgx mock: %v", err)
	}
	defer mock.Close()

	repo := newPostgresRepositoryWithQuerier(mock)

	now := time.Now().UTC()
	fileURL := "https://cdn.example/leads/a.png"
	rows := pgxmock.NewRows(leadColumns()).
		AddRow(uuid.NewString(), "Іван", "+48501234567", nil, "Zabudowa kuchni w bloku", "telegram", nil, &fileURL, true, true, false, now)

	mock.ExpectQuery("SELECT id, name, phone").
		WithArgs(50, 0).
		WillReturnRows(rows)

	leads, err := repo.List(context.Background(), 0, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(leads) != 1 {
		t.Fatalf("expected 1 lead, got %d", len(leads))
	}
	if leads[0].FileURL == nil || *leads[0].FileURL != fileURL {
		t.Errorf("file url not round-tripped: %v", leads[0].FileURL)
	}
}

func leadColumns() []string {
	return []string{"id", "name", "phone", "email", "message", "preferred_contact", "budget", "file_url", "crm_synced", "chat_synced", "webhook_synced", "created_at"}
}
