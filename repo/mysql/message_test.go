package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"

	"github.com/Xushengqwer/trade_site/models/entities"
)

func seedMessage(t *testing.T, repo MessageRepository, name, company string, status entities.MessageStatus) *entities.Message {
	t.Helper()
	msg := &entities.Message{
		Name:    name,
		Email:   name + "@example.com",
		Company: company,
		Subject: "Fiyat teklifi",
		Message: "Merhaba, fiyat bilgisi alabilir miyim?",
		Status:  status,
	}
	if err := repo.Create(context.Background(), msg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return msg
}

func TestMessageDefaultsToNew(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db, nopLogger())
	ctx := context.Background()

	msg := &entities.Message{Name: "Ayşe", Email: "ayse@example.com", Message: "Katalog rica ederim"}
	if err := repo.Create(ctx, msg); err != nil {
		t.Fatalf("Create: %v", err)
	}
	got, err := repo.GetByID(ctx, msg.ID)
	if err != nil || got == nil {
		t.Fatalf("GetByID: %v, %v", got, err)
	}
	if got.Status != entities.MessageStatusNew {
		t.Errorf("status = %q, want %q", got.Status, entities.MessageStatusNew)
	}
	if got, err := repo.GetByID(ctx, 404); got != nil || err != nil {
		t.Errorf("missing message = %v, %v", got, err)
	}
}

func TestMessageListAndCounts(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db, nopLogger())
	ctx := context.Background()

	seedMessage(t, repo, "mehmet", "Anadolu Boru", entities.MessageStatusNew)
	seedMessage(t, repo, "john", "Acme Ltd", entities.MessageStatusNew)
	read := seedMessage(t, repo, "lena", "Acme GmbH", entities.MessageStatusRead)

	list, total, err := repo.List(ctx, MessageFilter{Search: "acme", Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("search returned %d/%d, want 2", len(list), total)
	}

	status := entities.MessageStatusRead
	list, total, _ = repo.List(ctx, MessageFilter{Status: &status, Limit: 10})
	if total != 1 || list[0].ID != read.ID {
		t.Errorf("status filter returned %d", total)
	}

	unread, err := repo.CountUnread(ctx)
	if err != nil || unread != 2 {
		t.Errorf("CountUnread = %d, %v; want 2", unread, err)
	}
	counts, err := repo.CountByStatus(ctx)
	if err != nil {
		t.Fatalf("CountByStatus: %v", err)
	}
	if counts[entities.MessageStatusNew] != 2 || counts[entities.MessageStatusRead] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
}

func TestMessageUpdateDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewMessageRepository(db, nopLogger())
	ctx := context.Background()

	msg := seedMessage(t, repo, "mehmet", "Anadolu Boru", entities.MessageStatusNew)
	if err := repo.Update(ctx, msg.ID, map[string]interface{}{"status": entities.MessageStatusReplied}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ := repo.GetByID(ctx, msg.ID)
	if got.Status != entities.MessageStatusReplied {
		t.Errorf("status = %q", got.Status)
	}
	if err := repo.Delete(ctx, msg.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Update(ctx, msg.ID, map[string]interface{}{"status": entities.MessageStatusRead}); !errors.Is(err, commonerrors.ErrRepoNotFound) {
		t.Errorf("update deleted message: want ErrRepoNotFound, got %v", err)
	}
}
