package service

import (
	"context"
	"testing"
	"time"

	"newsboard/internal/apperror"
	"newsboard/internal/models"
)

const (
	ownerID = 1
	otherID = 2
	ghostID = 99
)

func seedNews(t *testing.T, svc *NewsService, owner int, in NewsInput) int {
	t.Helper()
	id, err := svc.Create(context.Background(), owner, in)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return id
}

func newsIDs(news []models.News) []int {
	ids := make([]int, 0, len(news))
	for _, n := range news {
		ids = append(ids, n.ID)
	}
	return ids
}

func containsID(news []models.News, id int) bool {
	for _, n := range news {
		if n.ID == id {
			return true
		}
	}
	return false
}

func TestNewsService_CreateValidation(t *testing.T) {
	svc := NewNewsService(newFakeNews())

	tests := []struct {
		name  string
		input NewsInput
	}{
		{name: "empty title", input: NewsInput{Title: "  ", Content: "c"}},
		{name: "empty content", input: NewsInput{Title: "t", Content: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), ownerID, tt.input); !apperror.IsKind(err, apperror.Validation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestNewsService_Visibility(t *testing.T) {
	repo := newFakeNews()
	svc := NewNewsService(repo)

	publicID := seedNews(t, svc, ownerID, NewsInput{Title: "T1", Content: "C1"})
	privateID := seedNews(t, svc, ownerID, NewsInput{Title: "T2", Content: "C2", IsPrivate: true})

	t.Run("owner sees own private posts", func(t *testing.T) {
		news, err := svc.List(context.Background(), ownerID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if !containsID(news, publicID) || !containsID(news, privateID) {
			t.Fatalf("owner list missing posts: %v", newsIDs(news))
		}
	})

	t.Run("other user does not see foreign private posts", func(t *testing.T) {
		news, err := svc.List(context.Background(), otherID)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if containsID(news, privateID) {
			t.Fatalf("private post leaked to another user: %v", newsIDs(news))
		}
		if !containsID(news, publicID) {
			t.Fatalf("public post missing: %v", newsIDs(news))
		}
	})

	t.Run("anonymous sees public posts only", func(t *testing.T) {
		news, err := svc.List(context.Background(), 0)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if containsID(news, privateID) || !containsID(news, publicID) {
			t.Fatalf("unexpected anonymous list: %v", newsIDs(news))
		}
	})
}

func TestNewsService_ListOrder(t *testing.T) {
	repo := newFakeNews()
	svc := NewNewsService(repo)

	older := seedNews(t, svc, ownerID, NewsInput{Title: "old", Content: "c"})
	n := repo.news[older]
	n.CreatedDate = time.Now().UTC().Add(-time.Hour)
	repo.news[older] = n
	newer := seedNews(t, svc, ownerID, NewsInput{Title: "new", Content: "c"})

	news, err := svc.List(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(news) != 2 || news[0].ID != newer || news[1].ID != older {
		t.Fatalf("expected newest first [%d %d], got %v", newer, older, newsIDs(news))
	}
}

func TestNewsService_OwnershipFolded(t *testing.T) {
	repo := newFakeNews()
	svc := NewNewsService(repo)

	id := seedNews(t, svc, ownerID, NewsInput{Title: "T", Content: "C"})
	input := NewsInput{Title: "T'", Content: "C'"}

	t.Run("non-owner update looks like missing id", func(t *testing.T) {
		errForeign := svc.Update(context.Background(), id, otherID, input)
		errMissing := svc.Update(context.Background(), ghostID, otherID, input)

		if !apperror.IsKind(errForeign, apperror.NotFound) || !apperror.IsKind(errMissing, apperror.NotFound) {
			t.Fatalf("expected not-found errors, got %v / %v", errForeign, errMissing)
		}
		if errForeign.Error() != errMissing.Error() {
			t.Fatalf("ownership leaks through error shape: %q vs %q",
				errForeign.Error(), errMissing.Error())
		}
	})

	t.Run("non-owner delete fails and post survives", func(t *testing.T) {
		if err := svc.Delete(context.Background(), id, otherID); !apperror.IsKind(err, apperror.NotFound) {
			t.Fatalf("expected not-found, got %v", err)
		}
		if _, err := svc.Get(context.Background(), id, ownerID); err != nil {
			t.Fatalf("post should still exist for owner: %v", err)
		}
	})

	t.Run("non-owner get is not found", func(t *testing.T) {
		if _, err := svc.Get(context.Background(), id, otherID); !apperror.IsKind(err, apperror.NotFound) {
			t.Fatalf("expected not-found, got %v", err)
		}
	})

	t.Run("owner update overwrites mutable fields", func(t *testing.T) {
		if err := svc.Update(context.Background(), id, ownerID, NewsInput{Title: "T2", Content: "C2", IsPrivate: true}); err != nil {
			t.Fatalf("update failed: %v", err)
		}
		got, err := svc.Get(context.Background(), id, ownerID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Title != "T2" || got.Content != "C2" || !got.IsPrivate {
			t.Fatalf("fields not overwritten: %+v", got)
		}
	})

	t.Run("owner delete is permanent", func(t *testing.T) {
		if err := svc.Delete(context.Background(), id, ownerID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := svc.Get(context.Background(), id, ownerID); !apperror.IsKind(err, apperror.NotFound) {
			t.Fatalf("expected not-found after delete, got %v", err)
		}
	})
}
