package service

import (
	"context"
	"sort"
	"time"

	"newsboard/internal/models"
)

// In-memory repository fakes shared by the service tests.

type fakeUsers struct {
	nextID int
	users  map[int]models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{nextID: 1, users: map[int]models.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (int, error) {
	u.ID = f.nextID
	f.nextID++
	if u.CreatedDate.IsZero() {
		u.CreatedDate = time.Now().UTC()
	}
	f.users[u.ID] = u
	return u.ID, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

type fakeNews struct {
	nextID int
	news   map[int]models.News
}

func newFakeNews() *fakeNews {
	return &fakeNews{nextID: 1, news: map[int]models.News{}}
}

func (f *fakeNews) Create(_ context.Context, n models.News) (int, error) {
	n.ID = f.nextID
	f.nextID++
	if n.CreatedDate.IsZero() {
		n.CreatedDate = time.Now().UTC()
	}
	f.news[n.ID] = n
	return n.ID, nil
}

func (f *fakeNews) ListVisible(_ context.Context, viewerID int) ([]models.News, error) {
	out := make([]models.News, 0, len(f.news))
	for _, n := range f.news {
		if !n.IsPrivate || n.UserID == viewerID {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedDate.Equal(out[j].CreatedDate) {
			return out[i].CreatedDate.After(out[j].CreatedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeNews) GetOwned(_ context.Context, id, ownerID int) (*models.News, error) {
	n, ok := f.news[id]
	if !ok || n.UserID != ownerID {
		return nil, nil
	}
	return &n, nil
}

func (f *fakeNews) Update(_ context.Context, n models.News) (bool, error) {
	existing, ok := f.news[n.ID]
	if !ok || existing.UserID != n.UserID {
		return false, nil
	}
	existing.Title = n.Title
	existing.Content = n.Content
	existing.IsPrivate = n.IsPrivate
	f.news[n.ID] = existing
	return true, nil
}

func (f *fakeNews) Delete(_ context.Context, id, ownerID int) (bool, error) {
	n, ok := f.news[id]
	if !ok || n.UserID != ownerID {
		return false, nil
	}
	delete(f.news, id)
	return true, nil
}
