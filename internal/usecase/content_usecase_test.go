package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/infrastructure/store"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInactiveGalleryItemIsHiddenFromPublic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	visible, err := f.gallery.CreateGalleryItem(ctx, admin, usecasecontract.GalleryItemInput{
		Title: strPtr("Tournament"), Type: strPtr("photo"), URL: strPtr("https://example.com/a.jpg"),
	})
	require.NoError(t, err)
	assert.True(t, visible.Active)
	hidden, err := f.gallery.CreateGalleryItem(ctx, admin, usecasecontract.GalleryItemInput{
		Title: strPtr("Draft"), Type: strPtr("photo"), URL: strPtr("https://example.com/b.jpg"), Active: boolPtr(false),
	})
	require.NoError(t, err)

	_, err = f.gallery.GetGalleryItem(ctx, anon, hidden.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NotErrorIs(t, err, entity.ErrForbidden)
	_, err = f.gallery.GetGalleryItem(ctx, member, hidden.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	got, err := f.gallery.GetGalleryItem(ctx, admin, hidden.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)

	public, err := f.gallery.ListGalleryItems(ctx, anon, usecasecontract.GalleryQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	require.Len(t, public.Items, 1)
	assert.Equal(t, visible.ID, public.Items[0].ID)
	assert.Equal(t, int64(1), public.Pagination.Total)

	everything, err := f.gallery.ListGalleryItems(ctx, admin, usecasecontract.GalleryQuery{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, everything.Items, 2)
}

func TestGalleryPaginationClamps(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := f.gallery.CreateGalleryItem(ctx, admin, usecasecontract.GalleryItemInput{
			Title: strPtr("Photo"), Type: strPtr("photo"), URL: strPtr("https://example.com/p.jpg"),
		})
		require.NoError(t, err)
	}

	p, err := f.gallery.ListGalleryItems(ctx, anon, usecasecontract.GalleryQuery{Page: -4, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Pagination.Page)
	assert.Equal(t, 50, p.Pagination.Limit)
	assert.Equal(t, int64(1), p.Pagination.Pages)

	p, err = f.gallery.ListGalleryItems(ctx, anon, usecasecontract.GalleryQuery{Page: 9, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, p.Items)
	assert.Equal(t, int64(2), p.Pagination.Pages)
}

func TestReadingContactMessageMarksItRead(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	msg, err := f.messages.CreateContactMessage(ctx, anon, usecasecontract.ContactMessageInput{
		Name: strPtr("Marie"), Email: strPtr("marie@example.com"), Subject: strPtr("Cours"), Message: strPtr("Bonjour"),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageUnread, msg.Status)

	_, err = f.messages.GetContactMessage(ctx, member, msg.ID)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	got, err := f.messages.GetContactMessage(ctx, admin, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageRead, got.Status)

	stored, err := f.repos.ContactMessages.GetContactMessageByID(ctx, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageRead, stored.Status)

	replied, err := f.messages.UpdateContactMessageStatus(ctx, admin, msg.ID, strPtr("replied"))
	require.NoError(t, err)
	assert.Equal(t, entity.MessageReplied, replied.Status)
	again, err := f.messages.GetContactMessage(ctx, admin, msg.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MessageReplied, again.Status)

	_, err = f.messages.UpdateContactMessageStatus(ctx, admin, msg.ID, strPtr("archived"))
	assert.Equal(t, []string{`status: The value "archived" is not a valid choice.`}, violations(t, err))
}

func TestContactMessageValidation(t *testing.T) {
	f := newFixture(t)
	_, err := f.messages.CreateContactMessage(context.Background(), anon, usecasecontract.ContactMessageInput{
		Email: strPtr("bad"),
	})
	got := violations(t, err)
	assert.Len(t, got, 4)
	assert.Contains(t, got, "name: This value should not be blank.")
	assert.Contains(t, got, "email: This value is not a valid email address.")
	assert.Contains(t, got, "subject: This value should not be blank.")
	assert.Contains(t, got, "message: This value should not be blank.")
}

func TestNewsListingNewestFirstWithCategory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	for _, title := range []string{"first", "second", "third"} {
		_, err := f.news.CreateNews(ctx, admin, usecasecontract.NewsInput{
			Title: strPtr(title), Content: strPtr("body"), Category: strPtr("club"), Tags: []string{"judo", " "},
		})
		require.NoError(t, err)
	}
	_, err := f.news.CreateNews(ctx, admin, usecasecontract.NewsInput{Title: strPtr("other"), Content: strPtr("body")})
	require.NoError(t, err)

	p, err := f.news.ListNews(ctx, anon, usecasecontract.NewsQuery{Category: strPtr("club"), Page: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, p.News, 2)
	assert.Equal(t, "third", p.News[0].Title)
	assert.Equal(t, []string{"judo"}, p.News[0].Tags)
	assert.Equal(t, int64(3), p.Pagination.Total)
	assert.Equal(t, int64(2), p.Pagination.Pages)
}

func TestNewsCacheIsInvalidatedOnWrite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	f.news.SetNewsCache(store.NewNewsCacheStore(rdb, time.Minute))

	created, err := f.news.CreateNews(ctx, admin, usecasecontract.NewsInput{Title: strPtr("Gala"), Content: strPtr("body")})
	require.NoError(t, err)

	first, err := f.news.ListNews(ctx, anon, usecasecontract.NewsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, first.News, 1)
	assert.NotEmpty(t, mr.Keys())

	_, err = f.news.UpdateNews(ctx, admin, created.ID, usecasecontract.NewsInput{Title: strPtr("Gala 2025")})
	require.NoError(t, err)

	second, err := f.news.ListNews(ctx, anon, usecasecontract.NewsQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, second.News, 1)
	assert.Equal(t, "Gala 2025", second.News[0].Title)

	detail, err := f.news.GetNews(ctx, anon, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gala 2025", detail.Title)

	require.NoError(t, f.news.DeleteNews(ctx, admin, created.ID))
	_, err = f.news.GetNews(ctx, anon, created.ID)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestEventsUpcomingAndValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	past := time.Now().AddDate(0, -1, 0).Format("2006-01-02 15:04:05")
	future := time.Now().AddDate(0, 1, 0).Format(time.RFC3339)
	for _, date := range []string{future, past} {
		_, err := f.events.CreateEvent(ctx, admin, usecasecontract.EventInput{
			Title: strPtr("Tournoi"), Description: strPtr("Open"), Date: strPtr(date), Location: strPtr("Dojo"), Type: strPtr("competition"),
		})
		require.NoError(t, err)
	}

	all, err := f.events.ListEvents(ctx, anon, usecasecontract.EventQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].Date.Before(all[1].Date))

	upcoming, err := f.events.ListEvents(ctx, anon, usecasecontract.EventQuery{Upcoming: true})
	require.NoError(t, err)
	assert.Len(t, upcoming, 1)

	_, err = f.events.CreateEvent(ctx, admin, usecasecontract.EventInput{Date: strPtr("next week")})
	got := violations(t, err)
	assert.Contains(t, got, "date: This value is not a valid datetime.")
	assert.Contains(t, got, "date: This value should not be null.")
	assert.Contains(t, got, "title: This value should not be blank.")
}

func TestDashboardStats(t *testing.T) {
	f := newFixture(t)
	f.seedUsers(t)
	ctx := context.Background()
	s := f.seedSchedule(t, entity.Monday, "17:30")
	_, err := f.registrations.CreateRegistration(ctx, member, usecasecontract.RegistrationInput{ScheduleID: int64Ptr(s.ID)})
	require.NoError(t, err)
	_, err = f.messages.CreateContactMessage(ctx, anon, usecasecontract.ContactMessageInput{
		Name: strPtr("Marie"), Email: strPtr("marie@example.com"), Subject: strPtr("Cours"), Message: strPtr("Bonjour"),
	})
	require.NoError(t, err)
	_, err = f.news.CreateNews(ctx, admin, usecasecontract.NewsInput{Title: strPtr("Gala"), Content: strPtr("body")})
	require.NoError(t, err)

	_, err = f.stats.GetDashboardStats(ctx, member)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	stats, err := f.stats.GetDashboardStats(ctx, admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalNews)
	assert.Equal(t, int64(0), stats.TotalPhotos)
	assert.Equal(t, int64(1), stats.TotalMessages)
	assert.Equal(t, int64(1), stats.PendingMessages)
	assert.Equal(t, int64(1), stats.TotalRegistrations)
	assert.Equal(t, int64(1), stats.PendingRegistrations)
	assert.Equal(t, int64(0), stats.RegistrationsByStatus[entity.RegistrationValidated])
}
