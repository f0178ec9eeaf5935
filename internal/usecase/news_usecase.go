package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	"github.com/judoclub/clubsite/internal/infrastructure/metrics"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

const DefaultNewsLimit = 10

// NewsUseCaseImpl implements the INewsUseCase interface.
type NewsUseCaseImpl struct {
	newsRepo  contract.INewsRepository
	validator usecasecontract.IValidator
	logger    usecasecontract.IAppLogger
	newsCache contract.INewsCache
	clock     func() time.Time
}

var _ usecasecontract.INewsUseCase = (*NewsUseCaseImpl)(nil)

// NewNewsUseCase creates a new instance of NewsUseCase.
func NewNewsUseCase(
	newsRepo contract.INewsRepository,
	validator usecasecontract.IValidator,
	logger usecasecontract.IAppLogger,
) *NewsUseCaseImpl {
	return &NewsUseCaseImpl{
		newsRepo:  newsRepo,
		validator: validator,
		logger:    logger,
		clock:     time.Now,
	}
}

// SetNewsCache enables the read-through cache for public listings.
func (uc *NewsUseCaseImpl) SetNewsCache(cache contract.INewsCache) {
	uc.newsCache = cache
}

// buildNewsListCacheKey builds a stable key for list endpoint caching
func buildNewsListCacheKey(category string, page, limit int) string {
	return fmt.Sprintf("%scategory=%s:page=%d:limit=%d", contract.NewsListKeyPrefix, category, page, limit)
}

// ListNews returns a page of news, newest first. Upcoming listings depend on
// the current time and bypass the cache.
func (uc *NewsUseCaseImpl) ListNews(ctx context.Context, caller entity.Caller, q usecasecontract.NewsQuery) (*usecasecontract.NewsPage, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceNews); err != nil {
		return nil, err
	}
	page, limit := utils.NormalizePage(q.Page, q.Limit)

	var opts contract.NewsFilterOptions
	category := ""
	if q.Category != nil && *q.Category != "" {
		category = *q.Category
		opts.Category = &category
	}
	if q.Upcoming {
		t := uc.clock()
		opts.UpcomingAfter = &t
	}

	cacheable := uc.newsCache != nil && !q.Upcoming
	key := buildNewsListCacheKey(category, page, limit)
	if cacheable {
		start := time.Now()
		cached, found, err := uc.newsCache.GetNewsPage(ctx, key)
		elapsed := time.Since(start)
		switch {
		case err != nil:
			go metrics.IncCacheError("list")
			uc.logger.Warningf("cache error: news list key=%s err=%v took=%s", key, err, elapsed)
		case found && cached != nil:
			go metrics.IncListHit()
			go metrics.AddHitDuration(elapsed.Seconds())
			uc.logger.Debugf("cache hit: news list key=%s took=%s", key, elapsed)
			return &usecasecontract.NewsPage{News: cached.News, Pagination: utils.Paginate(page, limit, cached.Total)}, nil
		default:
			go metrics.IncListMiss()
			go metrics.AddMissDuration(elapsed.Seconds())
		}
	}

	items, total, err := uc.newsRepo.ListNews(ctx, opts, contract.Page{Offset: utils.Offset(page, limit), Limit: limit})
	if err != nil {
		uc.logger.Errorf("failed to list news: %v", err)
		return nil, err
	}

	if cacheable {
		if err := uc.newsCache.SetNewsPage(ctx, key, &contract.CachedNewsPage{News: items, Total: total}); err != nil {
			uc.logger.Warningf("cache set failed: news list key=%s err=%v", key, err)
		}
	}
	return &usecasecontract.NewsPage{News: items, Pagination: utils.Paginate(page, limit, total)}, nil
}

func (uc *NewsUseCaseImpl) GetNews(ctx context.Context, caller entity.Caller, id int64) (*entity.News, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceNews); err != nil {
		return nil, err
	}
	// Cache first
	if uc.newsCache != nil {
		start := time.Now()
		cached, found, err := uc.newsCache.GetNews(ctx, id)
		elapsed := time.Since(start)
		if err == nil && found && cached != nil {
			go metrics.IncDetailHit()
			go metrics.AddHitDuration(elapsed.Seconds())
			return cached, nil
		}
		if err != nil {
			go metrics.IncCacheError("detail")
			uc.logger.Warningf("cache error: news detail id=%d err=%v", id, err)
		} else {
			go metrics.IncDetailMiss()
			go metrics.AddMissDuration(elapsed.Seconds())
		}
	}

	news, err := uc.newsRepo.GetNewsByID(ctx, id)
	if err != nil {
		return nil, orNotFound("News", err)
	}
	if uc.newsCache != nil {
		_ = uc.newsCache.SetNews(ctx, news)
	}
	return news, nil
}

func (uc *NewsUseCaseImpl) CreateNews(ctx context.Context, caller entity.Caller, in usecasecontract.NewsInput) (*entity.News, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceNews); err != nil {
		return nil, err
	}
	news := &entity.News{CreatedAt: now(), Tags: []string{}}
	if err := uc.merge(news, in); err != nil {
		return nil, err
	}
	if err := uc.newsRepo.CreateNews(ctx, news); err != nil {
		uc.logger.Errorf("failed to create news: %v", err)
		return nil, err
	}
	uc.invalidate(ctx, 0)
	return news, nil
}

func (uc *NewsUseCaseImpl) UpdateNews(ctx context.Context, caller entity.Caller, id int64, in usecasecontract.NewsInput) (*entity.News, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceNews); err != nil {
		return nil, err
	}
	news, err := uc.newsRepo.GetNewsByID(ctx, id)
	if err != nil {
		return nil, orNotFound("News", err)
	}
	if err := uc.merge(news, in); err != nil {
		return nil, err
	}
	if err := uc.newsRepo.UpdateNews(ctx, news); err != nil {
		return nil, orNotFound("News", err)
	}
	uc.invalidate(ctx, id)
	return news, nil
}

func (uc *NewsUseCaseImpl) DeleteNews(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceNews); err != nil {
		return err
	}
	if err := uc.newsRepo.DeleteNews(ctx, id); err != nil {
		return orNotFound("News", err)
	}
	uc.invalidate(ctx, id)
	return nil
}

func (uc *NewsUseCaseImpl) merge(n *entity.News, in usecasecontract.NewsInput) error {
	var violations []string
	setString(&n.Title, in.Title)
	setString(&n.Content, in.Content)
	setOptional(&n.Excerpt, in.Excerpt)
	setOptional(&n.ImageURL, in.ImageURL)
	setOptional(&n.Category, in.Category)
	setBool(&n.Important, in.Important)
	setOptional(&n.Author, in.Author)
	if in.Tags != nil {
		n.Tags = make([]string, 0, len(in.Tags))
		for _, tag := range in.Tags {
			if tag = strings.TrimSpace(tag); tag != "" {
				n.Tags = append(n.Tags, tag)
			}
		}
	}
	mergeDate("eventDate", in.EventDate, &n.EventDate, &violations)
	violations = append(uc.validator.Validate(newsRules(n)), violations...)
	return entity.NewValidationError(violations)
}

// invalidate drops every cached listing and, when id is set, the article.
func (uc *NewsUseCaseImpl) invalidate(ctx context.Context, id int64) {
	if uc.newsCache == nil {
		return
	}
	if err := uc.newsCache.InvalidateNewsLists(ctx); err != nil {
		uc.logger.Warningf("cache invalidation failed: news lists err=%v", err)
	}
	if id != 0 {
		if err := uc.newsCache.InvalidateNews(ctx, id); err != nil {
			uc.logger.Warningf("cache invalidation failed: news id=%d err=%v", id, err)
		}
	}
}
