package usecase

import (
	"context"

	"github.com/judoclub/clubsite/internal/domain/contract"
	"github.com/judoclub/clubsite/internal/domain/entity"
	"github.com/judoclub/clubsite/internal/domain/policy"
	usecasecontract "github.com/judoclub/clubsite/internal/usecase/contract"
	"github.com/judoclub/clubsite/internal/utils"
)

const DefaultGalleryLimit = 20

// GalleryUseCaseImpl serves the photo gallery. Inactive items exist only for
// administrators; everyone else gets a not found.
type GalleryUseCaseImpl struct {
	galleryRepo contract.IGalleryRepository
	validator   usecasecontract.IValidator
	logger      usecasecontract.IAppLogger
}

var _ usecasecontract.IGalleryUseCase = (*GalleryUseCaseImpl)(nil)

func NewGalleryUseCase(galleryRepo contract.IGalleryRepository, validator usecasecontract.IValidator, logger usecasecontract.IAppLogger) *GalleryUseCaseImpl {
	return &GalleryUseCaseImpl{galleryRepo: galleryRepo, validator: validator, logger: logger}
}

func (uc *GalleryUseCaseImpl) ListGalleryItems(ctx context.Context, caller entity.Caller, q usecasecontract.GalleryQuery) (*usecasecontract.GalleryPage, error) {
	if err := policy.Authorize(caller, policy.ActionList, policy.ResourceGalleryItem); err != nil {
		return nil, err
	}
	page, limit := utils.NormalizePage(q.Page, q.Limit)
	opts := contract.GalleryFilterOptions{ActiveOnly: !caller.IsAdmin()}
	if q.Category != nil && *q.Category != "" {
		opts.Category = q.Category
	}
	if q.Type != nil && *q.Type != "" {
		opts.Type = q.Type
	}
	items, total, err := uc.galleryRepo.ListGalleryItems(ctx, opts, contract.Page{Offset: utils.Offset(page, limit), Limit: limit})
	if err != nil {
		uc.logger.Errorf("failed to list gallery items: %v", err)
		return nil, err
	}
	return &usecasecontract.GalleryPage{Items: items, Pagination: utils.Paginate(page, limit, total)}, nil
}

func (uc *GalleryUseCaseImpl) GetGalleryItem(ctx context.Context, caller entity.Caller, id int64) (*entity.GalleryItem, error) {
	if err := policy.Authorize(caller, policy.ActionRead, policy.ResourceGalleryItem); err != nil {
		return nil, err
	}
	item, err := uc.galleryRepo.GetGalleryItemByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Gallery item", err)
	}
	if !item.Active && !caller.IsAdmin() {
		return nil, notFound("Gallery item")
	}
	return item, nil
}

func (uc *GalleryUseCaseImpl) CreateGalleryItem(ctx context.Context, caller entity.Caller, in usecasecontract.GalleryItemInput) (*entity.GalleryItem, error) {
	if err := policy.Authorize(caller, policy.ActionCreate, policy.ResourceGalleryItem); err != nil {
		return nil, err
	}
	item := &entity.GalleryItem{Active: true, CreatedAt: now()}
	applyGalleryItemInput(item, in)
	if err := entity.NewValidationError(uc.validator.Validate(galleryItemRules(item))); err != nil {
		return nil, err
	}
	if err := uc.galleryRepo.CreateGalleryItem(ctx, item); err != nil {
		uc.logger.Errorf("failed to create gallery item: %v", err)
		return nil, err
	}
	return item, nil
}

func (uc *GalleryUseCaseImpl) UpdateGalleryItem(ctx context.Context, caller entity.Caller, id int64, in usecasecontract.GalleryItemInput) (*entity.GalleryItem, error) {
	if err := policy.Authorize(caller, policy.ActionUpdate, policy.ResourceGalleryItem); err != nil {
		return nil, err
	}
	item, err := uc.galleryRepo.GetGalleryItemByID(ctx, id)
	if err != nil {
		return nil, orNotFound("Gallery item", err)
	}
	applyGalleryItemInput(item, in)
	if err := entity.NewValidationError(uc.validator.Validate(galleryItemRules(item))); err != nil {
		return nil, err
	}
	if err := uc.galleryRepo.UpdateGalleryItem(ctx, item); err != nil {
		return nil, orNotFound("Gallery item", err)
	}
	return item, nil
}

func (uc *GalleryUseCaseImpl) DeleteGalleryItem(ctx context.Context, caller entity.Caller, id int64) error {
	if err := policy.Authorize(caller, policy.ActionDelete, policy.ResourceGalleryItem); err != nil {
		return err
	}
	if err := uc.galleryRepo.DeleteGalleryItem(ctx, id); err != nil {
		return orNotFound("Gallery item", err)
	}
	return nil
}

func applyGalleryItemInput(g *entity.GalleryItem, in usecasecontract.GalleryItemInput) {
	setString(&g.Title, in.Title)
	setString(&g.Type, in.Type)
	setString(&g.URL, in.URL)
	setOptional(&g.Description, in.Description)
	setOptional(&g.Category, in.Category)
	setOptional(&g.Alt, in.Alt)
	setBool(&g.Active, in.Active)
}
