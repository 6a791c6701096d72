package category_test

import (
	"context"
	"errors"
	"testing"

	appcategory "github.com/muhammadheryan/heating-backoffice/application/category"
	"github.com/muhammadheryan/heating-backoffice/constant"
	categorymocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/category"
	productmocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/product"
	"github.com/muhammadheryan/heating-backoffice/model"
	cerr "github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	categoryRepo *categorymocks.CategoryRepository
	productRepo  *productmocks.ProductRepository
}

func newFields(t *testing.T) fields {
	return fields{
		categoryRepo: categorymocks.NewCategoryRepository(t),
		productRepo:  productmocks.NewProductRepository(t),
	}
}

func assertCustomError(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestCategoryApp_Create(t *testing.T) {
	req := &model.CreateCategoryRequest{Name: "Bombas", Segment: constant.SegmentResidential}

	tests := []struct {
		name      string
		mockCall  func(f fields)
		wantCount int64
		wantErr   bool
		errCode   constant.ErrorType
	}{
		{
			name: "success: reports products referencing the name",
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{Name: "Bombas", Segment: constant.SegmentResidential}).
					Return(nil, nil).Once()
				f.categoryRepo.On("Create", mock.Anything, mock.MatchedBy(func(ent *model.CategoryEntity) bool {
					return ent.Status == constant.StatusActive
				})).Return(&model.CategoryEntity{ID: "cat-1", Name: "Bombas", Segment: constant.SegmentResidential, Status: constant.StatusActive}, nil).Once()
				f.productRepo.On("CountByCategory", mock.Anything, "Bombas").Return(int64(3), nil).Once()
			},
			wantCount: 3,
		},
		{
			name: "error: same name in same segment",
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, mock.Anything).
					Return(&model.CategoryEntity{ID: "cat-0"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := appcategory.NewCategoryApp(f.categoryRepo, f.productRepo).Create(context.Background(), req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}
			if got.ProductsCount != tt.wantCount {
				t.Fatalf("Create() productsCount = %d, want %d", got.ProductsCount, tt.wantCount)
			}
		})
	}
}

func TestCategoryApp_Update(t *testing.T) {
	comercial := constant.SegmentCommercial
	stored := func() *model.CategoryEntity {
		return &model.CategoryEntity{ID: "cat-1", Name: "Bombas", Segment: constant.SegmentResidential}
	}

	tests := []struct {
		name     string
		req      *model.UpdateCategoryRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: segment move checks the target pair",
			req:  &model.UpdateCategoryRequest{Segment: &comercial},
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "cat-1"}).Return(stored(), nil).Once()
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{Name: "Bombas", Segment: constant.SegmentCommercial}).
					Return(nil, nil).Once()
				f.categoryRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.CategoryEntity) bool {
					return ent.Segment == constant.SegmentCommercial
				})).Return(nil).Once()
				f.productRepo.On("CountByCategory", mock.Anything, "Bombas").Return(int64(0), nil).Once()
			},
		},
		{
			name: "error: segment move collides",
			req:  &model.UpdateCategoryRequest{Segment: &comercial},
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "cat-1"}).Return(stored(), nil).Once()
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{Name: "Bombas", Segment: constant.SegmentCommercial}).
					Return(&model.CategoryEntity{ID: "cat-2"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			_, err := appcategory.NewCategoryApp(f.categoryRepo, f.productRepo).Update(context.Background(), "cat-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
			}
		})
	}
}

func TestCategoryApp_Delete(t *testing.T) {
	stored := &model.CategoryEntity{ID: "cat-1", Name: "Bombas"}

	tests := []struct {
		name     string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: unused category",
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "cat-1"}).Return(stored, nil).Once()
				f.productRepo.On("CountByCategory", mock.Anything, "Bombas").Return(int64(0), nil).Once()
				f.categoryRepo.On("Delete", mock.Anything, "cat-1").Return(nil).Once()
			},
		},
		{
			name: "error: products still reference it",
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "cat-1"}).Return(stored, nil).Once()
				f.productRepo.On("CountByCategory", mock.Anything, "Bombas").Return(int64(2), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: not found",
			mockCall: func(f fields) {
				f.categoryRepo.On("Get", mock.Anything, &model.CategoryFilter{ID: "cat-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			err := appcategory.NewCategoryApp(f.categoryRepo, f.productRepo).Delete(context.Background(), "cat-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("Delete() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
			}
		})
	}
}
