package product_test

import (
	"context"
	"errors"
	"testing"

	appproduct "github.com/muhammadheryan/heating-backoffice/application/product"
	"github.com/muhammadheryan/heating-backoffice/constant"
	productmocks "github.com/muhammadheryan/heating-backoffice/mocks/repository/product"
	"github.com/muhammadheryan/heating-backoffice/model"
	cerr "github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

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

func validRequest() *model.CreateProductRequest {
	return &model.CreateProductRequest{
		Code:                "BC-100",
		Description:         "Bomba de calor 10kW",
		ProposalDescription: "Bomba de calor para piscina",
		Segment:             constant.SegmentResidential,
		Category1:           "Bombas",
		Category2:           "Piscina",
		Cost:                decimal.RequireFromString("1200.50"),
		SaleValue:           decimal.RequireFromString("1899.90"),
	}
}

func TestProductApp_Create(t *testing.T) {
	type fields struct {
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name       string
		req        func() *model.CreateProductRequest
		mockCall   func(f fields)
		wantStatus constant.RecordStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: status defaults to active",
			req:  validRequest,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, &model.ProductFilter{Code: "BC-100"}).Return(nil, nil).Once()
				f.productRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(ent *model.ProductEntity) bool {
						return ent.Code == "BC-100" && ent.Cost.Equal(decimal.RequireFromString("1200.5"))
					})).
					Return(func(_ context.Context, ent *model.ProductEntity) *model.ProductEntity {
						ent.ID = "prod-1"
						return ent
					}, nil).
					Once()
			},
			wantStatus: constant.StatusActive,
		},
		{
			name: "error: negative sale value",
			req: func() *model.CreateProductRequest {
				r := validRequest()
				r.SaleValue = decimal.NewFromInt(-1)
				return r
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: duplicate code",
			req:  validRequest,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, &model.ProductFilter{Code: "BC-100"}).
					Return(&model.ProductEntity{ID: "prod-0", Code: "BC-100"}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrConflict,
		},
		{
			name: "error: repository failure",
			req:  validRequest,
			mockCall: func(f fields) {
				f.productRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Once()
				f.productRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{productRepo: productmocks.NewProductRepository(t)}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appproduct.NewProductApp(f.productRepo)

			got, err := app.Create(context.Background(), tt.req())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
				return
			}

			if got.ID != "prod-1" || got.Status != tt.wantStatus {
				t.Fatalf("Create() = %+v", got)
			}
		})
	}
}

func TestProductApp_Update(t *testing.T) {
	stored := func() *model.ProductEntity {
		return &model.ProductEntity{ID: "prod-1", Code: "BC-100", Cost: decimal.NewFromInt(10), Status: constant.StatusActive}
	}
	newCode := "BC-200"
	negative := decimal.NewFromInt(-5)
	price := decimal.RequireFromString("99.99")

	tests := []struct {
		name     string
		req      *model.UpdateProductRequest
		mockCall func(f *productmocks.ProductRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: code change checked for uniqueness",
			req:  &model.UpdateProductRequest{Code: &newCode, SaleValue: &price},
			mockCall: func(r *productmocks.ProductRepository) {
				r.On("Get", mock.Anything, &model.ProductFilter{ID: "prod-1"}).Return(stored(), nil).Once()
				r.On("Get", mock.Anything, &model.ProductFilter{Code: "BC-200"}).Return(nil, nil).Once()
				r.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.ProductEntity) bool {
					return ent.Code == "BC-200" && ent.SaleValue.Equal(price)
				})).Return(nil).Once()
			},
		},
		{
			name:    "error: negative cost",
			req:     &model.UpdateProductRequest{Cost: &negative},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: not found",
			req:  &model.UpdateProductRequest{SaleValue: &price},
			mockCall: func(r *productmocks.ProductRepository) {
				r.On("Get", mock.Anything, &model.ProductFilter{ID: "prod-1"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := productmocks.NewProductRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(repo)
			}

			_, err := appproduct.NewProductApp(repo).Update(context.Background(), "prod-1", tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Update() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertCustomError(t, err, tt.errCode)
			}
		})
	}
}

func TestProductApp_Delete(t *testing.T) {
	repo := productmocks.NewProductRepository(t)
	repo.On("Get", mock.Anything, &model.ProductFilter{ID: "prod-1"}).Return(&model.ProductEntity{ID: "prod-1"}, nil).Once()
	repo.On("Delete", mock.Anything, "prod-1").Return(nil).Once()

	if err := appproduct.NewProductApp(repo).Delete(context.Background(), "prod-1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
}
