package city

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	cityrepo "github.com/muhammadheryan/heating-backoffice/repository/city"
	txrepo "github.com/muhammadheryan/heating-backoffice/repository/tx"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
)

type CityApp interface {
	Create(ctx context.Context, req *model.CreateCityRequest) (*model.CityResponse, error)
	List(ctx context.Context) ([]*model.CityResponse, error)
	Get(ctx context.Context, id string) (*model.CityResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateCityRequest) (*model.CityResponse, error)
	Delete(ctx context.Context, id string) error
}

type cityAppImpl struct {
	txRepo   txrepo.TxRepository
	cityRepo cityrepo.CityRepository
}

func NewCityApp(txRepo txrepo.TxRepository, cityRepo cityrepo.CityRepository) CityApp {
	return &cityAppImpl{txRepo: txRepo, cityRepo: cityRepo}
}

func (s *cityAppImpl) Create(ctx context.Context, req *model.CreateCityRequest) (*model.CityResponse, error) {
	if err := validateMonths(req.MonthlyData); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, "[CreateCity]", req.Name); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[CreateCity] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	city, err := s.cityRepo.CreateTx(ctx, tx, &model.CityEntity{Name: req.Name, Latitude: req.Latitude})
	if err != nil {
		logger.Error("[CreateCity] err cityRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	monthly := toMonthlyEntities(city.ID, req.MonthlyData)
	if err := s.cityRepo.InsertMonthlyDataTx(ctx, tx, monthly); err != nil {
		logger.Error("[CreateCity] err cityRepo.InsertMonthlyDataTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[CreateCity] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	return model.NewCityResponse(city, monthly), nil
}

func (s *cityAppImpl) List(ctx context.Context) ([]*model.CityResponse, error) {
	cities, err := s.cityRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCities] err cityRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ids := make([]string, 0, len(cities))
	for _, c := range cities {
		ids = append(ids, c.ID)
	}
	monthly, err := s.cityRepo.ListMonthlyData(ctx, ids)
	if err != nil {
		logger.Error("[ListCities] err cityRepo.ListMonthlyData", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byCity := make(map[string][]model.CityMonthlyDataEntity, len(cities))
	for _, m := range monthly {
		byCity[m.CityID] = append(byCity[m.CityID], m)
	}

	res := make([]*model.CityResponse, 0, len(cities))
	for i := range cities {
		res = append(res, model.NewCityResponse(&cities[i], byCity[cities[i].ID]))
	}
	return res, nil
}

func (s *cityAppImpl) Get(ctx context.Context, id string) (*model.CityResponse, error) {
	city, err := s.findCity(ctx, "[GetCity]", id)
	if err != nil {
		return nil, err
	}

	monthly, err := s.cityRepo.ListMonthlyData(ctx, []string{city.ID})
	if err != nil {
		logger.Error("[GetCity] err cityRepo.ListMonthlyData", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewCityResponse(city, monthly), nil
}

// Update replaces the whole monthly data set when req.MonthlyData is present, even if empty.
func (s *cityAppImpl) Update(ctx context.Context, id string, req *model.UpdateCityRequest) (*model.CityResponse, error) {
	if req.MonthlyData != nil {
		if err := validateMonths(*req.MonthlyData); err != nil {
			return nil, err
		}
	}

	city, err := s.findCity(ctx, "[UpdateCity]", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != city.Name {
		if err := s.ensureNameFree(ctx, "[UpdateCity]", *req.Name); err != nil {
			return nil, err
		}
		city.Name = *req.Name
	}
	if req.Latitude != nil {
		city.Latitude = *req.Latitude
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[UpdateCity] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	if err := s.cityRepo.UpdateTx(ctx, tx, city); err != nil {
		logger.Error("[UpdateCity] err cityRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if req.MonthlyData != nil {
		if err := s.replaceMonthlyData(ctx, tx, city.ID, *req.MonthlyData); err != nil {
			return nil, err
		}
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[UpdateCity] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	monthly, err := s.cityRepo.ListMonthlyData(ctx, []string{city.ID})
	if err != nil {
		logger.Error("[UpdateCity] err cityRepo.ListMonthlyData", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return model.NewCityResponse(city, monthly), nil
}

func (s *cityAppImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.findCity(ctx, "[DeleteCity]", id); err != nil {
		return err
	}

	if err := s.cityRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCity] err cityRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cityAppImpl) replaceMonthlyData(ctx context.Context, tx *sqlx.Tx, cityID string, data []model.MonthlyDataRequest) error {
	if err := s.cityRepo.DeleteMonthlyDataTx(ctx, tx, cityID); err != nil {
		logger.Error("[UpdateCity] err cityRepo.DeleteMonthlyDataTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if err := s.cityRepo.InsertMonthlyDataTx(ctx, tx, toMonthlyEntities(cityID, data)); err != nil {
		logger.Error("[UpdateCity] err cityRepo.InsertMonthlyDataTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *cityAppImpl) findCity(ctx context.Context, op, id string) (*model.CityEntity, error) {
	city, err := s.cityRepo.Get(ctx, &model.CityFilter{ID: id})
	if err != nil {
		logger.Error(op+" err cityRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if city == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "city not found")
	}
	return city, nil
}

func (s *cityAppImpl) ensureNameFree(ctx context.Context, op, name string) error {
	existing, err := s.cityRepo.Get(ctx, &model.CityFilter{Name: name})
	if err != nil {
		logger.Error(op+" err cityRepo.Get name", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return errors.SetCustomErrorMessage(constant.ErrConflict, "city already exists")
	}
	return nil
}

// validateMonths rejects a payload naming the same month twice.
func validateMonths(data []model.MonthlyDataRequest) error {
	seen := make(map[constant.Month]struct{}, len(data))
	for _, d := range data {
		if _, ok := seen[d.Month]; ok {
			return errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "duplicate month "+string(d.Month))
		}
		seen[d.Month] = struct{}{}
	}
	return nil
}

func toMonthlyEntities(cityID string, data []model.MonthlyDataRequest) []model.CityMonthlyDataEntity {
	rows := make([]model.CityMonthlyDataEntity, 0, len(data))
	for _, d := range data {
		rows = append(rows, model.CityMonthlyDataEntity{
			CityID:         cityID,
			Month:          d.Month,
			Temperature:    d.Temperature,
			SolarRadiation: d.SolarRadiation,
			WindSpeed:      d.WindSpeed,
		})
	}
	return rows
}
