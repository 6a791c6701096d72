package appointment

import (
	"context"
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	appointmentrepo "github.com/muhammadheryan/heating-backoffice/repository/appointment"
	storerepo "github.com/muhammadheryan/heating-backoffice/repository/store"
	userrepo "github.com/muhammadheryan/heating-backoffice/repository/user"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
)

type AppointmentApp interface {
	Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error)
	List(ctx context.Context) ([]*model.AppointmentResponse, error)
	Get(ctx context.Context, id string) (*model.AppointmentResponse, error)
	Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error)
	Delete(ctx context.Context, id string) error
}

type appointmentAppImpl struct {
	appointmentRepo appointmentrepo.AppointmentRepository
	storeRepo       storerepo.StoreRepository
	userRepo        userrepo.UserRepository
	resolver        SellerResolver
}

func NewAppointmentApp(appointmentRepo appointmentrepo.AppointmentRepository, storeRepo storerepo.StoreRepository, userRepo userrepo.UserRepository, resolver SellerResolver) AppointmentApp {
	return &appointmentAppImpl{
		appointmentRepo: appointmentRepo,
		storeRepo:       storeRepo,
		userRepo:        userRepo,
		resolver:        resolver,
	}
}

func (s *appointmentAppImpl) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.AppointmentResponse, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	if err := s.ensureStore(ctx, "[CreateAppointment]", req.StoreID); err != nil {
		return nil, err
	}
	if err := s.ensureUser(ctx, "[CreateAppointment]", req.ClientID, "client not found"); err != nil {
		return nil, err
	}

	sellerID := emptyToNil(req.SellerID)
	if sellerID != nil {
		if err := s.ensureUser(ctx, "[CreateAppointment]", *sellerID, "seller not found"); err != nil {
			return nil, err
		}
	}

	if req.AutoAssign && sellerID == nil {
		sellerID, err = s.resolver.Resolve(ctx, req.StoreID, date, req.Time)
		if err != nil {
			logger.Error("[CreateAppointment] err resolver.Resolve", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	entity := &model.AppointmentEntity{
		Date:       date,
		Time:       req.Time,
		StoreID:    req.StoreID,
		SellerID:   sellerID,
		ClientID:   req.ClientID,
		Address:    req.Address,
		Duration:   constant.DefaultAppointmentDuration,
		Status:     req.Status,
		Channel:    req.Channel,
		AutoAssign: req.AutoAssign,
	}
	if req.Duration != nil {
		entity.Duration = *req.Duration
	}
	if entity.Status == "" {
		entity.Status = constant.AppointmentStatusScheduled
	}
	if entity.Channel == "" {
		entity.Channel = constant.AppointmentChannelPresencial
	}

	entity, err = s.appointmentRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateAppointment] err appointmentRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.Get(ctx, entity.ID)
}

// List returns every appointment ordered by date, then time.
func (s *appointmentAppImpl) List(ctx context.Context) ([]*model.AppointmentResponse, error) {
	appointments, err := s.appointmentRepo.List(ctx, &model.AppointmentFilter{})
	if err != nil {
		logger.Error("[ListAppointments] err appointmentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]*model.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		res = append(res, model.NewAppointmentResponse(&appointments[i]))
	}
	return res, nil
}

func (s *appointmentAppImpl) Get(ctx context.Context, id string) (*model.AppointmentResponse, error) {
	appointment, err := s.findAppointment(ctx, "[GetAppointment]", id)
	if err != nil {
		return nil, err
	}
	return model.NewAppointmentResponse(appointment), nil
}

// Update applies the patch over the stored appointment. A seller is resolved again only when
// the patch turns autoAssign on and neither the patch nor the stored row names a seller.
func (s *appointmentAppImpl) Update(ctx context.Context, id string, req *model.UpdateAppointmentRequest) (*model.AppointmentResponse, error) {
	current, err := s.findAppointment(ctx, "[UpdateAppointment]", id)
	if err != nil {
		return nil, err
	}
	appointment := current.AppointmentEntity

	if req.StoreID != nil && *req.StoreID != appointment.StoreID {
		if err := s.ensureStore(ctx, "[UpdateAppointment]", *req.StoreID); err != nil {
			return nil, err
		}
		appointment.StoreID = *req.StoreID
	}
	if req.ClientID != nil && *req.ClientID != appointment.ClientID {
		if err := s.ensureUser(ctx, "[UpdateAppointment]", *req.ClientID, "client not found"); err != nil {
			return nil, err
		}
		appointment.ClientID = *req.ClientID
	}
	if req.SellerID != nil {
		sellerID := emptyToNil(req.SellerID)
		if sellerID != nil && (appointment.SellerID == nil || *appointment.SellerID != *sellerID) {
			if err := s.ensureUser(ctx, "[UpdateAppointment]", *sellerID, "seller not found"); err != nil {
				return nil, err
			}
		}
		appointment.SellerID = sellerID
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		appointment.Date = date
	}
	if req.Time != nil {
		appointment.Time = *req.Time
	}
	if req.Address != nil {
		appointment.Address = *req.Address
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Status != nil {
		appointment.Status = *req.Status
	}
	if req.Channel != nil {
		appointment.Channel = *req.Channel
	}
	if req.AutoAssign != nil {
		appointment.AutoAssign = *req.AutoAssign
	}

	if req.AutoAssign != nil && *req.AutoAssign && appointment.SellerID == nil {
		appointment.SellerID, err = s.resolver.Resolve(ctx, appointment.StoreID, appointment.Date, appointment.Time)
		if err != nil {
			logger.Error("[UpdateAppointment] err resolver.Resolve", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
	}

	if err := s.appointmentRepo.Update(ctx, &appointment); err != nil {
		logger.Error("[UpdateAppointment] err appointmentRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return s.Get(ctx, appointment.ID)
}

func (s *appointmentAppImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.findAppointment(ctx, "[DeleteAppointment]", id); err != nil {
		return err
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteAppointment] err appointmentRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *appointmentAppImpl) findAppointment(ctx context.Context, op, id string) (*model.AppointmentDetail, error) {
	appointment, err := s.appointmentRepo.Get(ctx, &model.AppointmentFilter{ID: id})
	if err != nil {
		logger.Error(op+" err appointmentRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if appointment == nil {
		return nil, errors.SetCustomErrorMessage(constant.ErrNotFound, "appointment not found")
	}
	return appointment, nil
}

func (s *appointmentAppImpl) ensureStore(ctx context.Context, op, storeID string) error {
	store, err := s.storeRepo.Get(ctx, &model.StoreFilter{ID: storeID})
	if err != nil {
		logger.Error(op+" err storeRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if store == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, "store not found")
	}
	return nil
}

func (s *appointmentAppImpl) ensureUser(ctx context.Context, op, userID, notFound string) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error(op+" err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomErrorMessage(constant.ErrNotFound, notFound)
	}
	return nil
}

func parseDate(value string) (time.Time, error) {
	date, err := time.ParseInLocation(constant.AppointmentDateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, errors.SetCustomErrorMessage(constant.ErrInvalidRequest, "date must be YYYY-MM-DD")
	}
	return date, nil
}

func emptyToNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
