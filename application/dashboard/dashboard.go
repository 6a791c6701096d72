package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	appointmentrepo "github.com/muhammadheryan/heating-backoffice/repository/appointment"
	proposalrepo "github.com/muhammadheryan/heating-backoffice/repository/proposal"
	userrepo "github.com/muhammadheryan/heating-backoffice/repository/user"
	"github.com/muhammadheryan/heating-backoffice/utils/errors"
	"github.com/muhammadheryan/heating-backoffice/utils/logger"
	"go.uber.org/zap"
)

const rollingWindow = 30 * 24 * time.Hour

type DashboardApp interface {
	GetStats(ctx context.Context) (*model.DashboardStats, error)
}

type dashboardAppImpl struct {
	proposalRepo    proposalrepo.ProposalRepository
	appointmentRepo appointmentrepo.AppointmentRepository
	userRepo        userrepo.UserRepository
	now             func() time.Time
}

// NewDashboardApp builds the aggregator. A nil now uses time.Now.
func NewDashboardApp(proposalRepo proposalrepo.ProposalRepository, appointmentRepo appointmentrepo.AppointmentRepository, userRepo userrepo.UserRepository, now func() time.Time) DashboardApp {
	if now == nil {
		now = time.Now
	}
	return &dashboardAppImpl{
		proposalRepo:    proposalRepo,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		now:             now,
	}
}

// window is a half-open [from, before) range; a nil bound is open.
type window struct {
	from   *time.Time
	before *time.Time
}

// GetStats computes a fresh snapshot relative to the current time. Queries run one after the
// other without a shared snapshot.
func (s *dashboardAppImpl) GetStats(ctx context.Context) (*model.DashboardStats, error) {
	now := s.now()
	loc := now.Location()

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	startOfPrevMonth := startOfMonth.AddDate(0, -1, 0)
	thirtyDaysAgo := now.Add(-rollingWindow)
	sixtyDaysAgo := now.Add(-2 * rollingWindow)

	currentMonth := window{from: &startOfMonth}
	previousMonth := window{from: &startOfPrevMonth, before: &startOfMonth}
	currentRolling := window{from: &thirtyDaysAgo}
	previousRolling := window{from: &sixtyDaysAgo, before: &thirtyDaysAgo}

	stats := &model.DashboardStats{}
	var err error

	if stats.ProposalsIssued, err = s.compareCounts(ctx, s.countIssued, currentMonth, previousMonth); err != nil {
		return nil, err
	}
	if stats.ProposalsClosed, err = s.compareCounts(ctx, s.countClosed, currentMonth, previousMonth); err != nil {
		return nil, err
	}
	if stats.ProposalsCancelled, err = s.compareCounts(ctx, s.countCancelled, currentMonth, previousMonth); err != nil {
		return nil, err
	}

	currentRate, err := s.conversionRate(ctx, currentRolling)
	if err != nil {
		return nil, err
	}
	previousRate, err := s.conversionRate(ctx, previousRolling)
	if err != nil {
		return nil, err
	}
	stats.ConversionRate = Compare(currentRate, previousRate)
	stats.ConversionRate.Current = round1(currentRate)
	stats.ConversionRate.Previous = round1(previousRate)

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if stats.UpcomingAppointments, err = s.upcomingAppointments(ctx, today); err != nil {
		return nil, err
	}
	if stats.SellerRanking, err = s.sellerRanking(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

// Compare computes the percent change from previous to current, rounded to one decimal.
// A zero previous value yields 100 when current is positive and 0 otherwise.
func Compare(current, previous float64) model.MetricComparison {
	var change float64
	if previous == 0 {
		if current > 0 {
			change = 100
		}
	} else {
		change = round1((current - previous) / previous * 100)
	}
	return model.MetricComparison{
		Current:    current,
		Previous:   previous,
		Change:     change,
		IsPositive: change >= 0,
	}
}

// Rate returns part/total as a percentage rounded to one decimal, or 0 when total is 0.
func Rate(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	return round1(float64(part) / float64(total) * 100)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

type countFunc func(ctx context.Context, w window) (int64, error)

func (s *dashboardAppImpl) compareCounts(ctx context.Context, count countFunc, current, previous window) (model.MetricComparison, error) {
	cur, err := count(ctx, current)
	if err != nil {
		return model.MetricComparison{}, err
	}
	prev, err := count(ctx, previous)
	if err != nil {
		return model.MetricComparison{}, err
	}
	return Compare(float64(cur), float64(prev)), nil
}

func (s *dashboardAppImpl) countIssued(ctx context.Context, w window) (int64, error) {
	return s.countProposals(ctx, &model.ProposalFilter{CreatedFrom: w.from, CreatedBefore: w.before})
}

func (s *dashboardAppImpl) countClosed(ctx context.Context, w window) (int64, error) {
	return s.countProposals(ctx, &model.ProposalFilter{
		Statuses:      constant.ProposalClosedStatuses,
		UpdatedFrom:   w.from,
		UpdatedBefore: w.before,
	})
}

func (s *dashboardAppImpl) countCancelled(ctx context.Context, w window) (int64, error) {
	return s.countProposals(ctx, &model.ProposalFilter{
		Statuses:      []string{constant.ProposalStatusCancelled},
		UpdatedFrom:   w.from,
		UpdatedBefore: w.before,
	})
}

func (s *dashboardAppImpl) countProposals(ctx context.Context, filter *model.ProposalFilter) (int64, error) {
	total, err := s.proposalRepo.Count(ctx, filter)
	if err != nil {
		logger.Error("[GetStats] err proposalRepo.Count", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return total, nil
}

// conversionRate is closed over issued in w, unrounded.
func (s *dashboardAppImpl) conversionRate(ctx context.Context, w window) (float64, error) {
	issued, err := s.countIssued(ctx, w)
	if err != nil {
		return 0, err
	}
	closed, err := s.countClosed(ctx, w)
	if err != nil {
		return 0, err
	}
	if issued == 0 {
		return 0, nil
	}
	return float64(closed) / float64(issued) * 100, nil
}

func (s *dashboardAppImpl) upcomingAppointments(ctx context.Context, today time.Time) ([]model.UpcomingAppointment, error) {
	appointments, err := s.appointmentRepo.List(ctx, &model.AppointmentFilter{
		DateFrom: &today,
		Status:   constant.AppointmentStatusScheduled,
		Limit:    constant.UpcomingAppointmentsLimit,
	})
	if err != nil {
		logger.Error("[GetStats] err appointmentRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := make([]model.UpcomingAppointment, 0, len(appointments))
	for _, a := range appointments {
		res = append(res, model.UpcomingAppointment{
			ID:         a.ID,
			ClientName: orPlaceholder(a.ClientName, constant.PlaceholderClientName),
			StoreName:  orPlaceholder(a.StoreName, constant.PlaceholderStoreName),
			SellerName: orPlaceholder(a.SellerName, constant.PlaceholderSellerName),
			Date:       a.Date.Format(constant.AppointmentDateLayout),
			Time:       a.Time,
		})
	}
	return res, nil
}

// sellerRanking ranks every active seller by all-time conversion rate, highest first.
func (s *dashboardAppImpl) sellerRanking(ctx context.Context) ([]model.SellerRanking, error) {
	active := true
	sellers, err := s.userRepo.List(ctx, &model.UserFilter{Role: constant.UserRoleSeller, IsActive: &active})
	if err != nil {
		logger.Error("[GetStats] err userRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	ranking := make([]model.SellerRanking, 0, len(sellers))
	for _, seller := range sellers {
		appointments, err := s.appointmentRepo.Count(ctx, &model.AppointmentFilter{SellerID: seller.ID})
		if err != nil {
			logger.Error("[GetStats] err appointmentRepo.Count", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		proposals, err := s.countProposals(ctx, &model.ProposalFilter{UserID: seller.ID})
		if err != nil {
			return nil, err
		}
		closed, err := s.countProposals(ctx, &model.ProposalFilter{
			UserID:   seller.ID,
			Statuses: constant.ProposalClosedStatuses,
		})
		if err != nil {
			return nil, err
		}

		ranking = append(ranking, model.SellerRanking{
			SellerID:       seller.ID,
			SellerName:     seller.Name,
			Appointments:   appointments,
			Proposals:      proposals,
			Closed:         closed,
			ConversionRate: Rate(closed, proposals),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].ConversionRate > ranking[j].ConversionRate
	})
	if len(ranking) > constant.SellerRankingLimit {
		ranking = ranking[:constant.SellerRankingLimit]
	}
	return ranking, nil
}

func orPlaceholder(v *string, placeholder string) string {
	if v == nil || *v == "" {
		return placeholder
	}
	return *v
}
