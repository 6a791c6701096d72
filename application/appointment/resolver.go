package appointment

import (
	"context"
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
	"github.com/muhammadheryan/heating-backoffice/model"
	appointmentrepo "github.com/muhammadheryan/heating-backoffice/repository/appointment"
	userrepo "github.com/muhammadheryan/heating-backoffice/repository/user"
	"github.com/muhammadheryan/heating-backoffice/utils/metrics"
)

const (
	outcomeAvailable = "available"
	outcomeFallback  = "fallback"
	outcomeNone      = "none"
)

// SellerResolver picks a seller of a store for a date and "HH:MM" slot.
type SellerResolver interface {
	// Resolve returns nil when the store has no active seller.
	Resolve(ctx context.Context, storeID string, date time.Time, slot string) (*string, error)
}

type sellerResolver struct {
	userRepo        userrepo.UserRepository
	appointmentRepo appointmentrepo.AppointmentRepository
	metrics         *metrics.Metrics
}

// NewSellerResolver returns the first-available resolver. m may be nil.
func NewSellerResolver(userRepo userrepo.UserRepository, appointmentRepo appointmentrepo.AppointmentRepository, m *metrics.Metrics) SellerResolver {
	return &sellerResolver{userRepo: userRepo, appointmentRepo: appointmentRepo, metrics: m}
}

// Resolve returns the first seller, in storage order, without an appointment in the slot.
// When every seller is busy it falls back to the first seller, so double-booking is possible.
func (r *sellerResolver) Resolve(ctx context.Context, storeID string, date time.Time, slot string) (*string, error) {
	active := true
	sellers, err := r.userRepo.List(ctx, &model.UserFilter{
		StoreID:  storeID,
		Role:     constant.UserRoleSeller,
		IsActive: &active,
	})
	if err != nil {
		return nil, err
	}
	if len(sellers) == 0 {
		r.observe(outcomeNone)
		return nil, nil
	}

	ids := make([]string, 0, len(sellers))
	for _, s := range sellers {
		ids = append(ids, s.ID)
	}

	busy, err := r.appointmentRepo.List(ctx, &model.AppointmentFilter{
		Date:      &date,
		Time:      slot,
		SellerIDs: ids,
	})
	if err != nil {
		return nil, err
	}

	busySet := make(map[string]struct{}, len(busy))
	for _, a := range busy {
		if a.SellerID != nil {
			busySet[*a.SellerID] = struct{}{}
		}
	}

	for _, id := range ids {
		if _, ok := busySet[id]; !ok {
			r.observe(outcomeAvailable)
			return &id, nil
		}
	}

	r.observe(outcomeFallback)
	first := ids[0]
	return &first, nil
}

func (r *sellerResolver) observe(outcome string) {
	if r.metrics == nil {
		return
	}
	r.metrics.AutoAssigned.WithLabelValues(outcome).Inc()
}
