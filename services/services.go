// Package services implements the business workflows. Every workflow
// takes the acting user explicitly, checks the role policy first and
// runs its reads and writes inside one gorm transaction.
package services

import (
	"context"
	"log/slog"
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/logger"

	"gorm.io/gorm"
)

// Deps are the collaborators shared by every service.
type Deps struct {
	DB  *gorm.DB
	Log *slog.Logger
	Now func() time.Time

	component string
}

func (d Deps) withDefaults(component string) Deps {
	d.component = component
	if d.Log == nil {
		d.Log = logger.Discard()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	return d
}

// now is the current instant in UTC at whole-second precision.
func (d Deps) now() time.Time {
	return d.Now().UTC().Truncate(time.Second)
}

func (d Deps) reqLog(ctx context.Context) *slog.Logger {
	return logger.FromContext(ctx, d.Log).With("component", d.component)
}

// fail logs err and returns it as an *apperr.Error. Business faults are
// logged at Warn, anything else at Error.
func (d Deps) fail(ctx context.Context, op string, err error) error {
	e := apperr.From(err)
	log := d.reqLog(ctx).With("op", op)
	if e.Kind == apperr.KindInternal {
		log.Error("unexpected failure", "error", err)
	} else {
		log.Warn("request rejected", "code", e.Code, "reason", e.Message)
	}
	return e
}

// Services bundles every workflow for wiring into the HTTP layer.
type Services struct {
	Auth      *AuthService
	Cylinders *CylinderService
	Orders    *OrderService
	Delivery  *DeliveryService
	Feedback  *FeedbackService
}

func New(d Deps, bcryptCost int) *Services {
	return &Services{
		Auth:      NewAuthService(d, bcryptCost),
		Cylinders: NewCylinderService(d),
		Orders:    NewOrderService(d),
		Delivery:  NewDeliveryService(d),
		Feedback:  NewFeedbackService(d),
	}
}
