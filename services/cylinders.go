package services

import (
	"context"
	"errors"
	"strings"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/authz"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"

	"gorm.io/gorm"
)

// CylinderService maintains the stock ledger.
type CylinderService struct {
	Deps
}

func NewCylinderService(d Deps) *CylinderService {
	return &CylinderService{Deps: d.withDefaults("stock")}
}

// CreateOrUpdateCylinder adds stock for a (type, weight) pair. An existing
// row gets its stock increased and its price overwritten; otherwise a new
// row is created. created reports which happened.
func (s *CylinderService) CreateOrUpdateCylinder(ctx context.Context, actor *models.User, req dto.CylinderRequest) (c *models.Cylinder, created bool, err error) {
	const op = "upsert_cylinder"
	if err := authz.Authorize(authz.OpUpsertCylinder, actor); err != nil {
		return nil, false, s.fail(ctx, op, err)
	}
	typ := models.CylinderType(strings.ToUpper(strings.TrimSpace(req.Type)))
	if !typ.Matches(req.Weight) {
		return nil, false, s.fail(ctx, op, apperr.Business(apperr.CodeInvalidCylinder,
			"Invalid cylinder type or weight. Only COMMERCIAL (18.5 kg) or DOMESTIC (14.5 kg) are allowed."))
	}
	if req.Price.IsNegative() || req.StockQuantity < 0 {
		return nil, false, s.fail(ctx, op, apperr.Business(apperr.CodeInvalidStockValues,
			"Price and stock quantity must not be negative"))
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		repo := repository.NewCylinders(tx)
		existing, err := repo.FindByTypeAndWeight(ctx, typ, req.Weight)
		switch {
		case errors.Is(err, repository.ErrNotFound):
			c = &models.Cylinder{Type: typ, Weight: req.Weight, Price: req.Price, StockQuantity: req.StockQuantity}
			created = true
			return repo.Create(ctx, c)
		case err != nil:
			return err
		}
		if err := repo.Restock(ctx, existing.ID, req.StockQuantity, req.Price); err != nil {
			return err
		}
		c, err = repo.FindByID(ctx, existing.ID)
		return err
	})
	if err != nil {
		return nil, false, s.fail(ctx, op, err)
	}
	s.reqLog(ctx).Info("cylinder stock updated",
		"type", c.Type, "weight", c.Weight, "stock", c.StockQuantity, "created", created)
	return c, created, nil
}

// GetCylindersByType lists the stock rows of one type. An empty result is
// reported as not found.
func (s *CylinderService) GetCylindersByType(ctx context.Context, actor *models.User, typ string) ([]models.Cylinder, error) {
	const op = "list_cylinders"
	if err := authz.Authorize(authz.OpListCylinders, actor); err != nil {
		return nil, s.fail(ctx, op, err)
	}
	t := models.CylinderType(strings.ToUpper(strings.TrimSpace(typ)))
	if !t.Valid() {
		return nil, s.fail(ctx, op, apperr.Business(apperr.CodeInvalidCylinderType,
			"Invalid cylinder type: "+typ))
	}
	cs, err := repository.NewCylinders(s.DB).ListByType(ctx, t)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}
	if len(cs) == 0 {
		return nil, s.fail(ctx, op, apperr.NotFound(apperr.CodeCylindersNotFound,
			"No cylinders found for type: "+string(t)))
	}
	return cs, nil
}
