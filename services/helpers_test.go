package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/dbtest"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Wednesday 14 Feb 2024, 10:00 UTC.
var wednesday = time.Date(2024, 2, 14, 10, 0, 0, 0, time.UTC)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	c.t = t
	c.mu.Unlock()
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	t     *testing.T
	ctx   context.Context
	db    *gorm.DB
	clock *fakeClock
	svc   *Services
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := dbtest.Open(t)
	clock := &fakeClock{t: wednesday}
	return &fixture{
		t:     t,
		ctx:   context.Background(),
		db:    db,
		clock: clock,
		svc:   New(Deps{DB: db, Now: clock.Now}, bcrypt.MinCost),
	}
}

func (f *fixture) user(username string, role models.UserRole) *models.User {
	f.t.Helper()
	u := &models.User{
		Username:     username,
		PasswordHash: "unused",
		Email:        username + "@example.com",
		PhoneNumber:  "98" + username,
		Address:      "1 Gas Street",
		Role:         role,
	}
	if err := repository.NewUsers(f.db).Create(f.ctx, u); err != nil {
		f.t.Fatalf("seed user %s: %v", username, err)
	}
	return u
}

func (f *fixture) cylinder(typ models.CylinderType, stock int, price int64) *models.Cylinder {
	f.t.Helper()
	w, _ := typ.Capacity()
	c := &models.Cylinder{Type: typ, Weight: w, Price: decimal.NewFromInt(price), StockQuantity: stock}
	if err := repository.NewCylinders(f.db).Create(f.ctx, c); err != nil {
		f.t.Fatalf("seed cylinder: %v", err)
	}
	return c
}

func (f *fixture) stock(id uint) int {
	f.t.Helper()
	c, err := repository.NewCylinders(f.db).FindByID(f.ctx, id)
	if err != nil {
		f.t.Fatalf("load cylinder %d: %v", id, err)
	}
	return c.StockQuantity
}

func (f *fixture) order(id uint) *models.Order {
	f.t.Helper()
	o, err := repository.NewOrders(f.db).FindByID(f.ctx, id)
	if err != nil {
		f.t.Fatalf("load order %d: %v", id, err)
	}
	return o
}

func wantCode(t *testing.T, err error, code string) {
	t.Helper()
	if !apperr.HasCode(err, code) {
		t.Fatalf("Expected error code %s, got %v", code, err)
	}
}

func wantStatus(t *testing.T, err error, status int) {
	t.Helper()
	if got := apperr.From(err).HTTPStatus(); got != status {
		t.Fatalf("Expected HTTP status %d, got %d (%v)", status, got, err)
	}
}
