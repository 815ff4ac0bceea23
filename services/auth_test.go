package services

import (
	"net/http"
	"strings"
	"testing"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/models"
)

func signup(username string) dto.SignupRequest {
	return dto.SignupRequest{
		Username:    username,
		Password:    "s3cret-pass",
		Email:       username + "@example.com",
		PhoneNumber: "+919876543210",
		Address:     "12 Green Street",
	}
}

func TestSignupAlwaysCustomer(t *testing.T) {
	f := newFixture(t)

	u, err := f.svc.Auth.Signup(f.ctx, signup("alice"))
	if err != nil {
		t.Fatalf("Expected signup to succeed, got %v", err)
	}
	if u.Role != models.RoleCustomer {
		t.Errorf("Expected CUSTOMER, got %s", u.Role)
	}
	if u.PasswordHash == "s3cret-pass" || u.PasswordHash == "" {
		t.Error("Expected password to be hashed")
	}

	_, err = f.svc.Auth.Signup(f.ctx, signup("alice"))
	wantCode(t, err, apperr.CodeUserExists)
	wantStatus(t, err, http.StatusConflict)
}

func TestSignupRequiresDetails(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name   string
		mutate func(*dto.SignupRequest)
	}{
		{"no username", func(r *dto.SignupRequest) { r.Username = " " }},
		{"no password", func(r *dto.SignupRequest) { r.Password = "" }},
		{"long password", func(r *dto.SignupRequest) { r.Password = strings.Repeat("a", 73) }},
		{"no email", func(r *dto.SignupRequest) { r.Email = "" }},
		{"bad email", func(r *dto.SignupRequest) { r.Email = "not-an-email" }},
		{"no phone", func(r *dto.SignupRequest) { r.PhoneNumber = "" }},
		{"no address", func(r *dto.SignupRequest) { r.Address = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signup("bob")
			tt.mutate(&req)
			_, err := f.svc.Auth.Signup(f.ctx, req)
			wantCode(t, err, apperr.CodeInvalidUserDetails)
		})
	}
}

func TestSignupPasswordOverBcryptLimit(t *testing.T) {
	f := newFixture(t)

	// 30 characters, 90 bytes: within the character limit but too long to hash.
	req := signup("bob")
	req.Password = strings.Repeat("€", 30)
	_, err := f.svc.Auth.Signup(f.ctx, req)
	wantCode(t, err, apperr.CodeInvalidUserDetails)
	wantStatus(t, err, http.StatusBadRequest)

	req.Password = strings.Repeat("a", 72)
	if _, err := f.svc.Auth.Signup(f.ctx, req); err != nil {
		t.Fatalf("Expected 72-byte password to be accepted, got %v", err)
	}
}

func TestSignin(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.Auth.Signup(f.ctx, signup("alice")); err != nil {
		t.Fatalf("signup: %v", err)
	}

	u, err := f.svc.Auth.Signin(f.ctx, dto.SigninRequest{Username: "alice", Password: "s3cret-pass"})
	if err != nil || u.Username != "alice" {
		t.Fatalf("Expected signin to succeed, got %v %v", u, err)
	}

	_, err = f.svc.Auth.Signin(f.ctx, dto.SigninRequest{Username: "alice", Password: "wrong"})
	wantCode(t, err, apperr.CodeInvalidCredentials)
	wantStatus(t, err, http.StatusUnauthorized)

	_, err = f.svc.Auth.Signin(f.ctx, dto.SigninRequest{Username: "ghost", Password: "s3cret-pass"})
	wantCode(t, err, apperr.CodeInvalidCredentials)
}

func TestCreateStaffAccount(t *testing.T) {
	f := newFixture(t)
	admin, err := f.svc.Auth.BootstrapAdmin(f.ctx, signup("root"))
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if admin.Role != models.RoleAdmin {
		t.Fatalf("Expected ADMIN, got %s", admin.Role)
	}
	alice := f.user("alice", models.RoleCustomer)

	courier, err := f.svc.Auth.CreateStaffAccount(f.ctx, admin, dto.StaffAccountRequest{SignupRequest: signup("carl"), Role: "delivery_person"})
	if err != nil {
		t.Fatalf("Expected staff account, got %v", err)
	}
	if courier.Role != models.RoleDeliveryPerson {
		t.Errorf("Expected DELIVERY_PERSON, got %s", courier.Role)
	}

	_, err = f.svc.Auth.CreateStaffAccount(f.ctx, admin, dto.StaffAccountRequest{SignupRequest: signup("dave"), Role: "CUSTOMER"})
	wantCode(t, err, apperr.CodeInvalidRole)

	_, err = f.svc.Auth.CreateStaffAccount(f.ctx, alice, dto.StaffAccountRequest{SignupRequest: signup("eve"), Role: "ADMIN"})
	wantCode(t, err, apperr.CodeAccessDenied)

	_, err = f.svc.Auth.CreateStaffAccount(f.ctx, admin, dto.StaffAccountRequest{SignupRequest: signup("carl"), Role: "ADMIN"})
	wantCode(t, err, apperr.CodeUserExists)
}
