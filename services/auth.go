package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lpg-delivery-api/apperr"
	"lpg-delivery-api/authz"
	"lpg-delivery-api/dto"
	"lpg-delivery-api/models"
	"lpg-delivery-api/repository"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

var validate = validator.New()

type AuthService struct {
	Deps
	cost int
}

func NewAuthService(d Deps, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{Deps: d.withDefaults("auth"), cost: bcryptCost}
}

func normalizeSignup(req *dto.SignupRequest) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.PhoneNumber = strings.TrimSpace(req.PhoneNumber)
	req.Address = strings.TrimSpace(req.Address)
}

func checkSignup(req dto.SignupRequest) error {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fe.Field())
			}
			return apperr.Business(apperr.CodeInvalidUserDetails,
				"Invalid user details: "+strings.Join(fields, ", "))
		}
		return err
	}
	return nil
}

// createAccount hashes the password and stores a user with role.
func (s *AuthService) createAccount(ctx context.Context, req dto.SignupRequest, role models.UserRole) (*models.User, error) {
	normalizeSignup(&req)
	if err := checkSignup(req); err != nil {
		return nil, err
	}

	users := repository.NewUsers(s.DB)
	taken, err := users.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(apperr.CodeUserExists, "User already exists with username: "+req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, apperr.Business(apperr.CodeInvalidUserDetails, "Invalid user details: Password")
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &models.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		Address:      req.Address,
		Role:         role,
		CreatedAt:    s.now(),
	}
	if err := users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict(apperr.CodeUserExists, "User already exists with username: "+req.Username)
		}
		return nil, err
	}
	s.reqLog(ctx).Info("account created", "username", u.Username, "role", u.Role)
	return u, nil
}

// Signup registers a customer. The role is always CUSTOMER.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	u, err := s.createAccount(ctx, req, models.RoleCustomer)
	if err != nil {
		return nil, s.fail(ctx, "signup", err)
	}
	return u, nil
}

// Signin checks the credentials and returns the matching user.
func (s *AuthService) Signin(ctx context.Context, req dto.SigninRequest) (*models.User, error) {
	invalid := apperr.Unauthenticated(apperr.CodeInvalidCredentials, "Invalid username or password")

	u, err := repository.NewUsers(s.DB).FindByUsername(ctx, strings.TrimSpace(req.Username))
	if errors.Is(err, repository.ErrNotFound) {
		return nil, s.fail(ctx, "signin", invalid)
	}
	if err != nil {
		return nil, s.fail(ctx, "signin", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, s.fail(ctx, "signin", invalid)
	}
	return u, nil
}

// CreateStaffAccount lets an admin create ADMIN or DELIVERY_PERSON accounts.
func (s *AuthService) CreateStaffAccount(ctx context.Context, actor *models.User, req dto.StaffAccountRequest) (*models.User, error) {
	if err := authz.Authorize(authz.OpCreateStaffAccount, actor); err != nil {
		return nil, s.fail(ctx, "create_staff_account", err)
	}
	role := models.UserRole(strings.ToUpper(strings.TrimSpace(req.Role)))
	if role != models.RoleAdmin && role != models.RoleDeliveryPerson {
		return nil, s.fail(ctx, "create_staff_account",
			apperr.Business(apperr.CodeInvalidRole, "Role must be ADMIN or DELIVERY_PERSON"))
	}
	u, err := s.createAccount(ctx, req.SignupRequest, role)
	if err != nil {
		return nil, s.fail(ctx, "create_staff_account", err)
	}
	return u, nil
}

// BootstrapAdmin creates an ADMIN without an acting user. Only the CLI
// calls it, so a fresh database can be administered.
func (s *AuthService) BootstrapAdmin(ctx context.Context, req dto.SignupRequest) (*models.User, error) {
	u, err := s.createAccount(ctx, req, models.RoleAdmin)
	if err != nil {
		return nil, s.fail(ctx, "bootstrap_admin", err)
	}
	return u, nil
}

// Profile returns the acting user.
func (s *AuthService) Profile(ctx context.Context, actor *models.User) (*models.User, error) {
	if err := authz.Authorize(authz.OpViewProfile, actor); err != nil {
		return nil, s.fail(ctx, "view_profile", err)
	}
	return actor, nil
}
