package user

import (
	"context"
	"errors"
	"time"

	domainUser "huskify-backend/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Usecase struct {
	repo      domainUser.Repository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewUsecase(r domainUser.Repository, jwtSecret string, tokenTTL time.Duration) *Usecase {
	return &Usecase{repo: r, jwtSecret: []byte(jwtSecret), tokenTTL: tokenTTL}
}

type RegisterInput struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	EmpID      uint64 `json:"empId"`
	RoleID     uint64 `json:"roleId"`
	PlatformID uint64 `json:"-"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID         uint64    `json:"id"`
	Email      string    `json:"email"`
	Name       string    `json:"name"`
	EmpID      uint64    `json:"emp_id"`
	RoleID     uint64    `json:"role_id"`
	PlatformID uint64    `json:"platform_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type LoginOutput struct {
	Token      string `json:"data"`
	UserID     uint64 `json:"userId"`
	UserRole   uint64 `json:"userRole"`
	PlatformID uint64 `json:"platformId"`
	Name       string `json:"name"`
}

// Claims carried in the session token. RoleID rides along so the front end
// can branch without a second lookup.
type Claims struct {
	UserID     uint64 `json:"userId"`
	RoleID     uint64 `json:"roleId"`
	PlatformID uint64 `json:"platformId"`
	jwt.RegisteredClaims
}

func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*UserDTO, error) {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return nil, errors.New("email, password and name are required")
	}

	_, err := u.repo.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, domainUser.ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	roleID := in.RoleID
	if roleID == 0 {
		roleID = 1
	}
	usr := &domainUser.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		EmpID:        in.EmpID,
		RoleID:       roleID,
		PlatformID:   in.PlatformID,
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	dto := toUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	usr, err := u.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)) != nil {
		return nil, domainUser.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	claims := Claims{
		UserID:     usr.ID,
		RoleID:     usr.RoleID,
		PlatformID: usr.PlatformID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.jwtSecret)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		Token:      token,
		UserID:     usr.ID,
		UserRole:   usr.RoleID,
		PlatformID: usr.PlatformID,
		Name:       usr.Name,
	}, nil
}

// ParseToken verifies a session token and returns its claims.
func (u *Usecase) ParseToken(raw string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (u *Usecase) Get(ctx context.Context, userID uint64) (*UserDTO, error) {
	usr, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainUser.ErrNotFound
		}
		return nil, err
	}
	dto := toUserDTO(usr)
	return &dto, nil
}

func (u *Usecase) ListByPlatform(ctx context.Context, platformID uint64) ([]UserDTO, error) {
	users, err := u.repo.ListByPlatformID(ctx, platformID)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, len(users))
	for i := range users {
		out[i] = toUserDTO(&users[i])
	}
	return out, nil
}

func toUserDTO(u *domainUser.User) UserDTO {
	return UserDTO{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		EmpID:      u.EmpID,
		RoleID:     u.RoleID,
		PlatformID: u.PlatformID,
		CreatedAt:  u.CreatedAt,
	}
}
