package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"

	"jobtracker/internal/domain/event"
)

const tokenBytes = 24 // 192 бита энтропии

type Servicer interface {
	Authenticate(ctx context.Context, token string) (User, error)
	Login(ctx context.Context, name, pin, location, ip string) (User, error)
	Set(ctx context.Context, name, location, pin, ip string) (User, error)
	Delete(ctx context.Context, name, ip string) error
	Overview(ctx context.Context) (Overview, error)
}

// ApplicationCounter отдает количество заявок, сгруппированное по владельцу.
// Реализуется репозиторием заявок.
type ApplicationCounter interface {
	CountGrouped(ctx context.Context) (map[string]int64, error)
}

type Service struct {
	repo   Repository
	counts ApplicationCounter
	events event.Servicer
	pepper string
	log    *slog.Logger
	now    func() int64
}

func NewService(repo Repository, counts ApplicationCounter, events event.Servicer, pepper string, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		counts: counts,
		events: events,
		pepper: pepper,
		log:    log.With("component", "user_service"),
		now:    func() int64 { return time.Now().UnixMilli() },
	}
}

// Authenticate находит пользователя по токену и отмечает lastSeen.
// Ошибка обновления lastSeen не валит запрос.
func (s *Service) Authenticate(ctx context.Context, token string) (User, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return User{}, ErrUnauthorized
	}

	u, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrUnauthorized
		}
		return User{}, fmt.Errorf("find by token: %w", err)
	}

	now := s.now()
	if err := s.repo.TouchLastSeen(ctx, u.Name, now); err != nil {
		s.log.Warn("last seen touch failed", "name", u.Name, "error", err)
	} else {
		u.LastSeen = &now
	}

	return u, nil
}

func (s *Service) Login(ctx context.Context, name, pin, location, ip string) (User, error) {
	u, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("find by name: %w", err)
	}
	if u.PINHash == "" {
		return User{}, ErrNotConfigured
	}
	if !s.verifyPIN(pin, u.PINHash) {
		return User{}, ErrInvalidAuth
	}

	token, err := newToken()
	if err != nil {
		return User{}, fmt.Errorf("generate token: %w", err)
	}

	u, err = s.repo.IssueToken(ctx, name, token, s.now(), location)
	if err != nil {
		return User{}, fmt.Errorf("issue token: %w", err)
	}

	if err := s.events.Record(ctx, event.Event{Type: event.TypeLogin, Owner: name, IP: ip}); err != nil {
		return User{}, err
	}
	return u, nil
}

// Set создает пользователя (PIN обязателен) либо обновляет существующего.
// Новый PIN отзывает выданный токен.
func (s *Service) Set(ctx context.Context, name, location, pin, ip string) (User, error) {
	u, err := s.repo.FindByName(ctx, name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return User{}, fmt.Errorf("find by name: %w", err)
	}

	action := event.TypeAdminUserUpdate
	if errors.Is(err, ErrNotFound) {
		if pin == "" {
			return User{}, ErrPinRequired
		}
		hash, err := s.hashPIN(pin)
		if err != nil {
			return User{}, err
		}
		u = User{
			Name:      name,
			Location:  location,
			PINHash:   hash,
			CreatedAt: s.now(),
		}
		if err := s.repo.Create(ctx, u); err != nil {
			return User{}, fmt.Errorf("create user: %w", err)
		}
		action = event.TypeAdminUserCreate
	} else {
		if location != "" {
			if err := s.repo.SetLocation(ctx, name, location); err != nil {
				return User{}, fmt.Errorf("set location: %w", err)
			}
		}
		if pin != "" {
			hash, err := s.hashPIN(pin)
			if err != nil {
				return User{}, err
			}
			if err := s.repo.SetPIN(ctx, name, hash); err != nil {
				return User{}, fmt.Errorf("set pin: %w", err)
			}
		}
		u, err = s.repo.FindByName(ctx, name)
		if err != nil {
			return User{}, fmt.Errorf("reload user: %w", err)
		}
	}

	if err := s.events.Record(ctx, event.Event{Type: action, Owner: name, IP: ip}); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, name, ip string) error {
	if err := s.repo.DeleteCascade(ctx, name); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return s.events.Record(ctx, event.Event{Type: event.TypeAdminUserDelete, Owner: name, IP: ip})
}

func (s *Service) Overview(ctx context.Context) (Overview, error) {
	counts, err := s.counts.CountGrouped(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("count applications: %w", err)
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return Overview{}, fmt.Errorf("list users: %w", err)
	}

	overview := Overview{Users: make([]OverviewUser, 0, len(users))}
	for _, u := range users {
		overview.Users = append(overview.Users, OverviewUser{
			Profile:           u.Profile(),
			TotalApplications: counts[u.Name],
		})
	}
	overview.UnassignedApplications = counts[""]
	for _, n := range counts {
		overview.TotalApplications += n
	}
	return overview, nil
}

func (s *Service) hashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(s.pepper+pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash pin: %w", err)
	}
	return string(hash), nil
}

func (s *Service) verifyPIN(pin, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(s.pepper+pin)) == nil
}

func newToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
