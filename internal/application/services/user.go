package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"file-storage-api/internal/application/ports"
	domain "file-storage-api/internal/domain/user"
	"file-storage-api/internal/infrastructure/mq"
)

type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             rabbit,
		mCounter:       mCounter,
	}
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = string(hash)

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionUserCreated,
			ActorID: uRet.ID.String(),
			Payload: uRet.Username,
		}
	}

	us.mCounter.WithLabelValues("users_created_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context, page int) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx, page)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) RecordLogin(ctx context.Context, id domain.ID) error {
	return us.userRepository.TouchLastLogin(ctx, id)
}
