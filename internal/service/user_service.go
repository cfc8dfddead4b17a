package service

import (
	"errors"

	"go-laundry-console/internal/model"
	"go-laundry-console/internal/repository"
	"go-laundry-console/internal/store"
	"go-laundry-console/pkg/validator"
)

var ErrUsernameExists = errors.New("username already exists")

type UserService interface {
	GetAll() ([]model.UserResponse, error)
	GetByID(id int64) (*model.UserResponse, error)
	Create(req *CreateUserRequest) (*model.UserResponse, error)
	Update(id int64, req *UpdateUserRequest) (*model.UserResponse, error)
	Delete(id int64) error
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,role"`
}

type UpdateUserRequest struct {
	Name     string  `json:"name" validate:"required"`
	Username string  `json:"username" validate:"required"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	Role     string  `json:"role" validate:"required,role"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetAll() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	responses := make([]model.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, users[i].ToResponse())
	}
	return responses, nil
}

func (s *userService) GetByID(id int64) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Create(req *CreateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
		return nil, ErrUsernameExists
	}

	user := &model.User{
		Name:     req.Name,
		Username: req.Username,
		Role:     model.Role(req.Role),
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Update(id int64, req *UpdateUserRequest) (*model.UserResponse, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, validationError(errs)
	}

	user, err := s.userRepo.FindByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	if req.Username != user.Username {
		if existing, _ := s.userRepo.FindByUsername(req.Username); existing != nil {
			return nil, ErrUsernameExists
		}
	}

	user.Name = req.Name
	user.Username = req.Username
	user.Role = model.Role(req.Role)
	if req.Password != nil {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Update(id, user); err != nil {
		return nil, err
	}

	resp := user.ToResponse()
	return &resp, nil
}

func (s *userService) Delete(id int64) error {
	return s.userRepo.Delete(id)
}
