package converter

import (
	"auth_backend/internal/api/dto/user"
	"auth_backend/internal/model"
)

func CreateUserRequestToModel(req *user.CreateUserRequest) *model.User {
	return &model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		TenantID:  req.TenantID,
	}
}

func UpdateUserRequestToModel(id int, req *user.UpdateUserRequest) *model.User {
	return &model.User{
		ID:        id,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Role:      req.Role,
		TenantID:  req.TenantID,
	}
}

// ToUserResponse - пароль наружу не отдается никогда
func ToUserResponse(u *model.User) user.UserResponse {
	return user.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		TenantID:  u.TenantID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func ToUserResponses(users []model.User) []user.UserResponse {
	result := make([]user.UserResponse, len(users))
	for i, u := range users {
		result[i] = ToUserResponse(&u)
	}
	return result
}
