package user

import "time"

type CreateUserRequest struct {
	IdentityUID       string  `json:"identityUid" binding:"required"`
	FullName          string  `json:"fullName"`
	Email             string  `json:"email" binding:"required,email"`
	PhoneNumber       *string `json:"phoneNumber"`
	Role              string  `json:"role" binding:"required"`
	InsuranceEntityID int64   `json:"insuranceEntityId" binding:"required,gt=0"`
	EntityType        string  `json:"entityType" binding:"required,oneof=company broker"`
	Status            string  `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LogoutRequest struct {
	UID string `json:"uid"`
}

type UserResponse struct {
	ID                int64     `json:"id"`
	IdentityUID       string    `json:"identityUid"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	PhoneNumber       *string   `json:"phoneNumber,omitempty"`
	Role              string    `json:"role"`
	InsuranceEntityID int64     `json:"insuranceEntityId"`
	EntityType        string    `json:"entityType"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		IdentityUID:       u.IdentityUID,
		FullName:          u.FullName,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		Role:              u.Role,
		InsuranceEntityID: u.InsuranceEntityID,
		EntityType:        u.EntityType,
		Status:            u.Status,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func mapToResponses(users []User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i, u := range users {
		out[i] = mapToResponse(u)
	}
	return out
}
