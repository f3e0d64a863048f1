package auth

import "time"

type RegisterRequest struct {
	Username   string `json:"username" binding:"required,min=3,max=100"`
	Email      string `json:"email" binding:"omitempty,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Role       string `json:"role" binding:"required,oneof=admin hr employee"`
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email,omitempty"`
	Role       string `json:"role,omitempty"`
	EmployeeID string `json:"employee_id,omitempty"`
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      AuthResponse
}

type LoginResponse struct {
	User      AuthResponse `json:"user"`
	ExpiresAt time.Time    `json:"expires_at"`
}

func toAuthResponse(u *User) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		Role:       u.Role,
		EmployeeID: u.EmployeeIDString(),
	}
}
