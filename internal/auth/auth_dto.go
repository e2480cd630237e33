package auth

// LoginRequest accepts the account in three forms: "tenant/account",
// "account@tenant", or a bare account when it is globally unique.
type LoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type UserResponse struct {
	ID          string  `json:"id"`
	Account     string  `json:"account"`
	DisplayName *string `json:"display_name,omitempty"`
	Role        string  `json:"role"`
}

type TenantResponse struct {
	ID   string `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

type LoginResponse struct {
	Token  string         `json:"token"`
	User   UserResponse   `json:"user"`
	Tenant TenantResponse `json:"tenant"`
}

type MeResponse struct {
	User   UserResponse   `json:"user"`
	Tenant TenantResponse `json:"tenant"`
}
