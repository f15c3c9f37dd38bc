package tenant

import "time"

type CreateTenantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type UpdateTenantRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type TenantResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
