package event

// Типы событий аудита
const (
	TypeLogin           = "login"
	TypeCreate          = "create"
	TypeUpdate          = "update"
	TypeDelete          = "delete"
	TypeSeed            = "seed"
	TypeAdminUserCreate = "admin_user_create"
	TypeAdminUserUpdate = "admin_user_update"
	TypeAdminUserDelete = "admin_user_delete"
)

type Event struct {
	Type      string `json:"type"`
	Owner     string `json:"owner,omitempty"`
	ItemID    *int64 `json:"id,omitempty"`
	Count     *int64 `json:"count,omitempty"`
	IP        string `json:"ip,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
