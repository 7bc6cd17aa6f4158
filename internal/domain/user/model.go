package user

type User struct {
	Name          string
	Location      string
	PINHash       string // пустая строка = PIN не назначен
	Token         string // пустая строка = токен не выдан
	TokenIssuedAt *int64
	CreatedAt     int64
	LastLogin     *int64
	LastSeen      *int64
}

// Profile — публичное представление пользователя.
// Хэш PIN и токен наружу не отдаются; токен появляется только в ответе логина.
type Profile struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	CreatedAt int64  `json:"createdAt"`
	LastLogin *int64 `json:"lastLogin"`
	LastSeen  *int64 `json:"lastSeen"`
	PinSet    bool   `json:"pinSet"`
	Token     string `json:"token,omitempty"`
}

func (u User) Profile() Profile {
	return Profile{
		Name:      u.Name,
		Location:  u.Location,
		CreatedAt: u.CreatedAt,
		LastLogin: u.LastLogin,
		LastSeen:  u.LastSeen,
		PinSet:    u.PINHash != "",
	}
}

func (u User) ProfileWithToken() Profile {
	p := u.Profile()
	p.Token = u.Token
	return p
}

// Overview — ответ админского списка пользователей
type Overview struct {
	Users                  []OverviewUser `json:"users"`
	UnassignedApplications int64          `json:"unassignedApplications"`
	TotalApplications      int64          `json:"totalApplications"`
}

type OverviewUser struct {
	Profile
	TotalApplications int64 `json:"totalApplications"`
}
