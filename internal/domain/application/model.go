package application

const DefaultStatus = "applied"

type Application struct {
	ID        int64  `json:"id"`
	Owner     string `json:"owner"`
	Company   string `json:"company"`
	Role      string `json:"role"`
	Link      string `json:"link"`
	Date      string `json:"date"`
	Status    string `json:"status"`
	Location  string `json:"location"`
	Notes     string `json:"notes"`
	CreatedAt int64  `json:"createdAt"`
}

// Fields — поля заявки, как их присылает клиент при создании.
// Status — указатель: отсутствующий ключ получает значение по умолчанию,
// явная пустая строка сохраняется как есть.
type Fields struct {
	Company   string  `json:"company,omitempty"`
	Role      string  `json:"role,omitempty"`
	Link      string  `json:"link,omitempty"`
	Date      string  `json:"date,omitempty"`
	Status    *string `json:"status,omitempty"`
	Location  string  `json:"location,omitempty"`
	Notes     string  `json:"notes,omitempty"`
	CreatedAt int64   `json:"createdAt,omitempty"`
}

// Patch — частичное обновление; nil-поля не трогаются.
// id и owner клиентом не переопределяются, поэтому их здесь нет.
type Patch struct {
	Company   *string `json:"company,omitempty"`
	Role      *string `json:"role,omitempty"`
	Link      *string `json:"link,omitempty"`
	Date      *string `json:"date,omitempty"`
	Status    *string `json:"status,omitempty"`
	Location  *string `json:"location,omitempty"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt *int64  `json:"createdAt,omitempty"`
}
