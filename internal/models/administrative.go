package models

import "time"

// State — административная единица верхнего уровня
type State struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// District принадлежит штату; удаление штата каскадно удаляет округа
type District struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	StateID   string    `json:"state_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Town — населённый пункт с координатами; ссылки на штат и округ
// обнуляются при удалении родителя, сам город не удаляется
type Town struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	StateID    string    `json:"state_id,omitempty"`
	DistrictID string    `json:"district_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ResolvedLocation — результат разрешения текстового упоминания места
type ResolvedLocation struct {
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	TownID     string  `json:"town_id,omitempty"`
	DistrictID string  `json:"district_id,omitempty"`
	StateID    string  `json:"state_id,omitempty"`
	MatchedBy  string  `json:"matched_by"` // town | district | state_centroid
}
