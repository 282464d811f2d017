package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID            string     `db:"id"`
	Position      int        `db:"position"`
	Name          string     `db:"name"`
	Brand         string     `db:"brand"`
	Category      string     `db:"category"`
	FragranceType string     `db:"fragrance_type"`
	Price         int64      `db:"price"`
	Description   string     `db:"description"`
	ImageRef      string     `db:"image_ref"`
	IsNew         bool       `db:"is_new"`
	IsBestSeller  bool       `db:"is_best_seller"`
	Rating        float64    `db:"rating"`
	Notes         []string   `db:"notes"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at"`
}

// ReviewModel представляет запись таблицы reviews в PostgreSQL.
type ReviewModel struct {
	ID       string `db:"id"`
	Position int    `db:"position"`
	Text     string `db:"text"`
	Rating   int    `db:"rating"`
	Name     string `db:"name"`
	Location string `db:"location"`
}
