package model

import "time"

// Movie mirrors a row of the `movies` table. Responses expose rows
// field-for-field, so the json tags follow the column names.
//
// IsSaved is only populated when a listing is annotated for a specific
// user; it is omitted from the JSON otherwise.
type Movie struct {
	ID          int64     `json:"id"`          // movies.id
	Title       string    `json:"title"`       // movies.title
	Year        int       `json:"year"`        // movies.year
	Genre       string    `json:"genre"`       // movies.genre
	Rating      float64   `json:"rating"`      // movies.rating (numeric, serialized as float)
	Description string    `json:"description"` // movies.description
	ImageURL    string    `json:"image_url"`   // movies.image_url
	VideoURL    string    `json:"video_url"`   // movies.video_url
	Hashtags    []string  `json:"hashtags"`    // movies.hashtags (text[])
	CreatedAt   time.Time `json:"created_at"`  // movies.created_at
	UpdatedAt   time.Time `json:"updated_at"`  // movies.updated_at
	IsSaved     *bool     `json:"is_saved,omitempty"`
}

// NewMovie carries the values for a movie insert after defaults have
// been applied. Every field is written; the database generates the id
// and both timestamps.
type NewMovie struct {
	Title       string
	Year        int
	Genre       string
	Rating      float64
	Description string
	ImageURL    string
	VideoURL    string
	Hashtags    []string
}

// MoviePatch describes a partial movie update. A nil field is absent
// from the request and keeps its stored value. The json tags use the
// request payload names, which differ from the column names for the
// two URL fields.
type MoviePatch struct {
	Title       *string   `json:"title"`
	Year        *int      `json:"year"`
	Genre       *string   `json:"genre"`
	Rating      *float64  `json:"rating"`
	Description *string   `json:"description"`
	ImageURL    *string   `json:"imageUrl"`
	VideoURL    *string   `json:"videoUrl"`
	Hashtags    *[]string `json:"hashtags"`
}
