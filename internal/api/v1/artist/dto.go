package artist

// CreateArtistRequest defines the artist creation body.
type CreateArtistRequest struct {
	ArtistID   int      `json:"artistid" binding:"required"`
	FirstName  string   `json:"first_name" binding:"required"`
	LastName   string   `json:"last_name" binding:"required"`
	WikiURL    string   `json:"wiki_url"`
	ProfileURL string   `json:"profile_url"`
	Movies     []string `json:"movies"`
}

// UpdateArtistRequest defines the mutable artist fields.
type UpdateArtistRequest struct {
	FirstName  *string   `json:"first_name,omitempty"`
	LastName   *string   `json:"last_name,omitempty"`
	WikiURL    *string   `json:"wiki_url,omitempty"`
	ProfileURL *string   `json:"profile_url,omitempty"`
	Movies     *[]string `json:"movies,omitempty"`
}
