package mom

// GenerateResponse is the success body of POST /api/generate-mom
type GenerateResponse struct {
	Format  string `json:"format" example:"markdown"`
	Minutes string `json:"minutes"`
}
