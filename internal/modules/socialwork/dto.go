package socialwork

type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	MediaIDs    []string `json:"mediaIds"`
}
