package folder

type CreateRequest struct {
	Path string `json:"path"`
}
