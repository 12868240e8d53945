package dto

type IndexResp struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}
