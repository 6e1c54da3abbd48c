package rest

type lockRequest struct {
	LockedIndexes []int `json:"locked_indexes"`
}

type scoreRequest struct {
	Category string `json:"category"`
}

type createPlayerRequest struct {
	Pseudo string `json:"pseudo"`
}

type errorResponse struct {
	Error string `json:"error"`
}
