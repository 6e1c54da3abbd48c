package entity

type Player struct {
	ID     string `json:"id"`
	Pseudo string `json:"pseudo"`
}
