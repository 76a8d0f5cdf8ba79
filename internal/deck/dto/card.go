package dto

type CardCreateInput struct {
	QType    string   `json:"qtype"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options"`
}

type CardUpdateInput struct {
	Question *string  `json:"question"`
	Answer   *string  `json:"answer"`
	Options  []string `json:"options"`
}

type CardOutput struct {
	ID       int64    `json:"id"`
	DeckID   int64    `json:"deck_id"`
	QType    string   `json:"qtype"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Options  []string `json:"options,omitempty"`
}
