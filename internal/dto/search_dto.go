package dto

type SearchRequest struct {
	Query  string `query:"q" validate:"required,min=2"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

type SearchBookResult struct {
	Id    uint   `json:"id"`
	Label string `json:"label"`
	About string `json:"about"`
}

type SearchInterpretationResult struct {
	Id        uint   `json:"id"`
	Text      string `json:"text"`
	SectionId uint   `json:"section_id"`
}

type SearchUserResult struct {
	Id       uint   `json:"id"`
	Username string `json:"username"`
}

// SearchCounts holds full match counts, independent of the returned page.
type SearchCounts struct {
	Books           int64 `json:"books"`
	Interpretations int64 `json:"interpretations"`
	Users           int64 `json:"users"`
}

type SearchResponse struct {
	Books           []SearchBookResult           `json:"books"`
	Interpretations []SearchInterpretationResult `json:"interpretations"`
	Users           []SearchUserResult           `json:"users"`
	Counts          SearchCounts                 `json:"counts"`
}
