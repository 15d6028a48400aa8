package models

// Verse is an encouraging scripture with a workplace application.
// Verses are served from a fixed table, not persisted.
type Verse struct {
	Verse       string `json:"verse"`
	Text        string `json:"text"`
	Theme       string `json:"theme"`
	Application string `json:"application"`
}
