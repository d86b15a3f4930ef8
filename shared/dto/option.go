package dto

// Option is one selectable value of a form field or listing filter.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}
