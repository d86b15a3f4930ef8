package dto

import (
	"indivoyage/shared/constant"
	"indivoyage/shared/failure"
	"net/http"
	"strconv"
	"strings"
)

type QueryParams struct {
	Page     int    `json:"page"     validate:"omitempty"`
	Limit    int    `json:"limit"    validate:"omitempty"`
	Search   string `json:"search"   validate:"omitempty"`
	Category string `json:"category" validate:"omitempty"`
	Region   string `json:"region"   validate:"omitempty"`
	Interest string `json:"interest" validate:"omitempty"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	err := q.FromRequest(req, true)
//
// With `defaultRequest` set, a missing page becomes the first page and a missing category becomes "all".
// A page that is present but not a positive integer is rejected with failure.InvalidPageParam.
// The page size is never read from the request; listings use their configured size.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) error {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		pageInt, err := strconv.Atoi(page)
		if err != nil || pageInt < 1 {
			return failure.InvalidPageParam
		}

		q.Page = pageInt
	}

	q.Search = queryParams.Get(constant.RequestParamSearch)
	q.Category = queryParams.Get(constant.RequestParamCategory)
	q.Region = strings.TrimSpace(queryParams.Get(constant.RequestParamRegion))
	q.Interest = strings.TrimSpace(queryParams.Get(constant.RequestParamInterest))

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Category == "" {
			q.Category = constant.DefaultValueCategory
		}
	}

	return nil
}
