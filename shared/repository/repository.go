package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"indivoyage/infras/otel"
	"indivoyage/shared"
	"indivoyage/shared/constant"
	"indivoyage/shared/dto"
	"reflect"
)

const fieldTag = "field"

var (
	errRequiredFilter = errors.New("required filter")
)

// Repository serves a fixed slice of records. Records are matched against dto filters through
// the fields named by their `field` struct tags, and returned in their original order.
type Repository[T any] struct {
	otel    otel.Otel
	entitas string
	records []T
	fields  map[string]int
}

func NewRepository[T any](entitasName string, records []T, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		otel:    otl,
		entitas: entitasName,
		records: records,
		fields:  getFields(reflect.TypeOf(zero)),
	}
}

// LoadJSON decodes embedded seed data.
func LoadJSON[T any](data []byte) ([]T, error) {
	var records []T

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}

	return records, nil
}

func getFields(reflectType reflect.Type) map[string]int {
	fields := map[string]int{}

	if reflectType == nil || reflectType.Kind() != reflect.Struct {
		return fields
	}

	for idx := range reflectType.NumField() {
		name := reflectType.Field(idx).Tag.Get(fieldTag)
		if name == constant.Empty || name == "-" {
			continue
		}

		fields[name] = idx
	}

	return fields
}

type recordView struct {
	value  reflect.Value
	fields map[string]int
}

func (r recordView) Lookup(field string) (any, bool) {
	idx, ok := r.fields[field]
	if !ok {
		return nil, false
	}

	return r.value.Field(idx).Interface(), true
}

func (repo *Repository[T]) match(filter dto.FilterGroup) []T {
	matched := []T{}

	for _, record := range repo.records {
		view := recordView{value: reflect.ValueOf(record), fields: repo.fields}
		if filter.Match(view) {
			matched = append(matched, record)
		}
	}

	return matched
}

// GetAll returns the matching records, one page of them when params.Limit is set.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	matched := repo.match(filter)

	scope.SetAttributes(map[string]any{
		"repository.matched": len(matched),
		"repository.page":    params.Page,
	})

	if params.Limit <= 0 {
		return matched, nil
	}

	return shared.Paginate(matched, params.Page, params.Limit), nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	return len(repo.match(filter)), nil
}

// Get returns the first matching record, or the zero value when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	var zero T

	if filter.IsEmpty() {
		scope.TraceError(errRequiredFilter)

		return zero, fmt.Errorf("failed to get data (%s): %w", repo.entitas, errRequiredFilter)
	}

	matched := repo.match(filter)
	if len(matched) == 0 {
		return zero, nil
	}

	return matched[0], nil
}
