package usecase_test

import (
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/m-mizutani/fireconv/pkg/domain/variant"
	"github.com/m-mizutani/fireconv/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// LoadTestDocument loads a variant from embedded YAML test data
func LoadTestDocument(t *testing.T, testData string) variant.Value {
	t.Helper()

	var raw any
	err := yaml.UnmarshalWithOptions([]byte(testData), &raw, yaml.UseOrderedMap())
	gt.NoError(t, err)

	v, err := variant.FromAny(raw)
	gt.NoError(t, err)

	return v
}

// LoadCityDocument loads the city test document
func LoadCityDocument(t *testing.T) variant.Value {
	return LoadTestDocument(t, usecase.TestDataCity)
}

// LoadCityUpdateDocument loads the modified city test document
func LoadCityUpdateDocument(t *testing.T) variant.Value {
	return LoadTestDocument(t, usecase.TestDataCityUpdate)
}
