package usecase

import (
	_ "embed"
)

// Embedded test data files

//go:embed testdata/city.yaml
var TestDataCity string

//go:embed testdata/city_update.yaml
var TestDataCityUpdate string

//go:embed testdata/invalid.yaml
var TestDataInvalid string
