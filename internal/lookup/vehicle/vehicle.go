// Package vehicle looks up vehicle models for a make from public catalogs
// and classifies them for motor policy forms.
package vehicle

import (
	"net/http"
	"strings"

	"github.com/mmnete/bimasoft-backend/internal/shared/apperror"
)

const (
	CategoryCar     = "Car"
	CategoryBike    = "Bike"
	CategoryBus     = "Bus"
	CategoryTruck   = "Truck"
	CategoryVan     = "Van"
	CategoryUnknown = "Unknown"

	perSourceLimit = 10
	resultLimit    = 10

	cacheKeyPrefix = "vehicle:models:"
)

var ErrNameRequired = apperror.New(
	apperror.CodeInvalidInput,
	"Name parameter is required",
	http.StatusBadRequest,
)

// Model is one make/model pair as reported by a catalog.
type Model struct {
	Make        string `json:"make"`
	Model       string `json:"model"`
	VehicleType string `json:"vehicleType"`
}

type Details struct {
	Make         string `json:"make"`
	Model        string `json:"model"`
	VehicleType  string `json:"vehicleType"`
	Category     string `json:"category"`
	IconURL      string `json:"iconUrl"`
	IsCommercial bool   `json:"isCommercial"`
}

var icons = map[string]string{
	CategoryCar:     "https://media.istockphoto.com/id/487808933/photo/shiny-red-sedan-in-the-outdoors.jpg?s=612x612&w=0&k=20&c=raO4oo2LV5HWQ0iUC2zOpTwcQK2iFoUIFwuVsH51MhY=",
	CategoryBike:    "https://atlas-content-cdn.pixelsquid.com/stock-images/generic-motorcycle-8JoEyvE-600.jpg",
	CategoryBus:     "https://img-new.cgtrader.com/items/3391235/7c40e6c98a/large/generic-bus-6x2-3d-model-max-obj-fbx-c4d-ma-blend.jpg",
	CategoryTruck:   "https://www.renderhub.com/jenek/generic-truck-4x2-with-trailer/generic-truck-4x2-with-trailer-01.jpg",
	CategoryVan:     "https://atlas-content-cdn.pixelsquid.com/stock-images/cargo-van-generic-white-mrEEZ9E-600.jpg",
	CategoryUnknown: "https://media.istockphoto.com/id/1390785589/photo/car-in-a-studio.jpg?s=612x612&w=0&k=20&c=nfrfuGlQHS28sfnV6RGm-EGSAYuAUJ9jRsCzCsOgPo8=",
}

// Classify maps a catalog type string to a category. The first match wins,
// so "Passenger Car" is a Car even if the string also mentions a van.
func Classify(vehicleType string) string {
	t := strings.ToLower(vehicleType)
	switch {
	case strings.Contains(t, "car"):
		return CategoryCar
	case strings.Contains(t, "bike"), strings.Contains(t, "motorcycle"):
		return CategoryBike
	case strings.Contains(t, "bus"):
		return CategoryBus
	case strings.Contains(t, "truck"):
		return CategoryTruck
	case strings.Contains(t, "van"):
		return CategoryVan
	}
	return CategoryUnknown
}

func IsCommercial(category string) bool {
	return category == CategoryTruck || category == CategoryBus || category == CategoryVan
}

func describe(m Model) Details {
	category := Classify(m.VehicleType)
	return Details{
		Make:         m.Make,
		Model:        m.Model,
		VehicleType:  m.VehicleType,
		Category:     category,
		IconURL:      icons[category],
		IsCommercial: IsCommercial(category),
	}
}

// merge keeps the first occurrence of each make/model pair in order and
// stops at resultLimit.
func merge(sources ...[]Model) []Model {
	seen := make(map[string]struct{})
	out := make([]Model, 0, resultLimit)
	for _, models := range sources {
		for _, m := range models {
			key := strings.ToLower(m.Make) + "-" + strings.ToLower(m.Model)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, m)
			if len(out) == resultLimit {
				return out
			}
		}
	}
	return out
}
