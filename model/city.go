package model

import (
	"time"

	"github.com/muhammadheryan/heating-backoffice/constant"
)

type CityEntity struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Latitude  float64   `db:"latitude"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type CityMonthlyDataEntity struct {
	ID             string         `db:"id"`
	CityID         string         `db:"city_id"`
	Month          constant.Month `db:"month"`
	Temperature    float64        `db:"temperature"`
	SolarRadiation float64        `db:"solar_radiation"`
	WindSpeed      float64        `db:"wind_speed"`
}

type CityFilter struct {
	ID   string
	Name string
}

type MonthlyDataRequest struct {
	Month          constant.Month `json:"month" validate:"required,oneof=Janeiro Fevereiro Março Abril Maio Junho Julho Agosto Setembro Outubro Novembro Dezembro"`
	Temperature    float64        `json:"temperature" validate:"gte=-50,lte=50"`
	SolarRadiation float64        `json:"solarRadiation" validate:"gte=0,lte=20"`
	WindSpeed      float64        `json:"windSpeed" validate:"gte=0,lte=50"`
}

type CreateCityRequest struct {
	Name        string               `json:"name" validate:"required"`
	Latitude    float64              `json:"latitude" validate:"gte=-90,lte=90"`
	MonthlyData []MonthlyDataRequest `json:"monthlyData" validate:"omitempty,max=12,dive"`
}

// UpdateCityRequest replaces the monthly data set whenever MonthlyData is non-nil.
type UpdateCityRequest struct {
	Name        *string               `json:"name" validate:"omitempty,min=1"`
	Latitude    *float64              `json:"latitude" validate:"omitempty,gte=-90,lte=90"`
	MonthlyData *[]MonthlyDataRequest `json:"monthlyData" validate:"omitempty,max=12,dive"`
}

type MonthlyDataResponse struct {
	ID             string         `json:"id"`
	Month          constant.Month `json:"month"`
	Temperature    float64        `json:"temperature"`
	SolarRadiation float64        `json:"solarRadiation"`
	WindSpeed      float64        `json:"windSpeed"`
}

type CityResponse struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Latitude    float64               `json:"latitude"`
	MonthlyData []MonthlyDataResponse `json:"monthlyData"`
	CreatedAt   time.Time             `json:"createdAt"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

func NewCityResponse(c *CityEntity, monthly []CityMonthlyDataEntity) *CityResponse {
	res := &CityResponse{
		ID:          c.ID,
		Name:        c.Name,
		Latitude:    c.Latitude,
		MonthlyData: make([]MonthlyDataResponse, 0, len(monthly)),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	for _, m := range monthly {
		res.MonthlyData = append(res.MonthlyData, MonthlyDataResponse{
			ID:             m.ID,
			Month:          m.Month,
			Temperature:    m.Temperature,
			SolarRadiation: m.SolarRadiation,
			WindSpeed:      m.WindSpeed,
		})
	}
	return res
}
