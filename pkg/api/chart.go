package api

import "time"

// Planet представляет положение планеты в натальной карте
type Planet struct {
	Sign       string  `json:"sign"`       // знак зодиака (сокращение, например "Ari")
	House      string  `json:"house"`      // дом, в котором находится планета
	Position   float64 `json:"position"`   // позиция в знаке, градусы
	Retrograde bool    `json:"retrograde"` // ретроградное движение
}

// House представляет куспид астрологического дома
type House struct {
	Sign     string  `json:"sign"`     // знак зодиака на куспиде
	House    int     `json:"house"`    // номер дома (1-12)
	Position float64 `json:"position"` // позиция куспида, градусы
}

// Aspect представляет аспект между двумя планетами
type Aspect struct {
	Planet1  string  `json:"planet1"`  // первая планета
	Planet2  string  `json:"planet2"`  // вторая планета
	Aspect   string  `json:"aspect"`   // тип аспекта (conjunction, trine, ...)
	Orb      float64 `json:"orb"`      // орбис, градусы
	Applying bool    `json:"applying"` // сходящийся аспект
}

// ChartData содержит вычисленные данные натальной карты.
// Все вычисления выполняет backend, клиент только отображает их.
type ChartData struct {
	Planets         map[string]Planet `json:"planets"`
	CalculationDate string            `json:"calculation_date"`
	Houses          []House           `json:"houses"`
	Aspects         []Aspect          `json:"aspects"`
}

// NatalChart представляет натальную карту, возвращаемую Chart Service.
// ChartData, InterpretationText и SVGChart заполняются только
// в детальном ответе GET /api/v1/charts/{id}.
type NatalChart struct {
	BirthDate          time.Time  `json:"birth_date"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          *time.Time `json:"updated_at"`
	ChartData          *ChartData `json:"chart_data"`
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	Name               string     `json:"name"`
	BirthTime          string     `json:"birth_time"` // формат HH:MM
	BirthTimezone      string     `json:"birth_timezone"`
	BirthCity          string     `json:"birth_city"`
	BirthCountry       string     `json:"birth_country"`
	InterpretationText string     `json:"interpretation_text"`
	SVGChart           string     `json:"svg_chart"`
	BirthLatitude      float64    `json:"birth_latitude"`
	BirthLongitude     float64    `json:"birth_longitude"`
	IsPrimary          bool       `json:"is_primary"`
}

// NatalChartCreate представляет запрос на создание натальной карты
type NatalChartCreate struct {
	Name           string  `json:"name"`
	BirthDate      string  `json:"birth_date"` // формат YYYY-MM-DD
	BirthTime      string  `json:"birth_time"` // формат HH:MM
	BirthTimezone  string  `json:"birth_timezone"`
	BirthCity      string  `json:"birth_city"`
	BirthCountry   string  `json:"birth_country"`
	BirthLatitude  float64 `json:"birth_latitude"`
	BirthLongitude float64 `json:"birth_longitude"`
	IsPrimary      bool    `json:"is_primary"`
}
