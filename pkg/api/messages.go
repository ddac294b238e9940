package api

// Wire messages for dosing.v1.DosingService. Timestamps are unix seconds.

type Tank struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	VolumeLiters float64 `json:"volumeLiters"`
	CreatedAt    int64   `json:"createdAt"`
}

type Fertilizer struct {
	Id            string  `json:"id"`
	Name          string  `json:"name"`
	Unit          string  `json:"unit"`
	NitrogenPpm   float64 `json:"nitrogenPpm,omitempty"`
	PhosphorusPpm float64 `json:"phosphorusPpm,omitempty"`
	PotassiumPpm  float64 `json:"potassiumPpm,omitempty"`
	IronPpm       float64 `json:"ironPpm,omitempty"`
	MagnesiumPpm  float64 `json:"magnesiumPpm,omitempty"`
}

type DoseEntry struct {
	Id           string  `json:"id"`
	TankId       string  `json:"tankId"`
	FertilizerId string  `json:"fertilizerId"`
	Amount       float64 `json:"amount"`
	DosedAt      int64   `json:"dosedAt"`
}

type NutrientLevels struct {
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Iron       float64 `json:"iron"`
}

type NutrientStatus struct {
	Nitrogen   string `json:"nitrogen"`
	Phosphorus string `json:"phosphorus"`
	Potassium  string `json:"potassium"`
	Iron       string `json:"iron"`
}

type Recommendation struct {
	FertilizerId   string  `json:"fertilizerId"`
	FertilizerName string  `json:"fertilizerName"`
	Amount         float64 `json:"amount"`
	Unit           string  `json:"unit"`
	Frequency      string  `json:"frequency"`
	ReasonNutrient string  `json:"reasonNutrient"`
	Reasoning      string  `json:"reasoning"`
}

type Analysis struct {
	WeeklyTotals    *NutrientLevels   `json:"weeklyTotals"`
	Status          *NutrientStatus   `json:"status"`
	Recommendations []*Recommendation `json:"recommendations"`
	Tips            []string          `json:"tips"`
}

type ProjectionPoint struct {
	Date       string  `json:"date"`
	Nitrogen   float64 `json:"nitrogen"`
	Phosphorus float64 `json:"phosphorus"`
	Potassium  float64 `json:"potassium"`
	Iron       float64 `json:"iron"`
}

type RegisterTankRequest struct {
	Name         string  `json:"name"`
	VolumeLiters float64 `json:"volumeLiters"`
}

type RegisterTankResponse struct {
	Tank *Tank `json:"tank"`
}

type RegisterFertilizerRequest struct {
	Fertilizer *Fertilizer `json:"fertilizer"`
}

type RegisterFertilizerResponse struct {
	Fertilizer *Fertilizer `json:"fertilizer"`
}

type RecordDoseRequest struct {
	TankId       string  `json:"tankId"`
	FertilizerId string  `json:"fertilizerId"`
	Amount       float64 `json:"amount"`
}

type RecordDoseResponse struct {
	Dose *DoseEntry `json:"dose"`
}

type GetDoseHistoryRequest struct {
	TankId    string `json:"tankId"`
	StartTime int64  `json:"startTime"`
	EndTime   int64  `json:"endTime"`
}

type GetDoseHistoryResponse struct {
	Doses []*DoseEntry `json:"doses"`
}

type AnalyzeTankRequest struct {
	TankId string `json:"tankId"`
}

type AnalyzeTankResponse struct {
	Analysis *Analysis `json:"analysis"`
}

type ProjectTankRequest struct {
	TankId             string  `json:"tankId"`
	WaterChangeDay     int32   `json:"waterChangeDay"`
	WaterChangePercent float64 `json:"waterChangePercent"`
}

type ProjectNutrientsRequest struct {
	Start              *NutrientLevels `json:"start"`
	Daily              *NutrientLevels `json:"daily"`
	WaterChangeDay     int32           `json:"waterChangeDay"`
	WaterChangePercent float64         `json:"waterChangePercent"`
}

type ProjectionResponse struct {
	Points []*ProjectionPoint `json:"points"`
}
