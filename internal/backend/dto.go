package backend

// Структуры ответов marketplace API. Формы повторяют то,
// что backend реально отдает клиенту водителя.

// UserInfo - данные пользователя из ответа на логин
type UserInfo struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	DriverID int64  `json:"driver_id,omitempty"`
}

// LoginResponse - ответ POST /api/auth/login
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// LocationAck - ответ POST /api/driver/location
type LocationAck struct {
	Message   string `json:"message"`
	IsOnline  bool   `json:"is_online"`
	Timestamp string `json:"timestamp"`
}

// AvailableOrder - еще не разобранный заказ из общей очереди
type AvailableOrder struct {
	ID            int64      `json:"id"`
	Pickup        [2]float64 `json:"pickup"`
	Drop          [2]float64 `json:"drop"`
	PickupAddress string     `json:"pickup_address"`
	DropAddress   string     `json:"drop_address"`
	FareTotal     float64    `json:"fare_total"`
}

// OrderSummary - заказ, закрепленный за водителем
type OrderSummary struct {
	ID            int64   `json:"id"`
	Status        string  `json:"status"`
	PickupAddress string  `json:"pickup_address"`
	DropAddress   string  `json:"drop_address"`
	DistanceKm    float64 `json:"distance_km"`
	FareTotal     float64 `json:"fare_total"`
	DriverShare   float64 `json:"driver_share"`
	CreatedAt     *string `json:"created_at"`
}

// RequestedOrder - заказ, предложенный водителю и ждущий его решения
type RequestedOrder struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customer_name"`
	PickupAddress string  `json:"pickup_address"`
	DropAddress   string  `json:"drop_address"`
	DistanceKm    float64 `json:"distance_km"`
	FareTotal     float64 `json:"fare_total"`
	CreatedAt     *string `json:"created_at"`
}

// EarningsSummary - ответ GET /api/driver/earnings
type EarningsSummary struct {
	DeliveredCount int     `json:"delivered_count"`
	TotalEarnings  float64 `json:"total_earnings"`
}

// DriverProfile - ответ GET /api/driver/profile
type DriverProfile struct {
	ID                 int64   `json:"id"`
	DriverID           int64   `json:"driver_id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Phone              string  `json:"phone"`
	LicenseNumber      string  `json:"license_number"`
	VehicleType        string  `json:"vehicle_type"`
	VehicleNumber      string  `json:"vehicle_number"`
	IsAvailable        bool    `json:"is_available"`
	IsVerified         bool    `json:"is_verified"`
	IsOnline           bool    `json:"is_online"`
	LastLocationUpdate *string `json:"last_location_update"`
	TotalDeliveries    int     `json:"total_deliveries"`
	TotalEarnings      float64 `json:"total_earnings"`
	Rating             float64 `json:"rating"`
	RatingCount        int     `json:"rating_count"`
	CurrentLat         float64 `json:"current_lat"`
	CurrentLng         float64 `json:"current_lng"`
}

// UpdateProfileRequest - тело PUT /api/driver/profile; пустые поля не отправляются
type UpdateProfileRequest struct {
	Name          string `json:"name,omitempty"`
	Phone         string `json:"phone,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	VehicleType   string `json:"vehicle_type,omitempty"`
	VehicleNumber string `json:"vehicle_number,omitempty"`
}
