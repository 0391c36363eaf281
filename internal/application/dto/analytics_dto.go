package dto

// AnalyticsResponse agregados sobre el almacén completo, recalculados por llamada.
type AnalyticsResponse struct {
	TotalProducts       int64   `json:"total_products"`
	ActiveShipments     int64   `json:"active_shipments"`     // productos InTransit
	CompletedDeliveries int64   `json:"completed_deliveries"` // productos Delivered
	AverageEthicalScore float64 `json:"average_ethical_score"`
	TotalPartners       int64   `json:"total_partners"`
	TotalUsers          int64   `json:"total_users"`
}

// ServiceStatusResponse estado del servicio.
// Uptime conserva la semántica original: es el timestamp actual del host (unix
// segundos), no un uptime real. Se mantiene el nombre por compatibilidad.
type ServiceStatusResponse struct {
	Version       string `json:"version"`
	TotalProducts int64  `json:"total_products"`
	TotalUsers    int64  `json:"total_users"`
	TotalEvents   int64  `json:"total_events"`
	Uptime        int64  `json:"uptime"`
}
