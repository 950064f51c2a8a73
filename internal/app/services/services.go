package services

// Services holds all the service instances
type Services struct {
	AuthService    *AuthService
	CatalogService *CatalogService
	PlanService    *PlanService
}
