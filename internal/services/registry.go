package services

// ServiceContainer bundles the services for wiring into handlers.
type ServiceContainer struct {
	AuthService             AuthService
	CandidateProfileService CandidateProfileService
}
