package domain

// Service is an entry in the public trade catalog.
type Service struct {
	ID                    int64  `json:"id"`
	Name                  string `json:"name"`
	Category              string `json:"category"`
	RequiresCertification string `json:"requires_certification"`
}

// Catalog returns the fixed service catalog. The catalog is static and
// public; there is no persistence behind it.
func Catalog() []Service {
	return []Service{
		{ID: 1, Name: "Electrical", Category: "electrical", RequiresCertification: "Electrician License"},
		{ID: 2, Name: "Plumbing", Category: "plumbing", RequiresCertification: "Plumber License"},
		{ID: 3, Name: "Handyman", Category: "general", RequiresCertification: "Trade Certification"},
		{ID: 4, Name: "Green Solutions", Category: "green", RequiresCertification: "Green Certification"},
	}
}
