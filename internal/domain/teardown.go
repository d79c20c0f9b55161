package domain

// AllModels lists every entity in migration order (parents before children).
func AllModels() []any {
	return []any{
		&Tenant{},
		&User{},
		&Property{},
		&Unit{},
		&UnitPricing{},
		&RealEstateDetail{},
		&CoworkingDetail{},
		&Amenity{},
		&Booking{},
		&Payment{},
		&Lead{},
		&Media{},
		&Campaign{},
		&SocialPost{},
		&Widget{},
		&FormBuilder{},
	}
}

// TeardownOrder lists table names children-first so fixture resets can hard
// delete without tripping foreign key constraints.
var TeardownOrder = []string{
	"payments",
	"leads",
	"bookings",
	"social_posts",
	"campaigns",
	"media",
	"form_builders",
	"widgets",
	"unit_amenities",
	"unit_pricing",
	"real_estate_details",
	"coworking_details",
	"units",
	"amenities",
	"properties",
	"users",
	"tenants",
}

// tableParents maps each table to the tables it holds foreign keys into.
// TeardownOrder must always list a table before any of its parents.
var tableParents = map[string][]string{
	"users":               {"tenants"},
	"properties":          {"tenants"},
	"units":               {"tenants", "properties"},
	"unit_pricing":        {"units"},
	"real_estate_details": {"units"},
	"coworking_details":   {"units"},
	"unit_amenities":      {"units", "amenities"},
	"amenities":           {"tenants"},
	"bookings":            {"tenants", "units", "users"},
	"payments":            {"tenants", "bookings", "users"},
	"leads":               {"tenants", "properties", "units", "bookings"},
	"media":               {"tenants"},
	"campaigns":           {"tenants"},
	"social_posts":        {"tenants", "campaigns"},
	"widgets":             {"tenants"},
	"form_builders":       {"tenants"},
}
