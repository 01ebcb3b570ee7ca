package models

// ServicePackage is an optional bundled variant of a catalog entry
// (e.g. "Deep Clean + Sofa" at a bundle price).
type ServicePackage struct {
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
}

// ServiceCatalogEntry is the canonical description of one bookable offering.
// Entries are created and maintained by external admin tooling; this engine
// only reads them.
//
// Independently maintained catalogs key the same offering differently, so an
// entry may carry up to four identifiers. AliasIDs returns the non-empty ones.
type ServiceCatalogEntry struct {
	ID             string           `bson:"id" json:"id"`
	Name           string           `bson:"name" json:"name"`
	CategoryID     string           `bson:"categoryId" json:"categoryId"`
	CompanyID      string           `bson:"companyId" json:"companyId"`
	Price          float64          `bson:"price" json:"price"`
	IsActive       bool             `bson:"isActive" json:"isActive"`
	Packages       []ServicePackage `bson:"packages,omitempty" json:"packages,omitempty"`
	AdminServiceID string           `bson:"adminServiceId,omitempty" json:"adminServiceId,omitempty"`
	ServiceKey     string           `bson:"serviceKey,omitempty" json:"serviceKey,omitempty"`
	AppServiceID   string           `bson:"appServiceId,omitempty" json:"appServiceId,omitempty"`
}

// AliasIDs returns every identifier this entry is known by.
func (e ServiceCatalogEntry) AliasIDs() []string {
	ids := make([]string, 0, 4)
	for _, id := range []string{e.ID, e.AdminServiceID, e.ServiceKey, e.AppServiceID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
