package handlers

import (
	"leadgrid/internal/repos"
	"leadgrid/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	AvailabilityHandler *AvailabilityHandler
	AdminHandler        *AdminHandler
}

func NewDeps(db *sqlx.DB) *Deps {
	prodRepo := repos.NewProductRepo(db)
	ruleRepo := repos.NewRuleRepo(db)
	addrRepo := repos.NewAddressRepo(db)
	mapRepo := repos.NewMappingRepo(db)

	availSvc := services.NewAvailabilityService(prodRepo, ruleRepo, addrRepo, mapRepo)
	catalogSvc := services.NewCatalogService(prodRepo)
	rulesSvc := services.NewRulesService(ruleRepo)
	addrSvc := services.NewAddressBookService(addrRepo, mapRepo)

	return &Deps{
		AvailabilityHandler: &AvailabilityHandler{Avail: availSvc},
		AdminHandler: &AdminHandler{
			Catalog:   catalogSvc,
			Rules:     rulesSvc,
			Addresses: addrSvc,
		},
	}
}
