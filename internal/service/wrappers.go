package service

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// InventoryServiceWrapper defines middleware composition for
// InventoryService.
type InventoryServiceWrapper interface {
	Wrap(InventoryService) InventoryService // returns a decorated InventoryService applying additional behavior
}
